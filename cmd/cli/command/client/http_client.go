package client

// http_client.go wraps the StoreHub REST API for the admin CLI.

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"storehub/cmd/cli/dto"
)

type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

// Product-related request/response structures
type CreateProductRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	PriceCents  int64   `json:"price_cents"`
	StockQty    int     `json:"stock_qty"`
	SupplierID  *int64  `json:"supplier_id,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
	Slug        *string `json:"slug,omitempty"`
}

type UpdateProductRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	PriceCents  *int64  `json:"price_cents,omitempty"`
	SupplierID  *int64  `json:"supplier_id,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
	Active      *bool   `json:"active,omitempty"`
}

type ProductResponse struct {
	ID          int64      `json:"id"`
	Slug        *string    `json:"slug,omitempty"`
	Name        string     `json:"name"`
	Description *string    `json:"description,omitempty"`
	PriceCents  int64      `json:"price_cents"`
	StockQty    int        `json:"stock_qty"`
	SupplierID  *int64     `json:"supplier_id,omitempty"`
	Active      bool       `json:"active"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}

type PaginatedProductResponse struct {
	Data       []ProductResponse `json:"data"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	Total      int               `json:"total"`
	TotalPages int               `json:"total_pages"`
}

// Supplier structures
type SupplierRequest struct {
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty"`
	FeedURL *string `json:"feed_url,omitempty"`
	Active  *bool   `json:"active,omitempty"`
}

type SupplierResponse struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Email   *string `json:"email,omitempty"`
	FeedURL *string `json:"feed_url,omitempty"`
	Active  bool    `json:"active"`
}

// Discount structures
type CreateDiscountRequest struct {
	Code     string     `json:"code"`
	Percent  int        `json:"percent"`
	StartsAt *time.Time `json:"starts_at,omitempty"`
	EndsAt   *time.Time `json:"ends_at,omitempty"`
}

type DiscountResponse struct {
	ID       int64      `json:"id"`
	Code     string     `json:"code"`
	Percent  int        `json:"percent"`
	StartsAt *time.Time `json:"starts_at,omitempty"`
	EndsAt   *time.Time `json:"ends_at,omitempty"`
	Active   bool       `json:"active"`
}

// Stock structures
type RecordStockRequest struct {
	Delta      int    `json:"delta"`
	Reason     string `json:"reason"`
	SupplierID *int64 `json:"supplier_id,omitempty"`
}

type StockMovementResponse struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"product_id"`
	Delta     int       `json:"delta"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}

type PaginatedStockMovementResponse struct {
	Data       []StockMovementResponse `json:"data"`
	Page       int                     `json:"page"`
	PageSize   int                     `json:"page_size"`
	Total      int                     `json:"total"`
	TotalPages int                     `json:"total_pages"`
}

// Order structures
type OrderItemResponse struct {
	ProductID      int64  `json:"product_id"`
	ProductName    string `json:"product_name,omitempty"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
}

type OrderResponse struct {
	ID         int64               `json:"id"`
	UserID     string              `json:"user_id"`
	Status     string              `json:"status"`
	TotalCents int64               `json:"total_cents"`
	Items      []OrderItemResponse `json:"items"`
	CreatedAt  time.Time           `json:"created_at"`
}

type PaginatedOrderResponse struct {
	Data       []OrderResponse `json:"data"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	Total      int             `json:"total"`
	TotalPages int             `json:"total_pages"`
}

// Review and comment structures
type ReviewResponse struct {
	ID            string    `json:"id"`
	ProductID     int64     `json:"product_id"`
	AuthorID      string    `json:"author_id"`
	AuthorName    string    `json:"author_name"`
	Rating        int       `json:"rating"`
	RootCommentID string    `json:"root_comment_id"`
	CreatedAt     time.Time `json:"created_at"`
}

type PaginatedReviewResponse struct {
	Data       []ReviewResponse `json:"data"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	Total      int              `json:"total"`
	TotalPages int              `json:"total_pages"`
}

type CommentResponse struct {
	ID              string            `json:"id"`
	ReviewID        string            `json:"review_id"`
	ParentID        string            `json:"parent_id,omitempty"`
	AuthorID        string            `json:"author_id"`
	AuthorName      string            `json:"author_name"`
	AuthorAvatarURL string            `json:"author_avatar_url,omitempty"`
	Content         string            `json:"content"`
	CreatedAt       time.Time         `json:"created_at"`
	Children        []CommentResponse `json:"children,omitempty"`
}

type CreateCommentRequest struct {
	ParentID string `json:"parent_id"`
	Content  string `json:"content"`
}

type UpdateCommentRequest struct {
	Content string `json:"content"`
}

// NewHTTPClient creates a client for the given API base URL
func NewHTTPClient(apiURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: apiURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// SetToken sets the bearer token used on authenticated requests
func (c *HTTPClient) SetToken(token string) {
	c.token = token
}

// do runs one authenticated JSON request. A nil out skips decoding.
func (c *HTTPClient) do(method, path string, body interface{}, wantStatus int, out interface{}) error {
	var reqBody *bytes.Buffer
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(jsonData)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.NewDecoder(resp.Body).Decode(&apiErr) == nil && apiErr.Error != "" {
			return &APIError{Status: resp.StatusCode, Message: apiErr.Error}
		}
		return &APIError{Status: resp.StatusCode, Message: resp.Status}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// APIError carries the HTTP status so callers can map error kinds.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error (%d): %s", e.Status, e.Message)
}

// Auth methods

func (c *HTTPClient) Login(request *dto.LoginRequest) (*dto.AuthResponse, error) {
	var result dto.AuthResponse
	if err := c.do("POST", "/api/auth/login", request, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) Register(request *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	var result dto.RegisterResponse
	if err := c.do("POST", "/api/auth/register", request, http.StatusCreated, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) RefreshToken(request *dto.RefreshTokenRequest) (*dto.RefreshResponse, error) {
	var result dto.RefreshResponse
	if err := c.do("POST", "/api/auth/refresh", request, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) Logout(refreshToken string) error {
	body := map[string]string{"refresh_token": refreshToken}
	return c.do("POST", "/api/auth/logout", body, http.StatusOK, nil)
}

// Product methods

func (c *HTTPClient) ListProducts(page, pageSize int) (*PaginatedProductResponse, error) {
	var result PaginatedProductResponse
	path := fmt.Sprintf("/api/products?page=%d&page_size=%d", page, pageSize)
	if err := c.do("GET", path, nil, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) SearchProducts(query string) (*PaginatedProductResponse, error) {
	var result PaginatedProductResponse
	path := "/api/products/search?q=" + url.QueryEscape(query)
	if err := c.do("GET", path, nil, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) GetProductByID(id int64) (*ProductResponse, error) {
	var result ProductResponse
	if err := c.do("GET", fmt.Sprintf("/api/products/%d", id), nil, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) CreateProduct(request *CreateProductRequest) (*ProductResponse, error) {
	var result ProductResponse
	if err := c.do("POST", "/api/admin/products", request, http.StatusCreated, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) UpdateProduct(id int64, request *UpdateProductRequest) (*ProductResponse, error) {
	var result ProductResponse
	if err := c.do("PUT", fmt.Sprintf("/api/admin/products/%d", id), request, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) DeleteProduct(id int64) error {
	return c.do("DELETE", fmt.Sprintf("/api/admin/products/%d", id), nil, http.StatusOK, nil)
}

// Stock methods

func (c *HTTPClient) RecordStock(productID int64, request *RecordStockRequest) (*StockMovementResponse, error) {
	var result StockMovementResponse
	path := fmt.Sprintf("/api/admin/products/%d/stock", productID)
	if err := c.do("POST", path, request, http.StatusCreated, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) StockHistory(productID int64, page, pageSize int) (*PaginatedStockMovementResponse, error) {
	var result PaginatedStockMovementResponse
	path := fmt.Sprintf("/api/admin/products/%d/stock?page=%d&page_size=%d", productID, page, pageSize)
	if err := c.do("GET", path, nil, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Supplier methods

func (c *HTTPClient) ListSuppliers() ([]SupplierResponse, error) {
	var result []SupplierResponse
	if err := c.do("GET", "/api/admin/suppliers", nil, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *HTTPClient) CreateSupplier(request *SupplierRequest) (*SupplierResponse, error) {
	var result SupplierResponse
	if err := c.do("POST", "/api/admin/suppliers", request, http.StatusCreated, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) UpdateSupplier(id int64, request *SupplierRequest) (*SupplierResponse, error) {
	var result SupplierResponse
	if err := c.do("PUT", fmt.Sprintf("/api/admin/suppliers/%d", id), request, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) DeleteSupplier(id int64) error {
	return c.do("DELETE", fmt.Sprintf("/api/admin/suppliers/%d", id), nil, http.StatusOK, nil)
}

// Discount methods

func (c *HTTPClient) ListDiscounts() ([]DiscountResponse, error) {
	var result []DiscountResponse
	if err := c.do("GET", "/api/admin/discounts", nil, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *HTTPClient) CreateDiscount(request *CreateDiscountRequest) (*DiscountResponse, error) {
	var result DiscountResponse
	if err := c.do("POST", "/api/admin/discounts", request, http.StatusCreated, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) DeleteDiscount(id int64) error {
	return c.do("DELETE", fmt.Sprintf("/api/admin/discounts/%d", id), nil, http.StatusOK, nil)
}

// Order methods

func (c *HTTPClient) ListAllOrders(page, pageSize int) (*PaginatedOrderResponse, error) {
	var result PaginatedOrderResponse
	path := fmt.Sprintf("/api/admin/orders?page=%d&page_size=%d", page, pageSize)
	if err := c.do("GET", path, nil, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) GetOrderByID(id int64) (*OrderResponse, error) {
	var result OrderResponse
	if err := c.do("GET", fmt.Sprintf("/api/orders/%d", id), nil, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) UpdateOrderStatus(id int64, status string) (*OrderResponse, error) {
	body := map[string]string{"status": status}
	var result OrderResponse
	if err := c.do("PUT", fmt.Sprintf("/api/admin/orders/%d/status", id), body, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Review and comment methods

func (c *HTTPClient) GetReviewByID(id string) (*ReviewResponse, error) {
	var result ReviewResponse
	if err := c.do("GET", "/api/reviews/"+id, nil, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) ListReviewsByProduct(productID int64, page, pageSize int) (*PaginatedReviewResponse, error) {
	var result PaginatedReviewResponse
	path := fmt.Sprintf("/api/products/%d/reviews?page=%d&page_size=%d", productID, page, pageSize)
	if err := c.do("GET", path, nil, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) GetCommentByID(id string) (*CommentResponse, error) {
	var result CommentResponse
	if err := c.do("GET", "/api/comments/"+id, nil, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) GetCommentDescendants(id string) ([]CommentResponse, error) {
	var result []CommentResponse
	if err := c.do("GET", "/api/comments/"+id+"/descendants", nil, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *HTTPClient) CreateComment(reviewID string, request *CreateCommentRequest) (*CommentResponse, error) {
	var result CommentResponse
	path := "/api/reviews/" + reviewID + "/comments"
	if err := c.do("POST", path, request, http.StatusCreated, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) UpdateComment(id string, request *UpdateCommentRequest) (*CommentResponse, error) {
	var result CommentResponse
	if err := c.do("PUT", "/api/comments/"+id, request, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) DeleteComment(id string) error {
	return c.do("DELETE", "/api/comments/"+id, nil, http.StatusOK, nil)
}
