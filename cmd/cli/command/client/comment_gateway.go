package client

// comment_gateway.go adapts the REST comment endpoints to the moderation
// thread gateway so the CLI can drive a live review thread.

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"storehub/internal/moderation/thread"
)

// CommentGateway implements thread.Gateway against the StoreHub API.
type CommentGateway struct {
	client *HTTPClient
}

func NewCommentGateway(httpClient *HTTPClient) *CommentGateway {
	return &CommentGateway{client: httpClient}
}

var _ thread.Gateway = (*CommentGateway)(nil)

func (g *CommentGateway) FetchByID(ctx context.Context, id string) (*thread.Comment, error) {
	var result CommentResponse
	if err := g.doCtx(ctx, "GET", "/api/comments/"+id, nil, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return toThreadComment(&result), nil
}

func (g *CommentGateway) FetchDescendants(ctx context.Context, rootID string) ([]*thread.Comment, error) {
	var result []CommentResponse
	path := "/api/comments/" + rootID + "/descendants"
	if err := g.doCtx(ctx, "GET", path, nil, http.StatusOK, &result); err != nil {
		return nil, err
	}

	descendants := make([]*thread.Comment, 0, len(result))
	for i := range result {
		descendants = append(descendants, toThreadComment(&result[i]))
	}
	return descendants, nil
}

func (g *CommentGateway) Create(ctx context.Context, parentID, content, reviewID string) (*thread.Comment, error) {
	req := CreateCommentRequest{ParentID: parentID, Content: content}
	var result CommentResponse
	path := "/api/reviews/" + reviewID + "/comments"
	if err := g.doCtx(ctx, "POST", path, &req, http.StatusCreated, &result); err != nil {
		return nil, err
	}
	return toThreadComment(&result), nil
}

func (g *CommentGateway) Update(ctx context.Context, id, content string) (*thread.Comment, error) {
	req := UpdateCommentRequest{Content: content}
	var result CommentResponse
	if err := g.doCtx(ctx, "PUT", "/api/comments/"+id, &req, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return toThreadComment(&result), nil
}

func (g *CommentGateway) Remove(ctx context.Context, id string) error {
	return g.doCtx(ctx, "DELETE", "/api/comments/"+id, nil, http.StatusOK, nil)
}

// doCtx mirrors HTTPClient.do with a request context and maps 404
// onto the gateway's not-found sentinel.
func (g *CommentGateway) doCtx(ctx context.Context, method, path string, body interface{}, wantStatus int, out interface{}) error {
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

	req, err := http.NewRequestWithContext(ctx, method, g.client.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if g.client.token != "" {
		req.Header.Set("Authorization", "Bearer "+g.client.token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := g.client.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return thread.ErrNotFound
	}
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

func toThreadComment(resp *CommentResponse) *thread.Comment {
	c := &thread.Comment{
		ID:              resp.ID,
		ReviewID:        resp.ReviewID,
		ParentID:        resp.ParentID,
		AuthorID:        resp.AuthorID,
		AuthorName:      resp.AuthorName,
		AuthorAvatarURL: resp.AuthorAvatarURL,
		Content:         resp.Content,
		CreatedAt:       resp.CreatedAt,
	}
	for i := range resp.Children {
		c.Children = append(c.Children, toThreadComment(&resp.Children[i]))
	}
	return c
}

// IsNotFound reports whether err came back as an HTTP 404.
func IsNotFound(err error) bool {
	if errors.Is(err, thread.ErrNotFound) {
		return true
	}
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}
