package supplierfeed

// FeedResponse is the JSON document a supplier feed endpoint returns.
type FeedResponse struct {
	Supplier string     `json:"supplier"`
	Items    []FeedItem `json:"items"`
}

// FeedItem is one product line in a supplier feed. SKU maps onto the
// product slug in the catalogue.
type FeedItem struct {
	SKU         string `json:"sku"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	PriceCents  int64  `json:"price_cents"`
	StockQty    int    `json:"stock_qty"`
	ImageURL    string `json:"image_url,omitempty"`
}
