package models

// OutboundMessageRequest represents requests to send the inventory report manually via the API.
// An empty To falls back to the configured report recipient.
type OutboundMessageRequest struct {
	To         string `json:"to"`
	Message    string `json:"message"`
	PreviewURL bool   `json:"preview_url"`
}

// CreateItemRequest is the payload accepted by POST /items.
type CreateItemRequest struct {
	Name    string `json:"name" binding:"required"`
	SellIn  *int   `json:"sell_in" binding:"required"`
	Quality *int   `json:"quality" binding:"required"`
}
