package types

type ApiResponse struct {
	Message string      `json:"message"`
	Status  int         `json:"status"`
	Data    interface{} `json:"data,omitempty"`
}

// Pagination describes the page window echoed back on list responses.
type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}

// PagedData wraps a list payload with its pagination block.
type PagedData struct {
	Items      interface{} `json:"items"`
	Pagination Pagination  `json:"pagination"`
}
