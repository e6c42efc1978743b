package dto

type StoreMemoryRequest struct {
	Category string            `json:"category" validate:"required,oneof=note learning conversation"`
	Content  string            `json:"content" validate:"required"`
	Metadata map[string]string `json:"metadata"`
}

type StoreMemoryResponse struct {
	Id string `json:"id"`
}

type SearchMemoryRequest struct {
	Query    string `json:"query" validate:"required"`
	Category string `json:"category" validate:"omitempty,oneof=note learning conversation"`
	Limit    int    `json:"limit" validate:"omitempty,min=1,max=20"`
}

type MemoryMatchResponse struct {
	Id       string            `json:"id"`
	Category string            `json:"category"`
	Content  string            `json:"content"`
	Metadata map[string]string `json:"metadata,omitempty"`
	Distance float64           `json:"distance"`
}
