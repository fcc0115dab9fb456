package dto

// ActivityResponse 操作动态响应
type ActivityResponse struct {
	ID          string `json:"id"`
	Timestamp   string `json:"timestamp"`
	Type        string `json:"type"`
	Description string `json:"description"`
}
