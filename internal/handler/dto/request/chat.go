package request

type ChatMessageRequest struct {
	Message string `json:"message" binding:"required,max=4000"`
	Scope   string `json:"scope" binding:"omitempty,oneof=all tickets refunds payments"`
}
