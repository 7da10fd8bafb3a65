package dto

type ChatMessageRequest struct {
	SessionId string `json:"session_id" validate:"required"`
	Message   string `json:"message" validate:"required"`
}

type ChatResponse struct {
	Response  string `json:"response"`
	SessionId string `json:"session_id"`
}
