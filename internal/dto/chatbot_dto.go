package dto

type SendChatRequest struct {
	Message string `json:"message" validate:"required"`
}

type SendChatResponse struct {
	// Response is the AI reply rendered from markdown to HTML.
	Response string `json:"response"`
}
