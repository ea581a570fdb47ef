package models

// ChatMessage is one turn of the assistant conversation.
type ChatMessage struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp,omitempty"`
}

// ChatReply is the backend assistant's answer to a chat request.
type ChatReply struct {
	Response  string `json:"response"`
	Timestamp string `json:"timestamp"`
	Model     string `json:"model"`
}
