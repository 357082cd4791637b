package dto

type SendMessageRequest struct {
	FromUserID uint   `json:"fromUserId"`
	ToUserID   uint   `json:"toUserId"`
	Body       string `json:"body"`
}

// LoadMessagesRequest asks for the conversation between two users. Messages
// addressed to UserID are marked seen as a side effect of loading.
type LoadMessagesRequest struct {
	UserID      uint `json:"userId"`
	OtherUserID uint `json:"otherUserId"`
}
