package model

import "time"

// Message is an instant message between two users. Delivery is pull-based:
// the recipient loads the conversation, which flips the seen flag.
type Message struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FromUserID uint      `gorm:"not null;index" json:"fromUserId"`
	ToUserID   uint      `gorm:"not null;index" json:"toUserId"`
	Body       string    `gorm:"not null" json:"body"`
	Seen       bool      `gorm:"not null;default:false" json:"seen"`
	CreatedAt  time.Time `json:"createdAt"`
}
