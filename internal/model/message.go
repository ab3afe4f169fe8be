package model

type MessageList []Message

// Message is the atomic unit of conversation content. Once appended to a
// conversation log it is immutable.
type Message struct {
	ID        string `json:"id"`
	SenderID  string `json:"senderId"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
}

// MessageNotification is the per-user chat-list payload: the message itself
// plus sender display metadata, so recipients can render a preview without
// having the conversation channel open.
type MessageNotification struct {
	Message

	SenderName string `json:"senderName"`
	SenderImg  string `json:"senderImg,omitempty"`
}

// MessagePage is one cursor-based slice of a conversation's history.
// NextCursor is the timestamp of the oldest returned message, nil when
// there is no more history.
type MessagePage struct {
	Messages   MessageList `json:"messages"`
	NextCursor *int64      `json:"nextCursor"`
}

type TypingEvent struct {
	UserID   string `json:"userId"`
	IsTyping bool   `json:"isTyping"`
}
