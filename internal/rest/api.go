package rest

import "github.com/s21platform/relay-service/internal/model"

type Error struct {
	Error string `json:"error"`
}

type SendMessageRequest struct {
	Text   string `json:"text"`
	ChatID string `json:"chatId"`
}

type SendMessageResponse struct {
	Success bool `json:"success"`
}

type PostChatMessageRequest struct {
	Text string `json:"text"`
}

type PostChatMessageResponse struct {
	OK      bool          `json:"ok"`
	Message model.Message `json:"message"`
}

type ListMessagesResponse struct {
	Messages   model.MessageList `json:"messages"`
	NextCursor *int64            `json:"nextCursor"`
}

type TypingRequest struct {
	ChatID   string `json:"chatId"`
	IsTyping *bool  `json:"isTyping"`
}

type StatusResponse struct {
	Success bool `json:"success"`
}

type DmSummary struct {
	ChatID      string         `json:"chatId"`
	Friend      model.User     `json:"friend"`
	LastMessage *model.Message `json:"lastMessage"`
}

type GetChatsResponse struct {
	Dms    []DmSummary   `json:"dms"`
	Groups []model.Group `json:"groups"`
}

type GetFriendsResponse struct {
	Friends []model.User `json:"friends"`
}

type AddFriendRequest struct {
	Email string `json:"email"`
}

type AcceptFriendRequest struct {
	ID string `json:"id"`
}

type GetFriendRequestsResponse struct {
	Incoming []model.User `json:"incoming"`
}

type CreateGroupRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Members     []string `json:"members"`
}

type GetMeResponse struct {
	User model.User `json:"user"`
}

type GoogleAuthRequest struct {
	IDToken string `json:"idToken"`
}

type GoogleAuthResponse struct {
	Token     string     `json:"token"`
	ExpiresAt int64      `json:"expiresAt"`
	User      model.User `json:"user"`
}

type ConnectTokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}

type SubscribeTokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
	Channel   string `json:"channel"`
}
