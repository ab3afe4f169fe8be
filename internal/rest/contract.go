//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package rest

import (
	"context"

	"github.com/s21platform/relay-service/internal/model"
	"github.com/s21platform/relay-service/internal/service"
)

type ChatService interface {
	SendMessage(ctx context.Context, senderID, conversationID, text string) (*model.Message, error)
	ListMessages(ctx context.Context, callerID, conversationID string, limit int32, cursor int64) (*model.MessagePage, error)
	Typing(ctx context.Context, userID, conversationID string, isTyping bool) error
	ResolveAccess(ctx context.Context, callerID, conversationID string) (*service.ConversationAccess, error)
}

type ChatRepo interface {
	GetLastMessage(ctx context.Context, conversationID string) (*model.Message, error)
	GetFriendIDs(ctx context.Context, userID string) ([]string, error)
	IsFriend(ctx context.Context, userID, friendID string) (bool, error)
	HasFriendRequest(ctx context.Context, userID, fromID string) (bool, error)
	AddFriendRequest(ctx context.Context, toID, fromID string) error
	GetFriendRequestIDs(ctx context.Context, userID string) ([]string, error)
	AcceptFriend(ctx context.Context, userID, friendID string) error
	GetGroup(ctx context.Context, groupID string) (*model.Group, error)
	GetUserGroupIDs(ctx context.Context, userID string) ([]string, error)
	CreateGroup(ctx context.Context, group *model.Group) error
}

type UserRepo interface {
	GetUserByID(ctx context.Context, userID string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	UpsertUser(ctx context.Context, user *model.User) error
}

type RealtimeClient interface {
	Publish(ctx context.Context, channel, event string, payload interface{}) error
}

type TokenManager interface {
	NewMobileToken(userID string) (string, int64, error)
	NewConnectToken(userID string) (string, int64, error)
	NewSubscribeToken(userID, channel string) (string, int64, error)
}

type GoogleVerifier interface {
	Verify(ctx context.Context, rawToken string) (*model.GoogleProfile, error)
}

type Validator interface {
	ValidateCreateGroup(name string, members []string, creatorID string) ([]string, error)
	SanitizeGroupName(name string) string
	SanitizeDescription(description string) string
}
