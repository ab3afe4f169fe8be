//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package service

import (
	"context"

	"github.com/s21platform/relay-service/internal/model"
)

type MessageStore interface {
	AppendMessage(ctx context.Context, conversationID string, message *model.Message) error
	GetAllMessages(ctx context.Context, conversationID string) (model.MessageList, error)
}

type SocialGraph interface {
	IsFriend(ctx context.Context, userID, friendID string) (bool, error)
	GetGroup(ctx context.Context, groupID string) (*model.Group, error)
	GetGroupMemberIDs(ctx context.Context, groupID string) ([]string, error)
}

type UserProvider interface {
	GetUserByID(ctx context.Context, userID string) (*model.User, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, channel, event string, payload interface{}) error
}
