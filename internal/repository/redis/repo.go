package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/s21platform/relay-service/internal/config"
	"github.com/s21platform/relay-service/internal/model"
)

type Repository struct {
	connection *redis.Client
}

func New(cfg *config.Config) *Repository {
	conn := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := conn.Ping(context.Background()).Err(); err != nil {
		log.Fatal("error connect: ", err)
	}

	return &Repository{
		connection: conn,
	}
}

// NewWithClient wires an existing client, used by tests.
func NewWithClient(conn *redis.Client) *Repository {
	return &Repository{connection: conn}
}

func (r *Repository) Close() {
	_ = r.connection.Close()
}

// AppendMessage inserts a message into the conversation's ordered log with
// its timestamp as the sort key. The storage key comes from the same
// derivation the read path uses.
func (r *Repository) AppendMessage(ctx context.Context, conversationID string, message *model.Message) error {
	conversation, err := model.ParseConversationID(conversationID)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	err = r.connection.ZAdd(ctx, conversation.MessagesKey(), redis.Z{
		Score:  float64(message.Timestamp),
		Member: raw,
	}).Err()
	if err != nil {
		return fmt.Errorf("failed to append message: %w", err)
	}

	return nil
}

// GetAllMessages returns the full conversation log in ascending score order.
func (r *Repository) GetAllMessages(ctx context.Context, conversationID string) (model.MessageList, error) {
	conversation, err := model.ParseConversationID(conversationID)
	if err != nil {
		return nil, err
	}

	rawMessages, err := r.connection.ZRange(ctx, conversation.MessagesKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read message log: %w", err)
	}

	messages := make(model.MessageList, 0, len(rawMessages))
	for _, raw := range rawMessages {
		var message model.Message
		if err := json.Unmarshal([]byte(raw), &message); err != nil {
			return nil, fmt.Errorf("failed to unmarshal message: %w", err)
		}
		messages = append(messages, message)
	}

	return messages, nil
}

// GetLastMessage returns the newest message of a conversation, nil when the
// log is empty.
func (r *Repository) GetLastMessage(ctx context.Context, conversationID string) (*model.Message, error) {
	conversation, err := model.ParseConversationID(conversationID)
	if err != nil {
		return nil, err
	}

	rawMessages, err := r.connection.ZRange(ctx, conversation.MessagesKey(), -1, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read message log: %w", err)
	}

	if len(rawMessages) == 0 {
		return nil, nil
	}

	var message model.Message
	if err := json.Unmarshal([]byte(rawMessages[0]), &message); err != nil {
		return nil, fmt.Errorf("failed to unmarshal message: %w", err)
	}

	return &message, nil
}

func (r *Repository) GetFriendIDs(ctx context.Context, userID string) ([]string, error) {
	friendIDs, err := r.connection.SMembers(ctx, model.UserFriendsKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get friends: %w", err)
	}

	return friendIDs, nil
}

func (r *Repository) IsFriend(ctx context.Context, userID, friendID string) (bool, error) {
	isFriend, err := r.connection.SIsMember(ctx, model.UserFriendsKey(userID), friendID).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check friendship: %w", err)
	}

	return isFriend, nil
}

func (r *Repository) HasFriendRequest(ctx context.Context, userID, fromID string) (bool, error) {
	hasRequest, err := r.connection.SIsMember(ctx, model.UserFriendRequestsKey(userID), fromID).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check friend request: %w", err)
	}

	return hasRequest, nil
}

func (r *Repository) AddFriendRequest(ctx context.Context, toID, fromID string) error {
	err := r.connection.SAdd(ctx, model.UserFriendRequestsKey(toID), fromID).Err()
	if err != nil {
		return fmt.Errorf("failed to add friend request: %w", err)
	}

	return nil
}

func (r *Repository) GetFriendRequestIDs(ctx context.Context, userID string) ([]string, error) {
	requestIDs, err := r.connection.SMembers(ctx, model.UserFriendRequestsKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get friend requests: %w", err)
	}

	return requestIDs, nil
}

// AcceptFriend records the mutual friend edge and removes the pending request.
func (r *Repository) AcceptFriend(ctx context.Context, userID, friendID string) error {
	pipe := r.connection.TxPipeline()
	pipe.SAdd(ctx, model.UserFriendsKey(userID), friendID)
	pipe.SAdd(ctx, model.UserFriendsKey(friendID), userID)
	pipe.SRem(ctx, model.UserFriendRequestsKey(userID), friendID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to accept friend: %w", err)
	}

	return nil
}

// GetGroup returns the group record, nil when it does not exist.
func (r *Repository) GetGroup(ctx context.Context, groupID string) (*model.Group, error) {
	raw, err := r.connection.Get(ctx, model.GroupKey(groupID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	var group model.Group
	if err := json.Unmarshal([]byte(raw), &group); err != nil {
		return nil, fmt.Errorf("failed to unmarshal group: %w", err)
	}

	return &group, nil
}

func (r *Repository) GetGroupMemberIDs(ctx context.Context, groupID string) ([]string, error) {
	memberIDs, err := r.connection.SMembers(ctx, model.GroupMembersKey(groupID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get group members: %w", err)
	}

	return memberIDs, nil
}

// CreateGroup persists the group record, its member set and the per-user
// group sets in one pipeline.
func (r *Repository) CreateGroup(ctx context.Context, group *model.Group) error {
	raw, err := json.Marshal(group)
	if err != nil {
		return fmt.Errorf("failed to marshal group: %w", err)
	}

	pipe := r.connection.TxPipeline()
	pipe.Set(ctx, model.GroupKey(group.ID), raw, 0)
	for _, memberID := range group.Members {
		pipe.SAdd(ctx, model.GroupMembersKey(group.ID), memberID)
		pipe.SAdd(ctx, model.UserGroupsKey(memberID), group.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to create group: %w", err)
	}

	return nil
}

func (r *Repository) GetUserGroupIDs(ctx context.Context, userID string) ([]string, error) {
	groupIDs, err := r.connection.SMembers(ctx, model.UserGroupsKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get user groups: %w", err)
	}

	return groupIDs, nil
}
