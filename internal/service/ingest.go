package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/s21platform/relay-service/internal/model"
)

// Service is the messaging pipeline shared by the web-session and bearer
// transports: one authorization path, one canonical message construction,
// one fan-out, regardless of which surface the request arrived on.
type Service struct {
	store     MessageStore
	graph     SocialGraph
	users     UserProvider
	publisher EventPublisher
}

func New(store MessageStore, graph SocialGraph, users UserProvider, publisher EventPublisher) *Service {
	return &Service{
		store:     store,
		graph:     graph,
		users:     users,
		publisher: publisher,
	}
}

// SendMessage runs the ingestion pipeline: validate, authorize, persist,
// fan out. A fan-out failure after the append returns the stored message
// together with ErrDeliveryUncertain; the message is durable either way.
func (s *Service) SendMessage(ctx context.Context, senderID, conversationID, text string) (*model.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" || conversationID == "" {
		return nil, fmt.Errorf("%w: text and chat id are required", ErrInvalidPayload)
	}

	access, err := s.ResolveAccess(ctx, senderID, conversationID)
	if err != nil {
		return nil, err
	}

	message := &model.Message{
		ID:        uuid.New().String(),
		SenderID:  senderID,
		Text:      text,
		Timestamp: time.Now().UnixMilli(),
	}

	if err := s.store.AppendMessage(ctx, conversationID, message); err != nil {
		return nil, fmt.Errorf("failed to persist message: %w", err)
	}

	if err := s.fanOut(ctx, access, message); err != nil {
		return message, fmt.Errorf("%w: %v", ErrDeliveryUncertain, err)
	}

	return message, nil
}

// fanOut publishes the message to the conversation channel and a chat-list
// notification to every recipient except the sender. The sender profile is
// fetched once and only when at least one notification target exists.
func (s *Service) fanOut(ctx context.Context, access *ConversationAccess, message *model.Message) error {
	pubErr := s.publisher.Publish(
		ctx,
		model.ConversationChannel(access.Conversation.ID),
		model.EventIncomingMessage,
		message,
	)

	var targets []string
	for _, recipientID := range access.Recipients {
		if recipientID != message.SenderID {
			targets = append(targets, recipientID)
		}
	}

	if len(targets) == 0 {
		return pubErr
	}

	notification := model.MessageNotification{Message: *message}
	sender, err := s.users.GetUserByID(ctx, message.SenderID)
	if err != nil {
		pubErr = errors.Join(pubErr, fmt.Errorf("failed to get sender profile: %w", err))
	}
	if sender != nil {
		notification.SenderName = sender.Name
		notification.SenderImg = sender.AvatarURL
	}

	g, gCtx := errgroup.WithContext(ctx)
	for _, targetID := range targets {
		g.Go(func() error {
			return s.publisher.Publish(gCtx, model.UserChannel(targetID), model.EventNewMessage, notification)
		})
	}

	return errors.Join(pubErr, g.Wait())
}

// Typing relays a typing indicator to the conversation's typing channel.
// Nothing is persisted and no delivery guarantee is made.
func (s *Service) Typing(ctx context.Context, userID, conversationID string, isTyping bool) error {
	if _, err := model.ParseConversationID(conversationID); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	event := model.TypingEvent{
		UserID:   userID,
		IsTyping: isTyping,
	}

	if err := s.publisher.Publish(ctx, model.TypingChannel(conversationID), model.EventTyping, event); err != nil {
		return fmt.Errorf("failed to publish typing event: %w", err)
	}

	return nil
}
