package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/s21platform/relay-service/internal/model"
)

// ConversationAccess is the result of an authorization check: the parsed
// conversation plus the full recipient set.
type ConversationAccess struct {
	Conversation *model.Conversation
	Recipients   []string
}

// ResolveAccess determines whether the caller may read or write the
// conversation and resolves its recipient set. Pure read-only checks against
// the friend-set / member-set collaborator; every failure path is closed.
func (s *Service) ResolveAccess(ctx context.Context, callerID, conversationID string) (*ConversationAccess, error) {
	conversation, err := model.ParseConversationID(conversationID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}

	if conversation.Variant == model.GroupVariant {
		return s.resolveGroupAccess(ctx, callerID, conversation)
	}

	return s.resolveDirectAccess(ctx, callerID, conversation)
}

func (s *Service) resolveDirectAccess(ctx context.Context, callerID string, conversation *model.Conversation) (*ConversationAccess, error) {
	if callerID != conversation.ParticipantA && callerID != conversation.ParticipantB {
		return nil, fmt.Errorf("%w: caller is not a participant", ErrForbidden)
	}

	partnerID := conversation.ParticipantA
	if callerID == conversation.ParticipantA {
		partnerID = conversation.ParticipantB
	}

	isFriend, err := s.graph.IsFriend(ctx, callerID, partnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to check friendship: %w", err)
	}
	if !isFriend {
		return nil, fmt.Errorf("%w: participants are not friends", ErrForbidden)
	}

	return &ConversationAccess{
		Conversation: conversation,
		Recipients:   []string{conversation.ParticipantA, conversation.ParticipantB},
	}, nil
}

func (s *Service) resolveGroupAccess(ctx context.Context, callerID string, conversation *model.Conversation) (*ConversationAccess, error) {
	group, err := s.graph.GetGroup(ctx, conversation.GroupID)
	if err != nil {
		return nil, fmt.Errorf("failed to get group: %w", err)
	}
	if group == nil {
		return nil, fmt.Errorf("%w: group %s", ErrNotFound, conversation.GroupID)
	}

	memberIDs, err := s.graph.GetGroupMemberIDs(ctx, conversation.GroupID)
	if err != nil {
		return nil, fmt.Errorf("failed to get group members: %w", err)
	}

	if !slices.Contains(memberIDs, callerID) {
		return nil, fmt.Errorf("%w: caller is not a group member", ErrForbidden)
	}

	return &ConversationAccess{
		Conversation: conversation,
		Recipients:   memberIDs,
	}, nil
}
