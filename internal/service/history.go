package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/s21platform/relay-service/internal/model"
)

const (
	minPageLimit     = 1
	maxPageLimit     = 100
	DefaultPageLimit = 30
)

// ListMessages reconstructs one cursor-based page of conversation history:
// the most recent `limit` messages strictly older than `cursor`, in ascending
// timestamp order. A repeated call with the same arguments and no intervening
// writes returns the same page.
func (s *Service) ListMessages(ctx context.Context, callerID, conversationID string, limit int32, cursor int64) (*model.MessagePage, error) {
	if _, err := s.ResolveAccess(ctx, callerID, conversationID); err != nil {
		return nil, err
	}

	if limit < minPageLimit {
		limit = minPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	all, err := s.store.GetAllMessages(ctx, conversationID)
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Timestamp < all[j].Timestamp
	})

	filtered := all
	if cursor > 0 {
		filtered = filtered[:0:0]
		for _, message := range all {
			if message.Timestamp < cursor {
				filtered = append(filtered, message)
			}
		}
	}

	if len(filtered) > int(limit) {
		filtered = filtered[len(filtered)-int(limit):]
	}

	page := &model.MessagePage{
		Messages: filtered,
	}
	if page.Messages == nil {
		page.Messages = model.MessageList{}
	}
	if len(page.Messages) > 0 {
		page.NextCursor = &page.Messages[0].Timestamp
	}

	return page, nil
}
