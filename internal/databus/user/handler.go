//go:generate mockgen -destination=mock_handler_test.go -package=${GOPACKAGE} -source=handler.go
package user

import (
	"context"
	"encoding/json"
	"fmt"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/relay-service/internal/config"
)

type DBRepo interface {
	UpdateUserName(ctx context.Context, userID, newName string) error
	UpdateUserAvatar(ctx context.Context, userID, avatarLink string) error
}

// UserUpdate is the profile-change event published by the auth collaborator.
type UserUpdate struct {
	UserUUID  string  `json:"user_uuid"`
	Name      *string `json:"name"`
	AvatarURL *string `json:"avatar_url"`
}

type Handler struct {
	repository DBRepo
}

func New(repo DBRepo) *Handler {
	return &Handler{
		repository: repo,
	}
}

// Handler applies one profile-change event to the local users table.
func (h *Handler) Handler(ctx context.Context, in []byte) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("UserUpdateHandler")

	var update UserUpdate
	if err := json.Unmarshal(in, &update); err != nil {
		logger.Error(fmt.Sprintf("failed to unmarshal user update: %v", err))
		return
	}

	if update.UserUUID == "" {
		logger.Error("user update has no user_uuid")
		return
	}

	if update.Name != nil {
		if err := h.repository.UpdateUserName(ctx, update.UserUUID, *update.Name); err != nil {
			logger.Error(fmt.Sprintf("failed to update name for %s: %v", update.UserUUID, err))
		}
	}

	if update.AvatarURL != nil {
		if err := h.repository.UpdateUserAvatar(ctx, update.UserUUID, *update.AvatarURL); err != nil {
			logger.Error(fmt.Sprintf("failed to update avatar for %s: %v", update.UserUUID, err))
		}
	}
}
