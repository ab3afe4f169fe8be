package google

import (
	"context"
	"fmt"

	"google.golang.org/api/idtoken"

	"github.com/s21platform/relay-service/internal/config"
	"github.com/s21platform/relay-service/internal/model"
)

type Client struct {
	audience string
}

func New(cfg *config.Config) *Client {
	return &Client{
		audience: cfg.Auth.GoogleClientID,
	}
}

// Verify validates a Google ID token against the configured client id and
// extracts the profile fields the token exchange needs.
func (c *Client) Verify(ctx context.Context, rawToken string) (*model.GoogleProfile, error) {
	payload, err := idtoken.Validate(ctx, rawToken, c.audience)
	if err != nil {
		return nil, fmt.Errorf("failed to validate google id token: %w", err)
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return nil, fmt.Errorf("google id token has no email claim")
	}

	name, _ := payload.Claims["name"].(string)
	picture, _ := payload.Claims["picture"].(string)

	return &model.GoogleProfile{
		Email:   email,
		Name:    name,
		Picture: picture,
	}, nil
}
