package model

import "github.com/golang-jwt/jwt/v5"

// SessionClaims is the payload of the web session cookie issued by the auth
// collaborator. The user id travels in the subject.
type SessionClaims struct {
	jwt.RegisteredClaims
}

// MobileClaims is the payload of the bearer token used by the mobile client.
type MobileClaims struct {
	jwt.RegisteredClaims

	UID string `json:"uid"`
}

type CentrifugoConnectClaims struct {
	jwt.RegisteredClaims
}

type CentrifugoSubscribeClaims struct {
	jwt.RegisteredClaims

	Channel string `json:"channel"`
	UserID  string `json:"user_id"`
}
