package model

// User is the minimal profile record. Profile data is owned by the auth
// collaborator; this service only reads it for display metadata and keeps a
// local copy fresh through the user databus.
type User struct {
	ID        string `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	Email     string `db:"email" json:"email"`
	AvatarURL string `db:"avatar_url" json:"image,omitempty"`
}

type Group struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Members     []string `json:"members"`
	Admins      []string `json:"admins,omitempty"`
	CreatedAt   int64    `json:"createdAt"`
	CreatedBy   string   `json:"createdBy"`
}

// GoogleProfile is the subset of a verified Google ID token used to find or
// create a user during the mobile token exchange.
type GoogleProfile struct {
	Email   string
	Name    string
	Picture string
}

// FriendRequestEvent is published to the recipient's user channel when a
// friend request arrives.
type FriendRequestEvent struct {
	SenderID    string `json:"senderId"`
	SenderEmail string `json:"senderEmail"`
}
