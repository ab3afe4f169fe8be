package model

import (
	"fmt"
	"strings"
)

// Conversation variants. Routing and authorization differ by variant, so
// detection must be exact: everything that is not a well-formed direct or
// group identifier is rejected.
const (
	DirectVariant = "direct"
	GroupVariant  = "group"
)

const (
	groupIDPrefix   = "group:"
	directSeparator = "--"
)

// Realtime event names. One event name per concern, shared by both
// conversation variants.
const (
	EventIncomingMessage       = "incoming-message"
	EventNewMessage            = "new-message"
	EventTyping                = "typing"
	EventIncomingFriendRequest = "incoming-friend-request"
	EventNewFriend             = "new-friend"
	EventGroupCreated          = "group-created"
)

// Conversation is the parsed form of a conversation identifier.
type Conversation struct {
	ID      string
	Variant string

	// Direct participants, sorted. Empty for groups.
	ParticipantA string
	ParticipantB string

	// Bare group id with the namespace prefix stripped. Empty for direct.
	GroupID string
}

// ParseConversationID detects the conversation variant from the identifier
// shape: "group:<id>" is a group chat, "<a>--<b>" is a direct chat. Anything
// else is malformed.
func ParseConversationID(id string) (*Conversation, error) {
	if groupID, ok := strings.CutPrefix(id, groupIDPrefix); ok {
		if groupID == "" || strings.Contains(groupID, directSeparator) {
			return nil, fmt.Errorf("malformed group conversation id %q", id)
		}
		return &Conversation{ID: id, Variant: GroupVariant, GroupID: groupID}, nil
	}

	parts := strings.Split(id, directSeparator)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil, fmt.Errorf("malformed conversation id %q", id)
	}

	return &Conversation{
		ID:           id,
		Variant:      DirectVariant,
		ParticipantA: parts[0],
		ParticipantB: parts[1],
	}, nil
}

// DirectConversationID builds the canonical pairwise identifier: both
// participant ids in lexicographic order, so either direction of lookup
// produces the same string.
func DirectConversationID(userA, userB string) string {
	if userA > userB {
		userA, userB = userB, userA
	}
	return userA + directSeparator + userB
}

// GroupConversationID builds the conversation identifier for a bare group id.
func GroupConversationID(groupID string) string {
	return groupIDPrefix + groupID
}

// MessagesKey derives the storage key of a conversation's message log. It is
// the single key-derivation point shared by the ingestion and read paths.
func (c *Conversation) MessagesKey() string {
	if c.Variant == GroupVariant {
		return fmt.Sprintf("group:%s:messages", c.GroupID)
	}
	return fmt.Sprintf("chat:%s:messages", c.ID)
}

// Storage keys for the social graph collaborator sets and group records.
func GroupKey(groupID string) string        { return groupIDPrefix + groupID }
func GroupMembersKey(groupID string) string { return fmt.Sprintf("group:%s:members", groupID) }
func UserFriendsKey(userID string) string   { return fmt.Sprintf("user:%s:friends", userID) }
func UserGroupsKey(userID string) string    { return fmt.Sprintf("user:%s:groups", userID) }
func UserFriendRequestsKey(userID string) string {
	return fmt.Sprintf("user:%s:incoming_friend_requests", userID)
}

// Channel naming, one function per channel class. Collision-free because the
// three namespaces are distinct.
func ConversationChannel(conversationID string) string { return "conversation:" + conversationID }
func UserChannel(userID string) string                 { return "user:" + userID }
func TypingChannel(conversationID string) string       { return "typing:" + conversationID }
