package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/relay-service/internal/config"
	"github.com/s21platform/relay-service/internal/model"
	"github.com/s21platform/relay-service/internal/service"
)

type Handler struct {
	service        ChatService
	chatRepository ChatRepo
	userRepository UserRepo
	realtimeClient RealtimeClient
	tokenManager   TokenManager
	googleVerifier GoogleVerifier
	validator      Validator
}

func New(
	svc ChatService,
	chatRepo ChatRepo,
	userRepo UserRepo,
	realtimeClient RealtimeClient,
	tokenManager TokenManager,
	googleVerifier GoogleVerifier,
	vldtr Validator,
) *Handler {
	return &Handler{
		service:        svc,
		chatRepository: chatRepo,
		userRepository: userRepo,
		realtimeClient: realtimeClient,
		tokenManager:   tokenManager,
		googleVerifier: googleVerifier,
		validator:      vldtr,
	}
}

// SendMessage is the web-session ingestion entrypoint.
func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SendMessage")

	var req SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	senderID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get sender ID")
		h.writeError(w, "failed to get sender ID", http.StatusInternalServerError)
		return
	}

	_, err := h.service.SendMessage(r.Context(), senderID, req.ChatID, req.Text)
	if errors.Is(err, service.ErrDeliveryUncertain) {
		logger.Error(fmt.Sprintf("message stored but fan-out failed: %v", err))
	} else if err != nil {
		h.writeServiceError(w, logger, err)
		return
	}

	h.writeJSON(w, SendMessageResponse{Success: true}, http.StatusOK)
}

// PostChatMessage is the bearer-token ingestion entrypoint. Same pipeline as
// SendMessage, different surface shape.
func (h *Handler) PostChatMessage(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("PostChatMessage")

	chatID := chatIDParam(r)

	var req PostChatMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	senderID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get sender ID")
		h.writeError(w, "failed to get sender ID", http.StatusInternalServerError)
		return
	}

	message, err := h.service.SendMessage(r.Context(), senderID, chatID, req.Text)
	if errors.Is(err, service.ErrDeliveryUncertain) {
		logger.Error(fmt.Sprintf("message stored but fan-out failed: %v", err))
	} else if err != nil {
		h.writeServiceError(w, logger, err)
		return
	}

	h.writeJSON(w, PostChatMessageResponse{OK: true, Message: *message}, http.StatusOK)
}

// GetChatMessages returns one cursor-based page of conversation history.
func (h *Handler) GetChatMessages(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetChatMessages")

	userID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user ID")
		h.writeError(w, "failed to get user ID", http.StatusInternalServerError)
		return
	}

	chatID := chatIDParam(r)

	limit := int32(service.DefaultPageLimit)
	if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
		parsed, err := strconv.ParseInt(rawLimit, 10, 32)
		if err != nil {
			logger.Error(fmt.Sprintf("failed to parse limit %q: %v", rawLimit, err))
			h.writeError(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = int32(parsed)
	}

	var cursor int64
	if rawCursor := r.URL.Query().Get("cursor"); rawCursor != "" {
		parsed, err := strconv.ParseInt(rawCursor, 10, 64)
		if err != nil {
			logger.Error(fmt.Sprintf("failed to parse cursor %q: %v", rawCursor, err))
			h.writeError(w, "invalid cursor", http.StatusBadRequest)
			return
		}
		cursor = parsed
	}

	page, err := h.service.ListMessages(r.Context(), userID, chatID, limit, cursor)
	if err != nil {
		h.writeServiceError(w, logger, err)
		return
	}

	h.writeJSON(w, ListMessagesResponse{
		Messages:   page.Messages,
		NextCursor: page.NextCursor,
	}, http.StatusOK)
}

// Typing relays a typing indicator. Authenticated callers only; no
// persistence, no delivery guarantee.
func (h *Handler) Typing(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("Typing")

	var req TypingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.ChatID == "" || req.IsTyping == nil {
		logger.Error("typing payload is missing chatId or isTyping")
		h.writeError(w, "invalid payload", http.StatusBadRequest)
		return
	}

	userID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user ID")
		h.writeError(w, "failed to get user ID", http.StatusInternalServerError)
		return
	}

	if err := h.service.Typing(r.Context(), userID, req.ChatID, *req.IsTyping); err != nil {
		h.writeServiceError(w, logger, err)
		return
	}

	h.writeJSON(w, StatusResponse{Success: true}, http.StatusOK)
}

// GetChats returns the caller's chat list: DM summaries with the latest
// message preview plus group summaries.
func (h *Handler) GetChats(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetChats")

	userID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user ID")
		h.writeError(w, "failed to get user ID", http.StatusInternalServerError)
		return
	}

	friendIDs, err := h.chatRepository.GetFriendIDs(r.Context(), userID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get friends: %v", err))
		h.writeError(w, "internal error", http.StatusInternalServerError)
		return
	}

	dms := make([]DmSummary, 0, len(friendIDs))
	for _, friendID := range friendIDs {
		friend, err := h.userRepository.GetUserByID(r.Context(), friendID)
		if err != nil {
			logger.Error(fmt.Sprintf("failed to get friend %s: %v", friendID, err))
			h.writeError(w, "internal error", http.StatusInternalServerError)
			return
		}
		if friend == nil {
			friend = &model.User{ID: friendID, Name: "Unknown"}
		}

		chatID := model.DirectConversationID(userID, friendID)
		lastMessage, err := h.chatRepository.GetLastMessage(r.Context(), chatID)
		if err != nil {
			logger.Error(fmt.Sprintf("failed to get last message of %s: %v", chatID, err))
			h.writeError(w, "internal error", http.StatusInternalServerError)
			return
		}

		dms = append(dms, DmSummary{
			ChatID:      chatID,
			Friend:      *friend,
			LastMessage: lastMessage,
		})
	}

	groupIDs, err := h.chatRepository.GetUserGroupIDs(r.Context(), userID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get user groups: %v", err))
		h.writeError(w, "internal error", http.StatusInternalServerError)
		return
	}

	groups := make([]model.Group, 0, len(groupIDs))
	for _, groupID := range groupIDs {
		group, err := h.chatRepository.GetGroup(r.Context(), groupID)
		if err != nil {
			logger.Error(fmt.Sprintf("failed to get group %s: %v", groupID, err))
			h.writeError(w, "internal error", http.StatusInternalServerError)
			return
		}
		if group == nil {
			continue
		}
		groups = append(groups, *group)
	}

	h.writeJSON(w, GetChatsResponse{Dms: dms, Groups: groups}, http.StatusOK)
}

func (h *Handler) GetFriends(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetFriends")

	userID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user ID")
		h.writeError(w, "failed to get user ID", http.StatusInternalServerError)
		return
	}

	friendIDs, err := h.chatRepository.GetFriendIDs(r.Context(), userID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get friends: %v", err))
		h.writeError(w, "internal error", http.StatusInternalServerError)
		return
	}

	friends, err := h.resolveUsers(r, friendIDs)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to resolve friends: %v", err))
		h.writeError(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, GetFriendsResponse{Friends: friends}, http.StatusOK)
}

// AddFriend records an incoming friend request and notifies the recipient.
func (h *Handler) AddFriend(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("AddFriend")

	var req AddFriendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	userID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user ID")
		h.writeError(w, "failed to get user ID", http.StatusInternalServerError)
		return
	}

	target, err := h.userRepository.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to look up user by email: %v", err))
		h.writeError(w, "internal error", http.StatusInternalServerError)
		return
	}
	if target == nil {
		h.writeError(w, "this person does not exist", http.StatusBadRequest)
		return
	}

	if target.ID == userID {
		h.writeError(w, "you cannot add yourself as a friend", http.StatusBadRequest)
		return
	}

	alreadyRequested, err := h.chatRepository.HasFriendRequest(r.Context(), target.ID, userID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to check friend request: %v", err))
		h.writeError(w, "internal error", http.StatusInternalServerError)
		return
	}
	if alreadyRequested {
		h.writeError(w, "already added this user", http.StatusBadRequest)
		return
	}

	alreadyFriends, err := h.chatRepository.IsFriend(r.Context(), userID, target.ID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to check friendship: %v", err))
		h.writeError(w, "internal error", http.StatusInternalServerError)
		return
	}
	if alreadyFriends {
		h.writeError(w, "already friends with this user", http.StatusBadRequest)
		return
	}

	me, err := h.userRepository.GetUserByID(r.Context(), userID)
	if err != nil || me == nil {
		logger.Error(fmt.Sprintf("failed to get requester profile: %v", err))
		h.writeError(w, "internal error", http.StatusInternalServerError)
		return
	}

	if err := h.chatRepository.AddFriendRequest(r.Context(), target.ID, userID); err != nil {
		logger.Error(fmt.Sprintf("failed to store friend request: %v", err))
		h.writeError(w, "internal error", http.StatusInternalServerError)
		return
	}

	event := model.FriendRequestEvent{SenderID: userID, SenderEmail: me.Email}
	if err := h.realtimeClient.Publish(r.Context(), model.UserChannel(target.ID), model.EventIncomingFriendRequest, event); err != nil {
		logger.Error(fmt.Sprintf("friend request stored but notification failed: %v", err))
	}

	h.writeJSON(w, StatusResponse{Success: true}, http.StatusOK)
}

// AcceptFriend turns a pending request into a mutual friend edge and
// notifies both sides.
func (h *Handler) AcceptFriend(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("AcceptFriend")

	var req AcceptFriendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	userID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user ID")
		h.writeError(w, "failed to get user ID", http.StatusInternalServerError)
		return
	}

	alreadyFriends, err := h.chatRepository.IsFriend(r.Context(), userID, req.ID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to check friendship: %v", err))
		h.writeError(w, "internal error", http.StatusInternalServerError)
		return
	}
	if alreadyFriends {
		h.writeError(w, "already friends", http.StatusBadRequest)
		return
	}

	hasRequest, err := h.chatRepository.HasFriendRequest(r.Context(), userID, req.ID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to check friend request: %v", err))
		h.writeError(w, "internal error", http.StatusInternalServerError)
		return
	}
	if !hasRequest {
		h.writeError(w, "no friend request", http.StatusBadRequest)
		return
	}

	me, err := h.userRepository.GetUserByID(r.Context(), userID)
	if err != nil || me == nil {
		logger.Error(fmt.Sprintf("failed to get accepter profile: %v", err))
		h.writeError(w, "internal error", http.StatusInternalServerError)
		return
	}

	friend, err := h.userRepository.GetUserByID(r.Context(), req.ID)
	if err != nil || friend == nil {
		logger.Error(fmt.Sprintf("failed to get friend profile: %v", err))
		h.writeError(w, "internal error", http.StatusInternalServerError)
		return
	}

	if err := h.chatRepository.AcceptFriend(r.Context(), userID, req.ID); err != nil {
		logger.Error(fmt.Sprintf("failed to accept friend: %v", err))
		h.writeError(w, "internal error", http.StatusInternalServerError)
		return
	}

	if err := h.realtimeClient.Publish(r.Context(), model.UserChannel(req.ID), model.EventNewFriend, me); err != nil {
		logger.Error(fmt.Sprintf("friendship stored but notification failed: %v", err))
	}
	if err := h.realtimeClient.Publish(r.Context(), model.UserChannel(userID), model.EventNewFriend, friend); err != nil {
		logger.Error(fmt.Sprintf("friendship stored but notification failed: %v", err))
	}

	h.writeJSON(w, StatusResponse{Success: true}, http.StatusOK)
}

func (h *Handler) GetFriendRequests(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetFriendRequests")

	userID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user ID")
		h.writeError(w, "failed to get user ID", http.StatusInternalServerError)
		return
	}

	requestIDs, err := h.chatRepository.GetFriendRequestIDs(r.Context(), userID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get friend requests: %v", err))
		h.writeError(w, "internal error", http.StatusInternalServerError)
		return
	}

	incoming, err := h.resolveUsers(r, requestIDs)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to resolve requesters: %v", err))
		h.writeError(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, GetFriendRequestsResponse{Incoming: incoming}, http.StatusOK)
}

// CreateGroup persists a new group chat and announces it to every member.
func (h *Handler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("CreateGroup")

	var req CreateGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	creatorID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get creator ID")
		h.writeError(w, "failed to get creator ID", http.StatusInternalServerError)
		return
	}

	allMembers, err := h.validator.ValidateCreateGroup(req.Name, req.Members, creatorID)
	if err != nil {
		logger.Error(fmt.Sprintf("group validation failed: %v", err))
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	for _, memberID := range allMembers {
		member, err := h.userRepository.GetUserByID(r.Context(), memberID)
		if err != nil {
			logger.Error(fmt.Sprintf("failed to check member %s: %v", memberID, err))
			h.writeError(w, "internal error", http.StatusInternalServerError)
			return
		}
		if member == nil {
			h.writeError(w, "one or more member IDs are invalid", http.StatusBadRequest)
			return
		}
	}

	group := &model.Group{
		ID:          uuid.New().String(),
		Name:        h.validator.SanitizeGroupName(req.Name),
		Description: h.validator.SanitizeDescription(req.Description),
		Members:     allMembers,
		Admins:      []string{creatorID},
		CreatedAt:   nowMillis(),
		CreatedBy:   creatorID,
	}

	if err := h.chatRepository.CreateGroup(r.Context(), group); err != nil {
		logger.Error(fmt.Sprintf("failed to create group: %v", err))
		h.writeError(w, "internal error", http.StatusInternalServerError)
		return
	}

	for _, memberID := range allMembers {
		if err := h.realtimeClient.Publish(r.Context(), model.UserChannel(memberID), model.EventGroupCreated, group); err != nil {
			logger.Error(fmt.Sprintf("group stored but notification to %s failed: %v", memberID, err))
		}
	}

	h.writeJSON(w, group, http.StatusOK)
}

func (h *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetMe")

	userID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user ID")
		h.writeError(w, "failed to get user ID", http.StatusInternalServerError)
		return
	}

	user, err := h.userRepository.GetUserByID(r.Context(), userID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get user: %v", err))
		h.writeError(w, "internal error", http.StatusInternalServerError)
		return
	}
	if user == nil {
		h.writeError(w, "not found", http.StatusNotFound)
		return
	}

	h.writeJSON(w, GetMeResponse{User: *user}, http.StatusOK)
}

// GoogleAuth exchanges a verified Google ID token for a mobile bearer token,
// creating the user record on first sight.
func (h *Handler) GoogleAuth(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GoogleAuth")

	var req GoogleAuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.IDToken == "" {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	profile, err := h.googleVerifier.Verify(r.Context(), req.IDToken)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to verify google token: %v", err))
		h.writeError(w, "invalid google token", http.StatusUnauthorized)
		return
	}

	user, err := h.userRepository.GetUserByEmail(r.Context(), profile.Email)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to look up user: %v", err))
		h.writeError(w, "internal error", http.StatusInternalServerError)
		return
	}

	if user == nil {
		user = &model.User{
			ID:        uuid.New().String(),
			Name:      profile.Name,
			Email:     profile.Email,
			AvatarURL: profile.Picture,
		}
		if user.Name == "" {
			user.Name = profile.Email
		}
		if err := h.userRepository.UpsertUser(r.Context(), user); err != nil {
			logger.Error(fmt.Sprintf("failed to create user: %v", err))
			h.writeError(w, "internal error", http.StatusInternalServerError)
			return
		}
	}

	token, expiresAt, err := h.tokenManager.NewMobileToken(user.ID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to issue mobile token: %v", err))
		h.writeError(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, GoogleAuthResponse{Token: token, ExpiresAt: expiresAt, User: *user}, http.StatusOK)
}

func (h *Handler) GetConnectToken(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetConnectToken")

	userID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user ID")
		h.writeError(w, "failed to get user ID", http.StatusInternalServerError)
		return
	}

	token, expiresAt, err := h.tokenManager.NewConnectToken(userID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to generate connect token: %v", err))
		h.writeError(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, ConnectTokenResponse{Token: token, ExpiresAt: expiresAt}, http.StatusOK)
}

// GetSubscribeToken issues a channel subscribe token after the same access
// check the messaging pipeline uses.
func (h *Handler) GetSubscribeToken(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetSubscribeToken")

	userID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user ID")
		h.writeError(w, "failed to get user ID", http.StatusInternalServerError)
		return
	}

	chatID := chatIDParam(r)

	if _, err := h.service.ResolveAccess(r.Context(), userID, chatID); err != nil {
		h.writeServiceError(w, logger, err)
		return
	}

	channel := model.ConversationChannel(chatID)
	token, expiresAt, err := h.tokenManager.NewSubscribeToken(userID, channel)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to generate subscribe token: %v", err))
		h.writeError(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, SubscribeTokenResponse{Token: token, ExpiresAt: expiresAt, Channel: channel}, http.StatusOK)
}

// ----------------------------- helpers -----------------------------

// chatIDParam extracts the conversation id path parameter. Group ids carry a
// ":" which clients may percent-encode.
func chatIDParam(r *http.Request) string {
	chatID := chi.URLParam(r, "chatId")
	if decoded, err := url.PathUnescape(chatID); err == nil {
		chatID = decoded
	}
	return chatID
}

func nowMillis() int64 {
	return time.Now().UnixMilli()
}

func (h *Handler) resolveUsers(r *http.Request, userIDs []string) ([]model.User, error) {
	users := make([]model.User, 0, len(userIDs))
	for _, userID := range userIDs {
		user, err := h.userRepository.GetUserByID(r.Context(), userID)
		if err != nil {
			return nil, err
		}
		if user == nil {
			user = &model.User{ID: userID, Name: "Unknown"}
		}
		users = append(users, *user)
	}
	return users, nil
}

func (h *Handler) writeServiceError(w http.ResponseWriter, logger logger_lib.LoggerInterface, err error) {
	logger.Error(fmt.Sprintf("request failed: %v", err))

	switch {
	case errors.Is(err, service.ErrInvalidPayload):
		h.writeError(w, "invalid payload", http.StatusBadRequest)
	case errors.Is(err, service.ErrForbidden):
		h.writeError(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, service.ErrNotFound):
		h.writeError(w, "not found", http.StatusNotFound)
	default:
		h.writeError(w, "internal error", http.StatusInternalServerError)
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(Error{Error: message})
}
