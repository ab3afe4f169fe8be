package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/relay-service/internal/client/centrifugo"
	"github.com/s21platform/relay-service/internal/client/google"
	"github.com/s21platform/relay-service/internal/config"
	"github.com/s21platform/relay-service/internal/infra"
	"github.com/s21platform/relay-service/internal/pkg/jwt"
	"github.com/s21platform/relay-service/internal/pkg/validator"
	"github.com/s21platform/relay-service/internal/repository/postgres"
	redisdb "github.com/s21platform/relay-service/internal/repository/redis"
	"github.com/s21platform/relay-service/internal/rest"
	"github.com/s21platform/relay-service/internal/service"
)

func main() {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)

	chatRepo := redisdb.New(cfg)
	defer chatRepo.Close()

	userRepo := postgres.New(cfg)
	defer userRepo.Close()

	realtimeClient := centrifugo.New(cfg)
	defer realtimeClient.Close()

	googleClient := google.New(cfg)
	vldtr := validator.New()
	tokenManager := jwt.New(cfg.Auth.SessionSecret, cfg.Auth.MobileSecret, cfg.Centrifuge.JWTSecret, cfg.Auth.MobileTokenTTL)

	chatService := service.New(chatRepo, chatRepo, userRepo, realtimeClient)

	handler := rest.New(chatService, chatRepo, userRepo, realtimeClient, tokenManager, googleClient, vldtr)

	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return infra.LoggerHTTP(next, logger)
	})

	router.Route("/api", func(r chi.Router) {
		r.Post("/mobile/auth/google", handler.GoogleAuth)

		// Web surface, session-cookie authenticated.
		r.Group(func(r chi.Router) {
			r.Use(func(next http.Handler) http.Handler {
				return infra.SessionAuthHTTP(next, tokenManager)
			})
			r.Post("/message/send", handler.SendMessage)
			r.Post("/typing", handler.Typing)
			r.Get("/realtime/token", handler.GetConnectToken)
			r.Get("/realtime/chats/{chatId}/token", handler.GetSubscribeToken)
		})

		// Mobile surface, bearer-token authenticated.
		r.Group(func(r chi.Router) {
			r.Use(func(next http.Handler) http.Handler {
				return infra.BearerAuthHTTP(next, tokenManager)
			})
			r.Get("/mobile/chats", handler.GetChats)
			r.Get("/mobile/chats/{chatId}/messages", handler.GetChatMessages)
			r.Post("/mobile/chats/{chatId}/messages", handler.PostChatMessage)
			r.Post("/mobile/typing", handler.Typing)
			r.Get("/mobile/friends", handler.GetFriends)
			r.Post("/mobile/friends/add", handler.AddFriend)
			r.Post("/mobile/friends/accept", handler.AcceptFriend)
			r.Get("/mobile/friends/requests", handler.GetFriendRequests)
			r.Post("/mobile/groups/create", handler.CreateGroup)
			r.Get("/mobile/me", handler.GetMe)
			r.Get("/mobile/realtime/token", handler.GetConnectToken)
			r.Get("/mobile/realtime/chats/{chatId}/token", handler.GetSubscribeToken)
		})
	})

	httpServer := &http.Server{
		Handler: router,
	}

	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.Service.Port))
	if err != nil {
		logger.Error(fmt.Sprintf("failed to start TCP listener: %v", err))
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		// In-flight store/publish calls are allowed to complete.
		return httpServer.Shutdown(context.Background())
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("server error: %v", err))
	}
}
