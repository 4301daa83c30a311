package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/redis/go-redis/v9"
	"github.com/saberalex11/education/internal/api"
	"github.com/saberalex11/education/internal/auth"
	"github.com/saberalex11/education/internal/clients"
	"github.com/saberalex11/education/internal/storage"
	"github.com/saberalex11/education/internal/token"
	"github.com/saberalex11/education/internal/ui"
)

func main() {
	// Setup structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// Load the client registry
	clientRecords, err := clients.LoadFromFile(cfg.ClientsFile)
	if err != nil {
		slog.Error("Failed to load clients", "error", err)
		os.Exit(1)
	}
	registry := clients.NewMemoryRegistry(clientRecords)
	slog.Info("Loaded client registry", "file", cfg.ClientsFile, "clients", len(clientRecords))

	// Setup user storage
	var userStore storage.UserStore
	switch cfg.UserStoreMode {
	case "s3":
		s3Store, err := storage.NewS3UserStore(cfg.S3.Endpoint, cfg.S3.AccessKey, cfg.S3.SecretKey, cfg.S3.Bucket, cfg.S3.UseSSL)
		if err != nil {
			slog.Error("Failed to create S3 user store", "error", err)
			os.Exit(1)
		}
		userStore = s3Store
		slog.Info("Using S3 user store", "endpoint", cfg.S3.Endpoint, "bucket", cfg.S3.Bucket)
	case "filesystem":
		fsStore, err := storage.NewFilesystemUserStore(cfg.DataPath)
		if err != nil {
			slog.Error("Failed to create filesystem user store", "error", err)
			os.Exit(1)
		}
		userStore = fsStore
		slog.Info("Using filesystem user store", "path", cfg.DataPath)
	default:
		slog.Error("Invalid USER_STORE_MODE", "mode", cfg.UserStoreMode, "valid_modes", []string{"s3", "filesystem"})
		os.Exit(1)
	}

	// Setup token storage
	var tokenStore storage.TokenStore
	switch cfg.TokenStoreMode {
	case "redis":
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		// Test Redis connection
		ctx := context.Background()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			slog.Error("Failed to connect to Redis", "error", err)
			os.Exit(1)
		}

		tokenStore = storage.NewRedisTokenStore(redisClient)
		slog.Info("Using Redis token store", "addr", cfg.Redis.Addr)
	case "memory":
		tokenStore = storage.NewMemoryTokenStore()
		slog.Warn("Using in-memory token store (not persistent)")
	default:
		slog.Error("Invalid TOKEN_STORE_MODE", "mode", cfg.TokenStoreMode, "valid_modes", []string{"redis", "memory"})
		os.Exit(1)
	}

	// Setup services
	authService := auth.NewService(userStore, logger)
	tokenService := token.NewService(cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	issuer := token.NewIssuer(registry, tokenService, tokenStore, logger)
	server := api.NewServer(authService, issuer)

	loginUI, err := ui.NewLoginHandlers()
	if err != nil {
		slog.Error("Failed to create login UI handlers", "error", err)
		os.Exit(1)
	}

	// Setup routes
	mux := http.NewServeMux()

	// Login and issuance
	mux.HandleFunc("GET /login", loginUI.LoginPageHandler)
	mux.HandleFunc("POST /auth/token", server.TokenHandler)
	mux.HandleFunc("POST /mobile/token", server.MobileTokenHandler)
	mux.HandleFunc("POST /email/token", server.EmailTokenHandler)

	// Anonymous API surface
	mux.HandleFunc("GET /api/health", server.HealthHandler)
	mux.HandleFunc("GET /api/public/ping", server.PingHandler)

	// Token-protected surface
	mux.HandleFunc("GET /me", server.MeHandler)

	// Apply middleware: every path outside the anonymous patterns requires
	// a bearer token backed by the token store.
	policy := api.NewBearerPolicy(tokenStore, api.AnonymousPatterns)
	handler := api.LoggingMiddleware(api.CORSMiddleware(policy.Middleware(mux)))

	// Create HTTP server
	httpServer := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	fmt.Printf("Education auth service starting on http://localhost:%s\n", cfg.Port)
	fmt.Println("Endpoints:")
	fmt.Println("  GET  /login           - Login page")
	fmt.Println("  POST /auth/token      - Form login, returns access token (Basic client credentials required)")
	fmt.Println("  POST /mobile/token    - SMS-code login (reserved)")
	fmt.Println("  POST /email/token     - Email login (reserved)")
	fmt.Println("  GET  /api/health      - Health check")
	fmt.Println("  GET  /me              - Authenticated principal (Bearer token required)")

	if err := httpServer.ListenAndServe(); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
