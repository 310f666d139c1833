package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"google.golang.org/grpc/health"

	grpcrouter "github.com/dtroode/notes-server/internal/api/grpc/router"
	grpcserver "github.com/dtroode/notes-server/internal/api/grpc/server"
	httpctx "github.com/dtroode/notes-server/internal/api/http/context"
	"github.com/dtroode/notes-server/internal/api/http/handler"
	httprouter "github.com/dtroode/notes-server/internal/api/http/router"
	httpserver "github.com/dtroode/notes-server/internal/api/http/server"
	"github.com/dtroode/notes-server/internal/config"
	"github.com/dtroode/notes-server/internal/logger"
	"github.com/dtroode/notes-server/internal/model"
	"github.com/dtroode/notes-server/internal/password"
	"github.com/dtroode/notes-server/internal/repository/postgres"
	"github.com/dtroode/notes-server/internal/server"
	"github.com/dtroode/notes-server/internal/service"
	storage "github.com/dtroode/notes-server/internal/storage/minio"
	"github.com/dtroode/notes-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize database", "error", err)
	}
	defer db.Close()

	tokenManager, err := token.NewJWT(token.Options{
		AccessSecret:  cfg.JWT.AccessSecret,
		RefreshSecret: cfg.JWT.RefreshSecret,
		AccessTTL:     cfg.JWT.AccessTTL,
		RefreshTTL:    cfg.JWT.RefreshTTL,
	})
	if err != nil {
		logger.Fatal("failed to configure token issuer", "error", err)
	}

	userRepo := postgres.NewUserRepository(db)
	noteRepo := postgres.NewNoteRepository(db)

	tokenService := service.NewTokenService(tokenManager, userRepo, logger)
	authService := service.NewAuth(
		userRepo,
		password.NewBcrypt(cfg.Auth.PasswordCost),
		newAvatarStorage(ctx, cfg.Storage, logger),
		tokenService,
		logger,
		service.AuthOptions{RevokeOnPasswordChange: cfg.Auth.RevokeOnPasswordChange},
	)
	noteService := service.NewNote(noteRepo, userRepo, logger)

	httpRouter := httprouter.New(authService, noteService, tokenService, db, httpctx.NewManager(), logger, httprouter.Options{
		CORSOrigins:       cfg.HTTP.CORSOrigins,
		MaxBodyBytes:      cfg.HTTP.MaxBodyBytes,
		MaxMultipartBytes: cfg.HTTP.MaxMultipartBytes,
		Cookies: handler.CookieOptions{
			Secure:     cfg.Cookie.Secure,
			SameSite:   handler.ParseSameSite(cfg.Cookie.SameSite),
			Domain:     cfg.Cookie.Domain,
			AccessTTL:  cfg.JWT.AccessTTL,
			RefreshTTL: cfg.JWT.RefreshTTL,
		},
	})
	healthServer := health.NewServer()

	servers := []model.Server{
		httpserver.NewHTTPServer(httpRouter.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port)),
		grpcserver.NewGRPCServer(grpcrouter.New(healthServer, logger).Register(), healthServer, fmt.Sprintf(":%s", cfg.GRPC.Port)),
	}

	var sl model.SecurityLayer
	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	for _, s := range servers {
		wg.Add(1)
		go func(s model.Server) {
			defer wg.Done()
			logger.Info("Starting server on", "address", s.Address())
			if err := s.Start(sl); err != nil {
				logger.Error("failed to start server", "error", err, "address", s.Address())
				stop()
			}
		}(s)
	}

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	for _, s := range servers {
		if err := s.Stop(shutdownCtx); err != nil {
			logger.Error("error during server shutdown", "error", err, "address", s.Address())
		}
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

// newAvatarStorage connects to object storage. Without it registration still
// works and every user gets a generated avatar.
func newAvatarStorage(ctx context.Context, cfg config.Storage, logger *logger.Logger) model.Storage {
	client, err := storage.New(ctx, storage.Options{
		Endpoint:  cfg.Endpoint,
		AccessKey: cfg.AccessKey,
		SecretKey: cfg.SecretKey,
		Bucket:    cfg.Bucket,
		UseSSL:    cfg.UseSSL,
		PublicURL: cfg.PublicURL,
	})
	if err != nil {
		logger.Error("avatar storage unavailable, uploads disabled", "error", err)
		return nil
	}
	return client
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
