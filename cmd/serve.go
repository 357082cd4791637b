package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	config "repairdesk.com/repairdesk/internal/configs"
	httpapi "repairdesk.com/repairdesk/internal/http"
	repository "repairdesk.com/repairdesk/internal/repositories"
	"repairdesk.com/repairdesk/internal/services"
	"repairdesk.com/repairdesk/internal/sessions"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the service-job management HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {

		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()

		db := config.New(cfg.DatabaseDSN)

		var sessionStore sessions.Store
		if cfg.RedisAddr != "" {
			redisClient := config.NewRedisClient(cfg.RedisAddr)
			defer redisClient.Close()
			sessionStore = sessions.NewRedisStore(redisClient, cfg.SessionKeyPrefix, cfg.SessionTTLSeconds)
		} else {
			log.Println("REDIS_HOST not set, keeping sessions in memory")
			sessionStore = sessions.NewMemoryStore(cfg.SessionTTLSeconds)
		}

		jobRepo := repository.NewJobRepository(db)
		clientRepo := repository.NewClientRepository(db)
		userRepo := repository.NewUserRepository(db)
		messageRepo := repository.NewMessageRepository(db)

		handler := httpapi.NewHandler(
			services.NewJobService(jobRepo),
			services.NewClientService(clientRepo, jobRepo, cfg.RestrictReferencedDel),
			services.NewUserService(userRepo, jobRepo, cfg.RestrictReferencedDel),
			services.NewAuthService(userRepo, sessionStore),
			services.NewMessageService(messageRepo),
		)

		e := echo.New()
		httpapi.Register(e, handler, sessionStore, cfg.RateLimit)

		go func() {
			log.Printf("HTTP server listening on %s", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil {
				log.Printf("server stopped: %v", err)
			}
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		ctx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second,
		)
		defer cancel()

		_ = e.Shutdown(ctx)

		log.Println("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
