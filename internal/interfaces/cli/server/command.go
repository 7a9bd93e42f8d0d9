package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/joanpuche05/fisioterapiavilassar/internal/application/contact"
	"github.com/joanpuche05/fisioterapiavilassar/internal/infrastructure/captcha"
	"github.com/joanpuche05/fisioterapiavilassar/internal/infrastructure/config"
	"github.com/joanpuche05/fisioterapiavilassar/internal/infrastructure/content"
	"github.com/joanpuche05/fisioterapiavilassar/internal/infrastructure/email"
	"github.com/joanpuche05/fisioterapiavilassar/internal/infrastructure/i18n"
	"github.com/joanpuche05/fisioterapiavilassar/internal/infrastructure/template"
	httpRouter "github.com/joanpuche05/fisioterapiavilassar/internal/interfaces/http"
	"github.com/joanpuche05/fisioterapiavilassar/internal/shared/logger"
	"github.com/joanpuche05/fisioterapiavilassar/internal/shared/services/markdown"
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the site's HTTP server with the configured locales, SMTP relay and Turnstile secret.`,
		RunE:  run,
	}

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	// Local development keeps secrets in a .env file; its absence is normal.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("starting server",
		"default_locale", cfg.Site.DefaultLocale,
		"mode", cfg.Server.Mode)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard

	log := logger.NewLogger()

	defaultLocale := i18n.ParseLocale(cfg.Site.DefaultLocale, i18n.CA)

	store, err := i18n.NewStore(cfg.Site.TranslationsDir, defaultLocale, log)
	if err != nil {
		logger.Fatal("failed to load translations", "error", err)
	}

	renderer, err := template.NewPageRenderer(cfg.Site.TemplatesDir, store, cfg.Captcha.SiteKey, log)
	if err != nil {
		logger.Fatal("failed to load page templates", "error", err)
	}

	privacy, err := content.LoadPrivacy(cfg.Site.ContentDir, markdown.NewService(), defaultLocale, log)
	if err != nil {
		logger.Fatal("failed to load privacy content", "error", err)
	}

	if cfg.Captcha.SecretKey == "" {
		logger.Warn("turnstile secret key not configured, submissions will be rejected")
	}
	if cfg.Email.SMTPHost == "" {
		logger.Warn("smtp host not configured, submissions cannot be delivered")
	}

	verifier := captcha.NewTurnstileVerifier(cfg.Captcha)
	mailer := email.NewSMTPMailer(cfg.Email)
	composer := contact.NewComposer(store)
	contactService := contact.NewService(verifier, mailer, composer, store, cfg.Email.Recipient, log)

	router := httpRouter.NewRouter(cfg, store, renderer, privacy, contactService, log)
	router.SetupRoutes()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.GetEngine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting", "address", cfg.Server.GetAddr())

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return err
	}

	logger.Info("server exited gracefully")
	return nil
}
