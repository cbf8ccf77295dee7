package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"freight-quotes/internal/catalog"
	"freight-quotes/internal/config"
	"freight-quotes/internal/database"
	"freight-quotes/internal/logger"
	"freight-quotes/internal/modules/admin"
	catalogmod "freight-quotes/internal/modules/catalog"
	"freight-quotes/internal/modules/notify"
	"freight-quotes/internal/modules/quote"
	"freight-quotes/pkg/mailer"
	"freight-quotes/pkg/sms"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		logger.Logger.Fatalf("Failed to load config: %v", err)
	}
	logger.InitLogger(cfg.AppName, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()
	if err := database.Migrate(ctx, pool); err != nil {
		logger.Logger.Fatalf("Failed to migrate database: %v", err)
	}

	cat := catalog.New(cfg.AdminEmail)

	mail, err := newMailer(ctx, cfg)
	if err != nil {
		logger.Logger.Fatalf("Failed to set up email provider: %v", err)
	}
	var sender sms.ServiceInterface
	if cfg.SMSEnabled() {
		sender = sms.NewTwilioService(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioPhoneNumber)
	} else {
		logger.Logger.Warn("Twilio settings missing, SMS disabled")
	}

	notifySvc := notify.NewService(cat, mail, sender, cfg.EmailFrom)
	opts := quote.Options{PersistTimeout: cfg.QuotePersistTimeout, NotifyTimeout: cfg.NotifyTimeout}
	if cfg.NotifyOnSubmit {
		opts.Notifier = notifySvc
	}
	quoteHandler := quote.NewHandler(quote.NewService(quote.NewRepository(pool), cat, opts))

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{cfg.ClientOrigin},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, quote.IdempotencyHeader},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			entry := logger.Logger.WithFields(logrus.Fields{
				"method":  v.Method,
				"uri":     v.URI,
				"status":  v.Status,
				"latency": v.Latency.String(),
			})
			if v.Error != nil {
				entry.WithError(v.Error).Error("request failed")
			} else {
				entry.Info("request")
			}
			return nil
		},
	}))

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	api := e.Group("/api")
	quoteHandler.RegisterRoutes(api)
	notify.NewHandler(notifySvc).RegisterRoutes(api)
	catalogmod.NewHandler(cat).RegisterRoutes(api.Group("/catalog"))
	admin.NewHandler(admin.NewService(cfg.AdminPasswordHash, cfg.JWTSecret), quoteHandler).RegisterRoutes(api.Group("/admin"))

	go func() {
		logger.Logger.Infof("Starting server on :%s", cfg.ServerPort)
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logger.Fatalf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Logger.WithError(err).Error("Graceful shutdown failed")
	}
}

func newMailer(ctx context.Context, cfg *config.Config) (mailer.ServiceInterface, error) {
	if cfg.EmailProvider == config.EmailProviderSendGrid {
		return mailer.NewSendGridService(cfg.SendGridAPIKey), nil
	}
	ses, err := mailer.NewSESService(ctx, cfg.AWSRegion)
	if err != nil {
		return nil, err
	}
	return ses, nil
}
