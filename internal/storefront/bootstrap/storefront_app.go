package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Lexv0lk/storefront/internal/pkg/jwt"
	"github.com/Lexv0lk/storefront/internal/pkg/logging"
	"github.com/Lexv0lk/storefront/internal/storefront/application"
	"github.com/Lexv0lk/storefront/internal/storefront/infrastructure/backend"
	httpwrap "github.com/Lexv0lk/storefront/internal/storefront/infrastructure/http"
	"github.com/gin-gonic/gin"
)

const (
	shutdownTimeout = 5 * time.Second
)

type StorefrontApp struct {
	cfg    StorefrontConfig
	logger logging.Logger

	server *http.Server
}

func NewStorefrontApp(cfg StorefrontConfig, logger logging.Logger) *StorefrontApp {
	return &StorefrontApp{
		cfg:    cfg,
		logger: logger,
	}
}

func (a *StorefrontApp) Run(ctx context.Context) error {
	logger := a.logger
	cfg := a.cfg

	a.server = &http.Server{
		Addr:    cfg.HttpPort,
		Handler: a.router(),
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("Starting server", "addr", cfg.HttpPort, "backend", cfg.BackendURL)
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("error while starting http server: %w", err)
			return
		}

		errChan <- nil
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		return nil
	}
}

func (a *StorefrontApp) Shutdown() {
	if a.server == nil {
		return
	}

	a.logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("server shutdown failed", "error", err.Error())
	}
}

func (a *StorefrontApp) router() *gin.Engine {
	cfg := a.cfg

	client := backend.NewClient(cfg.BackendURL, cfg.BackendTimeout)
	services := application.GiftServices{
		Gifts: backend.NewGiftAdapter(client),
		Users: backend.NewUserAdapter(client),
		Chest: backend.NewChestAdapter(client),
	}

	sessions := application.NewSessionRegistry(services, cfg.SessionTTL, a.logger)
	pages := application.NewGiftPageCase(backend.NewWebsiteAdapter(client), cfg.WebsiteID, cfg.DefaultCurrency, a.logger)
	giftHandler := httpwrap.NewGiftHandler(sessions, pages, a.logger)

	router := gin.Default()

	api := router.Group("/api")
	{
		authenticated := api.Group("/",
			httpwrap.NewAuthMiddleware(jwt.NewJWTTokenParser(), []byte(cfg.JwtSecret)),
			httpwrap.NewWebsiteMiddleware(cfg.WebsiteID),
		)
		giftHandler.Register(authenticated)
	}

	return router
}
