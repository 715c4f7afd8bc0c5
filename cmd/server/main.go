package main

//	@title			Cindral Studio API
//	@version		1.0
//	@description	Content and client delivery API for the Cindral studio site.
//	@schemes		http https
//	@BasePath		/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Admin bearer token from /auth/login (e.g., "Bearer cms_xxxx")

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/do"
	"go.uber.org/zap"

	"github.com/cindral-studio/cindral-api/internal/bootstrap"
	"github.com/cindral-studio/cindral-api/internal/config"
	"github.com/cindral-studio/cindral-api/internal/modules/handler"
	"github.com/cindral-studio/cindral-api/internal/modules/service"
	"github.com/cindral-studio/cindral-api/internal/router"
)

func main() {
	// build dependency injection container
	inj := bootstrap.BuildContainer()

	cfg := do.MustInvoke[*config.Config](inj)
	log := do.MustInvoke[*zap.Logger](inj)

	// init gin
	gin.SetMode(cfg.App.Env)

	engine := router.NewRouter(router.RouterDeps{
		Config:               cfg,
		Log:                  log,
		Auth:                 do.MustInvoke[service.AuthService](inj),
		AuthHandler:          do.MustInvoke[*handler.AuthHandler](inj),
		CatalogHandler:       do.MustInvoke[*handler.CatalogHandler](inj),
		ContactHandler:       do.MustInvoke[*handler.ContactHandler](inj),
		ClientProjectHandler: do.MustInvoke[*handler.ClientProjectHandler](inj),
		BillingHandler:       do.MustInvoke[*handler.BillingHandler](inj),
		DashboardHandler:     do.MustInvoke[*handler.DashboardHandler](inj),
		PortalHandler:        do.MustInvoke[*handler.PortalHandler](inj),
		DataHandler:          do.MustInvoke[*handler.DataHandler](inj),
	})

	addr := fmt.Sprintf("%s:%d", cfg.App.Host, cfg.App.Port)
	srv := &http.Server{Addr: addr, Handler: engine}

	go func() {
		log.Sugar().Infow("starting http server", "addr", addr, "store", cfg.Store.Driver)
		log.Sugar().Infow("swagger url", "url", addr+"/swagger/index.html")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Sugar().Fatalw("listen error", "err", err)
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Sugar().Errorw("server shutdown", "err", err)
	}
	log.Sugar().Info("server exited")
}
