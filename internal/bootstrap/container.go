package bootstrap

import (
	"context"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/cindral-studio/cindral-api/internal/config"
	"github.com/cindral-studio/cindral-api/internal/infra/blob"
	"github.com/cindral-studio/cindral-api/internal/infra/cache"
	"github.com/cindral-studio/cindral-api/internal/infra/db"
	"github.com/cindral-studio/cindral-api/internal/infra/logger"
	"github.com/cindral-studio/cindral-api/internal/modules/handler"
	"github.com/cindral-studio/cindral-api/internal/modules/repo"
	"github.com/cindral-studio/cindral-api/internal/modules/service"
)

func BuildContainer() *do.Injector {
	inj := do.New()

	// config
	do.Provide(inj, func(i *do.Injector) (*config.Config, error) {
		return config.Load()
	})

	// logger
	do.Provide(inj, func(i *do.Injector) (*zap.Logger, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return logger.New(cfg.Log.Level)
	})

	// DB (only invoked when the postgres store driver is selected)
	do.Provide(inj, func(i *do.Injector) (*gorm.DB, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return db.New(cfg)
	})

	// Redis (only invoked when the redis store driver is selected)
	do.Provide(inj, func(i *do.Injector) (*redis.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return cache.New(cfg), nil
	})

	// RabbitMQ connection, optional: without a URL the delivery event stream
	// is simply off.
	do.Provide(inj, func(i *do.Injector) (*amqp.Connection, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if cfg.RabbitMQ.URL == "" {
			return nil, nil
		}
		return amqp.Dial(cfg.RabbitMQ.URL)
	})

	// S3, optional: without a bucket invoice documents are off.
	do.Provide(inj, func(i *do.Injector) (*blob.S3Deps, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if cfg.S3.Bucket == "" {
			return nil, nil
		}
		return blob.NewS3(context.Background(), cfg)
	})

	// Snapshot adapter, selected by store.driver
	do.Provide(inj, func(i *do.Injector) (repo.Adapter, error) {
		cfg := do.MustInvoke[*config.Config](i)
		switch cfg.Store.Driver {
		case "memory":
			return repo.NewMemoryAdapter(), nil
		case "file", "":
			return repo.NewFileAdapter(cfg.Store.Path), nil
		case "redis":
			rdb, err := do.Invoke[*redis.Client](i)
			if err != nil {
				return nil, err
			}
			return repo.NewRedisAdapter(rdb, cfg.Store.RedisKey), nil
		case "postgres":
			gdb, err := do.Invoke[*gorm.DB](i)
			if err != nil {
				return nil, err
			}
			adapter := repo.NewGormAdapter(gdb)
			if cfg.Database.AutoMigrate {
				if err := adapter.AutoMigrate(); err != nil {
					return nil, err
				}
			}
			return adapter, nil
		default:
			return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
		}
	})

	// Store
	do.Provide(inj, func(i *do.Injector) (*repo.Store, error) {
		store := repo.NewStore(
			do.MustInvoke[repo.Adapter](i),
			do.MustInvoke[*zap.Logger](i),
		)
		if err := store.Open(context.Background()); err != nil {
			return nil, err
		}
		return store, nil
	})

	// Service
	do.Provide(inj, func(i *do.Injector) (service.AuthService, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return service.NewAuthService(cfg.Admin.Password, do.MustInvoke[*zap.Logger](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.CatalogService, error) {
		return service.NewCatalogService(do.MustInvoke[*repo.Store](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ContactService, error) {
		return service.NewContactService(do.MustInvoke[*repo.Store](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ClientProjectService, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return service.NewClientProjectService(
			do.MustInvoke[*repo.Store](i),
			do.MustInvoke[*zap.Logger](i),
			do.MustInvoke[*amqp.Connection](i),
			cfg.RabbitMQ.Queue,
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.BillingService, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return service.NewBillingService(
			do.MustInvoke[*repo.Store](i),
			do.MustInvoke[*blob.S3Deps](i),
			time.Duration(cfg.S3.PresignExpireSec)*time.Second,
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.DashboardService, error) {
		return service.NewDashboardService(do.MustInvoke[*repo.Store](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.PortalService, error) {
		return service.NewPortalService(do.MustInvoke[*repo.Store](i)), nil
	})

	// Handler
	do.Provide(inj, func(i *do.Injector) (*handler.AuthHandler, error) {
		return handler.NewAuthHandler(do.MustInvoke[service.AuthService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.CatalogHandler, error) {
		return handler.NewCatalogHandler(do.MustInvoke[service.CatalogService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ContactHandler, error) {
		return handler.NewContactHandler(do.MustInvoke[service.ContactService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ClientProjectHandler, error) {
		return handler.NewClientProjectHandler(do.MustInvoke[service.ClientProjectService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.BillingHandler, error) {
		return handler.NewBillingHandler(do.MustInvoke[service.BillingService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.DashboardHandler, error) {
		return handler.NewDashboardHandler(do.MustInvoke[service.DashboardService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.PortalHandler, error) {
		return handler.NewPortalHandler(do.MustInvoke[service.PortalService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.DataHandler, error) {
		return handler.NewDataHandler(do.MustInvoke[*repo.Store](i)), nil
	})

	return inj
}
