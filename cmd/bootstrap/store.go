package bootstrap

import (
	"context"
	"log/slog"

	"pix-funnel/internal/infra/archive"
	"pix-funnel/internal/infra/db"
	"pix-funnel/internal/infra/dynamo"
	"pix-funnel/internal/infra/memstore"
	sqlc "pix-funnel/internal/infra/sqlc/generated"
	"pix-funnel/internal/infra/uow"
	"pix-funnel/internal/pkg/config"
	"pix-funnel/internal/pkg/errs"
	"pix-funnel/internal/usecase/queries"
	"pix-funnel/internal/usecase/shared"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewDurable,
		NewArchiveStore,
	),
)

// NewDurable opens the store driver selected by STORE_DRIVER.
func NewDurable(lc fx.Lifecycle, cfg config.Config, slogger *slog.Logger) (shared.Durable, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		return newPostgresDurable(lc, cfg, slogger)
	case config.StoreDriverDynamo:
		return newDynamoDurable(cfg, slogger)
	case config.StoreDriverMemory:
		slogger.Warn("using the memory store driver; nothing survives a restart")
		return memstore.NewDurable(), nil
	default:
		return nil, errs.New("unknown store driver: " + cfg.Store.Driver)
	}
}

func newPostgresDurable(lc fx.Lifecycle, cfg config.Config, slogger *slog.Logger) (shared.Durable, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	u := uow.NewPostgresUoW(pool, slogger)
	return uow.NewPostgresDurable(u, sqlc.New(), slogger), nil
}

func newDynamoDurable(cfg config.Config, slogger *slog.Logger) (shared.Durable, error) {
	awsCfg, err := loadAWSConfig(context.Background(), cfg.AWS)
	if err != nil {
		return nil, err
	}

	client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Dynamo.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Dynamo.Endpoint)
		}
	})
	return dynamo.New(client, cfg.Dynamo.Table, slogger)
}

// NewArchiveStore returns a nil store when ARCHIVE_BUCKET is unset, which
// leaves the archive endpoint answering 503.
func NewArchiveStore(cfg config.Config, slogger *slog.Logger) (queries.ObjectStore, error) {
	if cfg.Archive.Bucket == "" {
		return nil, nil
	}
	awsCfg, err := loadAWSConfig(context.Background(), cfg.AWS)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Archive.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Archive.Endpoint)
			o.UsePathStyle = true
		}
	})
	return archive.NewS3Store(client, cfg.Archive.Bucket, cfg.Archive.Prefix, slogger)
}
