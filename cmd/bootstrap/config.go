package bootstrap

import (
	"context"
	"time"

	"pix-funnel/internal/handler/middleware"
	"pix-funnel/internal/infra/paramstore"
	"pix-funnel/internal/pkg/config"

	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"go.uber.org/fx"
)

const secretsTimeout = 10 * time.Second

var ConfigModule = fx.Module("config",
	fx.Provide(
		NewConfig,
	),
)

// NewConfig loads the environment and, when SSM_PARAM_PREFIX is set, fills
// the secrets left empty from Parameter Store.
func NewConfig() (config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return config.Config{}, err
	}
	if cfg.Secrets.SSMPrefix == "" {
		return cfg, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), secretsTimeout)
	defer cancel()

	awsCfg, err := loadAWSConfig(ctx, cfg.AWS)
	if err != nil {
		return config.Config{}, err
	}
	client, err := paramstore.New(ssm.NewFromConfig(awsCfg))
	if err != nil {
		return config.Config{}, err
	}

	slogger := middleware.NewLogger(cfg.Log).GetSlogLogger()
	if err := paramstore.ApplySecrets(ctx, client, cfg.Secrets.SSMPrefix, &cfg, slogger); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
