package bootstrap

import (
	"context"

	"pix-funnel/internal/pkg/config"
	"pix-funnel/internal/pkg/errs"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
)

func loadAWSConfig(ctx context.Context, cfg config.AWSConfig) (aws.Config, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return aws.Config{}, errs.Wrap(err, "failed to load aws config")
	}
	return awsCfg, nil
}
