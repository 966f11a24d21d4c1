// Package paramstore reads secrets from AWS SSM Parameter Store.
package paramstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"pix-funnel/internal/pkg/config"

	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// ssmAPI is satisfied by *ssm.Client.
type ssmAPI interface {
	GetParameter(ctx context.Context, in *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

type Getter interface {
	GetParameter(ctx context.Context, name string) (string, error)
}

type Client struct {
	api ssmAPI
}

func New(api ssmAPI) (*Client, error) {
	if api == nil {
		return nil, errors.New("paramstore: api must not be nil")
	}
	return &Client{api: api}, nil
}

func (c *Client) GetParameter(ctx context.Context, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errors.New("paramstore: name is required")
	}

	withDecryption := true
	out, err := c.api.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           &name,
		WithDecryption: &withDecryption,
	})
	if err != nil {
		return "", fmt.Errorf("paramstore: get parameter %q: %w", name, err)
	}
	if out == nil || out.Parameter == nil || out.Parameter.Value == nil {
		return "", fmt.Errorf("paramstore: parameter %q missing value", name)
	}
	return *out.Parameter.Value, nil
}

// Parameter names under the configured prefix.
const (
	ParamAutomationToken    = "automation-token"
	ParamAdminJWTSecret     = "admin-jwt-secret"
	ParamPaymentStatusToken = "payment-status-token"
)

// ApplySecrets fills the automation token, admin JWT secret and gateway status
// token from the values stored under prefix. Values already set in the environment win.
// The status token is only looked up when a status URL is configured.
func ApplySecrets(ctx context.Context, g Getter, prefix string, cfg *config.Config, slogger *slog.Logger) error {
	prefix = strings.TrimRight(prefix, "/")
	targets := []struct {
		name string
		dst  *string
		skip bool
	}{
		{name: ParamAutomationToken, dst: &cfg.Dispatcher.Token},
		{name: ParamAdminJWTSecret, dst: &cfg.Auth.AdminJWTSecret},
		{name: ParamPaymentStatusToken, dst: &cfg.Gateway.StatusToken, skip: cfg.Gateway.StatusURL == ""},
	}

	for _, t := range targets {
		if t.skip || *t.dst != "" {
			continue
		}
		v, err := g.GetParameter(ctx, prefix+"/"+t.name)
		if err != nil {
			return err
		}
		*t.dst = v
		slogger.Info("secret loaded from parameter store", slog.String("name", t.name))
	}
	return nil
}
