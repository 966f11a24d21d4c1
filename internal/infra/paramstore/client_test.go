//go:build unit

package paramstore

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"pix-funnel/internal/pkg/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	values map[string]string
	err    error
	asked  []string
}

func (f *fakeAPI) GetParameter(_ context.Context, in *ssm.GetParameterInput, _ ...func(*ssm.Options)) (*ssm.GetParameterOutput, error) {
	f.asked = append(f.asked, aws.ToString(in.Name))
	if f.err != nil {
		return nil, f.err
	}
	v, ok := f.values[aws.ToString(in.Name)]
	if !ok {
		return &ssm.GetParameterOutput{Parameter: &types.Parameter{Name: in.Name}}, nil
	}
	return &ssm.GetParameterOutput{Parameter: &types.Parameter{Name: in.Name, Value: aws.String(v)}}, nil
}

func TestGetParameter(t *testing.T) {
	api := &fakeAPI{values: map[string]string{"/pix/automation-token": "tok"}}
	client, err := New(api)
	require.NoError(t, err)

	v, err := client.GetParameter(context.Background(), " /pix/automation-token ")
	require.NoError(t, err)
	require.Equal(t, "tok", v)

	_, err = client.GetParameter(context.Background(), "/pix/other")
	require.ErrorContains(t, err, "missing value")

	_, err = client.GetParameter(context.Background(), "  ")
	require.Error(t, err)
}

func TestGetParameter_APIError(t *testing.T) {
	client, err := New(&fakeAPI{err: errors.New("boom")})
	require.NoError(t, err)
	_, err = client.GetParameter(context.Background(), "p")
	require.ErrorContains(t, err, "boom")
}

func TestNew_NilAPI(t *testing.T) {
	_, err := New(nil)
	require.Error(t, err)
}

func TestApplySecrets(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	api := &fakeAPI{values: map[string]string{
		"/pix/automation-token": "from-ssm",
		"/pix/admin-jwt-secret": "jwt-from-ssm",
	}}
	client, err := New(api)
	require.NoError(t, err)

	cfg := config.NewTestConfig()
	cfg.Auth.AdminJWTSecret = ""
	cfg.Dispatcher.Token = "from-env"

	require.NoError(t, ApplySecrets(context.Background(), client, "/pix/", &cfg, logger))
	require.Equal(t, "from-env", cfg.Dispatcher.Token)
	require.Equal(t, "jwt-from-ssm", cfg.Auth.AdminJWTSecret)
	require.Equal(t, []string{"/pix/admin-jwt-secret"}, api.asked)
}

func TestApplySecrets_PaymentStatusToken(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	api := &fakeAPI{values: map[string]string{
		"/pix/automation-token":     "from-ssm",
		"/pix/admin-jwt-secret":     "jwt-from-ssm",
		"/pix/payment-status-token": "status-from-ssm",
	}}
	client, err := New(api)
	require.NoError(t, err)

	cfg := config.NewTestConfig()
	cfg.Auth.AdminJWTSecret = ""
	cfg.Gateway.StatusURL = "https://gateway.example.com/orders/{order}"

	require.NoError(t, ApplySecrets(context.Background(), client, "/pix", &cfg, logger))
	require.Equal(t, "status-from-ssm", cfg.Gateway.StatusToken)
	require.Contains(t, api.asked, "/pix/payment-status-token")
}
