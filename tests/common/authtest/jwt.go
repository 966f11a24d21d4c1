//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"pix-funnel/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

// AdminToken mints a bearer token accepted by the query API.
func AdminToken(t *testing.T, secret string) string {
	t.Helper()
	token, err := jwt.NewService(secret, time.Hour).GenerateToken("e2e-operator")
	require.NoError(t, err)
	return token
}

func ExpiredAdminToken(t *testing.T, secret string) string {
	t.Helper()
	token, err := jwt.NewService(secret, time.Millisecond).GenerateToken("e2e-operator")
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
