package core

import (
	"context"
	"sidco-backend/lib/telemetry"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewClientDefaults(t *testing.T) {
	cleanup := telemetry.SetupForTesting("lib/scrapers/sidco/core")
	defer cleanup()

	client, err := NewClient(context.Background(), ClientOptions{})
	require.NoError(t, err)
	require.Equal(t, "sidco.conaf.cl", client.BaseUrl.Hostname())
	require.Equal(t, BaseUrl, client.Http.BaseURL)
}

func TestLoginRequiresCredentials(t *testing.T) {
	cleanup := telemetry.SetupForTesting("lib/scrapers/sidco/core")
	defer cleanup()

	client, err := NewClient(context.Background(), ClientOptions{})
	require.NoError(t, err)

	err = client.LoginUsernamePassword(context.Background(), "", "")
	require.ErrorIs(t, err, MissingCredentials)
	err = client.LoginUsernamePassword(context.Background(), "user", "")
	require.ErrorIs(t, err, MissingCredentials)
}
