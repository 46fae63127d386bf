package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lineage-cli/internal/logger"
)

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "lineage", rootCmd.Use)
}

func TestRootCmd_HasGlobalFlags(t *testing.T) {
	for _, name := range []string{"verbose", "config-dir", "fixture"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), "missing flag %s", name)
	}
	assert.Equal(t, "v", rootCmd.PersistentFlags().Lookup("verbose").Shorthand)
}

func TestRootCmd_BuilderReceivesOptions(t *testing.T) {
	setupTestServices(t)

	var got Options
	SetBuilder(func(opts Options) (*Services, error) {
		got = opts
		return nil, nil
	})
	defer func() {
		SetBuilder(nil)
		configDir, fixturePath, verbose = "", "", false
		logger.SetVerbose(false)
	}()

	_, _, err := execute(t, "--config-dir", "/tmp/cfg", "--fixture", "payload.json", "-v", "version")

	require.NoError(t, err)
	assert.Equal(t, Options{ConfigDir: "/tmp/cfg", Fixture: "payload.json", Verbose: true}, got)
	assert.True(t, logger.IsVerbose())
}

func TestRootCmd_BuilderServicesAreInstalled(t *testing.T) {
	services := setupTestServices(t)
	auth := &mockAuthService{}

	SetBuilder(func(Options) (*Services, error) {
		return &Services{Sessions: sessionFactory, Auth: auth, Settings: settingsService}, nil
	})
	defer SetBuilder(nil)

	_, _, err := execute(t, "auth", "logout")

	require.NoError(t, err)
	assert.Equal(t, 1, auth.logouts)
	assert.Equal(t, 0, services.auth.logouts)
}

func TestRootCmd_BuilderError(t *testing.T) {
	setupTestServices(t)
	SetBuilder(func(Options) (*Services, error) {
		return nil, errors.New("bad config")
	})
	defer SetBuilder(nil)

	_, _, err := execute(t, "version")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "initialising: bad config")
}

func TestNewSession_NotConfigured(t *testing.T) {
	setupTestServices(t)
	sessionFactory = nil

	_, _, err := execute(t, "table", testLineageID)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "lineage service not configured")
}
