package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultAppSettings(t *testing.T) {
	s := DefaultAppSettings()

	assert.Equal(t, DefaultGatewayPath, s.Gateway.Path)
	assert.Equal(t, DefaultGatewayTimeout, s.Gateway.Timeout)
	assert.InDelta(t, DefaultRatePerSecond, s.Gateway.RatePerSecond, 0.0001)
	assert.False(t, s.Gateway.IsConfigured())
	assert.Equal(t, AuthMethodNone, s.Auth.Method)
}
