package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_ValoresPorDefecto(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.False(t, cfg.JWT.Enabled(), "sin JWT_SECRET la API queda abierta")
	assert.Equal(t, time.Duration(0), cfg.Store.Latency())
	assert.Equal(t, "warehouse-1", cfg.Store.DefaultWarehouseID)
	assert.Equal(t, "sup-001", cfg.Store.DefaultSupplierID)
	assert.Equal(t, "Inventario Dashboard", cfg.Billing.IssuerName)
}

func TestFromViper_LeeVariables(t *testing.T) {
	v := viper.New()
	v.Set("HTTP_PORT", "9090")
	v.Set("STORE_LATENCY_MS", "300")
	v.Set("JWT_SECRET", "s3cr3t")
	v.Set("BILLING_ISSUER_NAME", "Ferretería Central")

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 300*time.Millisecond, cfg.Store.Latency())
	assert.True(t, cfg.JWT.Enabled())
	assert.Equal(t, "Ferretería Central", cfg.Billing.IssuerName)
}

func TestFromViper_PuertoInvalido(t *testing.T) {
	v := viper.New()
	v.Set("HTTP_PORT", 70000)

	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestFromViper_LatenciaNegativa(t *testing.T) {
	v := viper.New()
	v.Set("STORE_LATENCY_MS", -5)

	_, err := fromViper(v)
	assert.Error(t, err)
}
