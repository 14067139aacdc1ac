package config

import (
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SBN-BookingService/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "STORAGE_DRIVER", "DB_PASSWORD", "REDIS_ADDR", "LOG_LEVEL", "BOOKING_API_URL"} {
		t.Setenv(key, "")
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)

	assert.Equal(t, 3001, cfg.Server.HTTPPort)
	assert.Equal(t, StorageMemory, cfg.Storage.Driver)
	assert.False(t, cfg.Redis.Enabled)

	tables := cfg.PricingTables()
	assert.Equal(t, 2.5, tables.Rates[domain.ServiceBureau])
	assert.Equal(t, 20.0, tables.Discounts[domain.FrequencyHebdomadaire])
	assert.Equal(t, 60.0, tables.AddOns["tapis"])
	assert.Len(t, cfg.Promos(), 3)
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
[server]
http_port = 8080

[storage]
driver = "postgres"

[pricing.rates]
bureau = 3.5

[[promo_codes]]
code = "ETE25"
discount = 25
description = "Offre été"

[availability]
capacity_per_slot = 2
horizon_days = 0
closed_dates = ["2026-12-25"]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, StoragePostgres, cfg.Storage.Driver)
	assert.Equal(t, 3.5, cfg.PricingTables().Rates[domain.ServiceBureau])
	assert.Equal(t, 3.0, cfg.PricingTables().Rates[domain.ServiceCommerce])
	require.Len(t, cfg.Promos(), 1)
	assert.Equal(t, "ETE25", cfg.Promos()[0].Code)

	rules := cfg.AvailabilityRules()
	assert.Equal(t, 2, rules.CapacityPerSlot)
	assert.False(t, rules.HasHorizon())
	assert.True(t, rules.IsClosed(time.Date(2026, 12, 25, 9, 0, 0, 0, time.UTC)))
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STORAGE_DRIVER", "postgres")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("REDIS_ADDR", "redis:6379")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, StoragePostgres, cfg.Storage.Driver)
	assert.Contains(t, cfg.Database.DSN(), "password=secret")
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, 24*time.Hour, cfg.Redis.TTL())
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("PORT", "abc")

	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))

	assert.ErrorIs(t, err, ErrInvalidEnv)
}

func TestLoad_MalformedFile(t *testing.T) {
	_, err := Load(writeConfig(t, "[server\nhttp_port = "))

	assert.ErrorIs(t, err, ErrDecode)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{name: "unknown storage driver", mutate: func(c *Config) { c.Storage.Driver = "mongo" }},
		{name: "missing rate", mutate: func(c *Config) { delete(c.Pricing.Rates, "commerce") }},
		{name: "discount out of range", mutate: func(c *Config) { c.Pricing.Discounts["mensuel"] = 100 }},
		{name: "duplicate add-on", mutate: func(c *Config) { c.AddOns = append(c.AddOns, c.AddOns[0]) }},
		{name: "zero promo discount", mutate: func(c *Config) { c.PromoCodes[0].Discount = 0 }},
		{name: "bad closed date", mutate: func(c *Config) { c.Availability.ClosedDates = []string{"25/12/2026"} }},
		{name: "redis without addr", mutate: func(c *Config) { c.Redis.Enabled = true; c.Redis.Addr = "" }},
		{name: "rate limit without rps", mutate: func(c *Config) { c.RateLimit.RPS = 0 }},
		{name: "negative idle timeout", mutate: func(c *Config) { c.RateLimit.IdleTimeout = -1 }},
		{name: "bad trusted proxy", mutate: func(c *Config) { c.RateLimit.TrustedProxies = []string{"proxy.local"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}

	assert.NoError(t, Default().Validate())
}

func TestRateLimitConfig_TrustedProxyNets(t *testing.T) {
	rl := RateLimitConfig{TrustedProxies: []string{"10.0.0.0/8", "192.0.2.10", "::1"}}

	nets, err := rl.TrustedProxyNets()
	require.NoError(t, err)
	require.Len(t, nets, 3)

	assert.True(t, nets[0].Contains(net.ParseIP("10.1.2.3")))
	assert.True(t, nets[1].Contains(net.ParseIP("192.0.2.10")))
	assert.False(t, nets[1].Contains(net.ParseIP("192.0.2.11")))
	assert.True(t, nets[2].Contains(net.ParseIP("::1")))
}
