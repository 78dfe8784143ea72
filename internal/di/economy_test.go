package di

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoeShih716/go-economy/internal/config"
	"github.com/JoeShih716/go-economy/pkg/economy"
)

func TestProvideEconomy_Memory(t *testing.T) {
	cfg := config.Default()
	cfg.Economy.Name = "test-memory"
	cfg.Economy.BankSupport = false
	cfg.Economy.Currency.Symbol = "$"

	eco, cleanup, err := ProvideEconomy(context.Background(), cfg, nil)
	require.NoError(t, err)
	defer cleanup()

	assert.Equal(t, "test-memory", eco.Name())
	assert.True(t, eco.IsEnabled())
	assert.False(t, eco.HasBankSupport())
	assert.Equal(t, 2, eco.FractionalDigits())
	assert.Equal(t, "$1,234.50", eco.Format(decimal.RequireFromString("1234.5")))
}

func TestProvideEconomy_Redis(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := config.Default()
	cfg.Economy.Backend = config.BackendRedis
	cfg.Redis.Addr = mr.Addr()
	cfg.Redis.Prefix = "guild"

	eco, cleanup, err := ProvideEconomy(context.Background(), cfg, nil)
	require.NoError(t, err)
	defer cleanup()

	m := economy.NewMember(1, "alice")
	require.True(t, eco.DepositMember(context.Background(), m, decimal.NewFromInt(5)).TransactionSuccess())
	assert.True(t, mr.Exists("guild:account:1"))
}

func TestProvideEconomy_Errors(t *testing.T) {
	t.Run("unknown backend", func(t *testing.T) {
		cfg := config.Default()
		cfg.Economy.Backend = "postgres"
		_, _, err := ProvideEconomy(context.Background(), cfg, nil)
		assert.ErrorContains(t, err, "unknown economy backend")
	})

	t.Run("redis unreachable", func(t *testing.T) {
		mr := miniredis.RunT(t)
		addr := mr.Addr()
		mr.Close()

		cfg := config.Default()
		cfg.Economy.Backend = config.BackendRedis
		cfg.Redis.Addr = addr
		_, _, err := ProvideEconomy(context.Background(), cfg, nil)
		assert.ErrorContains(t, err, "failed to init redis")
	})
}

func TestEconomyOptions(t *testing.T) {
	cfg := config.Default()
	cfg.Economy.StartingBalance = decimal.NewFromInt(100)
	cfg.Economy.GroupAccounts = false

	opts := EconomyOptions(cfg)
	assert.True(t, decimal.NewFromInt(100).Equal(opts.StartingBalance))
	assert.False(t, opts.GroupAccounts)
	assert.Equal(t, "coin", opts.Currency.Singular)
}
