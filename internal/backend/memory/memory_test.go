package memory

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/JoeShih716/go-economy/internal/backend"
	"github.com/JoeShih716/go-economy/pkg/economy"
	"github.com/JoeShih716/go-economy/pkg/economy/economytest"
)

func TestEconomy_Conformance(t *testing.T) {
	t.Run("Full", func(t *testing.T) {
		economytest.Run(t, func(t *testing.T) economy.Economy {
			return New(backend.DefaultOptions("memory"), nil)
		})
	})

	t.Run("Without Banks And Groups", func(t *testing.T) {
		economytest.Run(t, func(t *testing.T) economy.Economy {
			opts := backend.DefaultOptions("memory-lite")
			opts.BankSupport = false
			opts.GroupAccounts = false
			return New(opts, nil)
		})
	})

	t.Run("Starting Balance", func(t *testing.T) {
		economytest.Run(t, func(t *testing.T) economy.Economy {
			opts := backend.DefaultOptions("memory-rich")
			opts.StartingBalance = decimal.NewFromInt(500)
			return New(opts, nil)
		})
	})
}

func TestEconomy_StartingBalanceWithoutSideEffects(t *testing.T) {
	ctx := context.Background()
	opts := backend.DefaultOptions("memory")
	opts.StartingBalance = decimal.NewFromInt(500)
	eco := New(opts, nil)
	m := economy.NewMember(1, "alice")

	assert.True(t, eco.GetBalance(ctx, m).Equal(decimal.NewFromInt(500)))
	assert.True(t, eco.Has(ctx, m, decimal.NewFromInt(500)))
	assert.False(t, eco.HasAccount(ctx, m), "reads must not create accounts")

	r := eco.WithdrawMember(ctx, m, decimal.NewFromInt(501))
	assert.ErrorIs(t, r.Err(), economy.ErrInsufficientFunds)
	assert.False(t, eco.HasAccount(ctx, m), "failed withdraw must not create accounts")

	assert.True(t, eco.CreatePlayerAccount(ctx, m))
	assert.False(t, eco.CreatePlayerAccount(ctx, m))
	assert.True(t, eco.GetBalance(ctx, m).Equal(decimal.NewFromInt(500)))
}

func TestEconomy_RoundsToFractionalDigits(t *testing.T) {
	ctx := context.Background()
	eco := New(backend.DefaultOptions("memory"), nil)
	m := economy.NewMember(1, "alice")

	r := eco.DepositMember(ctx, m, decimal.RequireFromString("10.005"))
	assert.True(t, r.TransactionSuccess())
	assert.Equal(t, "10.01", eco.GetBalance(ctx, m).String())
	assert.Equal(t, 2, eco.FractionalDigits())
	assert.Equal(t, "10.01 coins", eco.Format(eco.GetBalance(ctx, m)))
}

func TestEconomy_GroupAccountsAreSeparate(t *testing.T) {
	ctx := context.Background()
	eco := New(backend.DefaultOptions("memory"), nil)
	m := economy.NewMember(1, "alice")

	eco.DepositGroupMember(ctx, m, 100, decimal.NewFromInt(10))
	eco.DepositGroupMember(ctx, m, 200, decimal.NewFromInt(20))

	assert.True(t, eco.GetGroupBalance(ctx, m, 100).Equal(decimal.NewFromInt(10)))
	assert.True(t, eco.GetGroupBalance(ctx, m, 200).Equal(decimal.NewFromInt(20)))
	assert.True(t, eco.GetBalance(ctx, m).IsZero())
	assert.False(t, eco.HasAccount(ctx, m))
	assert.True(t, eco.HasGroupAccount(ctx, m, 100))
}

func TestEconomy_AddBankMember(t *testing.T) {
	ctx := context.Background()
	eco := New(backend.DefaultOptions("memory"), nil)
	owner := economy.NewMember(1, "owner")
	friend := economy.NewMember(2, "friend")

	assert.ErrorIs(t, eco.AddBankMember(ctx, "guild", friend).Err(), economy.ErrBankNotFound)
	assert.True(t, eco.CreateBank(ctx, "guild", owner).TransactionSuccess())
	assert.ErrorIs(t, eco.IsBankMember(ctx, "guild", friend).Err(), economy.ErrNotBankMember)

	assert.True(t, eco.AddBankMember(ctx, "guild", friend).TransactionSuccess())
	assert.True(t, eco.IsBankMember(ctx, "guild", friend).TransactionSuccess())
	assert.ErrorIs(t, eco.IsBankOwner(ctx, "guild", friend).Err(), economy.ErrNotBankOwner)
}

func TestEconomy_BankNames(t *testing.T) {
	ctx := context.Background()
	eco := New(backend.DefaultOptions("memory"), nil)
	owner := economy.NewMember(1, "owner")

	assert.NotNil(t, eco.GetBanks(ctx))
	assert.ErrorIs(t, eco.CreateBank(ctx, "", owner).Err(), economy.ErrInvalidBankName)
	eco.CreateBank(ctx, "zeta", owner)
	eco.CreateBank(ctx, "alpha", owner)
	assert.Equal(t, []string{"alpha", "zeta"}, eco.GetBanks(ctx))
}

func TestEconomy_Disabled(t *testing.T) {
	opts := backend.DefaultOptions("memory")
	opts.Enabled = false
	eco := New(opts, nil)

	assert.False(t, eco.IsEnabled())
	assert.Equal(t, "memory", eco.Name())
	assert.Equal(t, "coin", eco.CurrencyNameSingular())
	assert.Equal(t, "coins", eco.CurrencyNamePlural())
}
