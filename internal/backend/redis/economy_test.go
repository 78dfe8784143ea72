package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoeShih716/go-economy/internal/backend"
	"github.com/JoeShih716/go-economy/pkg/economy"
	"github.com/JoeShih716/go-economy/pkg/economy/economytest"
	pkgRedis "github.com/JoeShih716/go-economy/pkg/redis"
)

func newTestEconomy(t *testing.T, opts backend.Options) (*Economy, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client, err := pkgRedis.NewClient(pkgRedis.Config{Addr: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return New(client, "", opts, nil), mr
}

func TestEconomy_Conformance(t *testing.T) {
	t.Run("Full", func(t *testing.T) {
		economytest.Run(t, func(t *testing.T) economy.Economy {
			eco, _ := newTestEconomy(t, backend.DefaultOptions("redis"))
			return eco
		})
	})

	t.Run("Without Banks And Groups", func(t *testing.T) {
		economytest.Run(t, func(t *testing.T) economy.Economy {
			opts := backend.DefaultOptions("redis-lite")
			opts.BankSupport = false
			opts.GroupAccounts = false
			eco, _ := newTestEconomy(t, opts)
			return eco
		})
	})
}

func TestEconomy_KeyLayout(t *testing.T) {
	ctx := context.Background()
	eco, mr := newTestEconomy(t, backend.DefaultOptions("redis"))
	m := economy.NewMember(42, "alice")

	require.True(t, eco.DepositMember(ctx, m, decimal.RequireFromString("12.5")).TransactionSuccess())
	require.True(t, eco.DepositGroupMember(ctx, m, 7, decimal.NewFromInt(3)).TransactionSuccess())

	val, err := mr.Get("economy:account:42")
	require.NoError(t, err)
	assert.Equal(t, "12.5", val)

	val, err = mr.Get("economy:account:42:group:7")
	require.NoError(t, err)
	assert.Equal(t, "3", val)

	assert.Equal(t, "42", mr.HGet("economy:names", "alice"))
}

func TestEconomy_CorruptBalanceIsReportedAsFailure(t *testing.T) {
	ctx := context.Background()
	eco, mr := newTestEconomy(t, backend.DefaultOptions("redis"))
	m := economy.NewMember(42, "alice")

	require.NoError(t, mr.Set("economy:account:42", "not-a-number"))

	r := eco.WithdrawMember(ctx, m, decimal.NewFromInt(1))
	assert.Equal(t, economy.Failure, r.Type())
	assert.NoError(t, r.Validate())
	assert.Contains(t, r.ErrorMessage(), "corrupt balance")
	assert.True(t, eco.GetBalance(ctx, m).IsZero())
}

func TestEconomy_ServerDownIsReportedAsFailure(t *testing.T) {
	ctx := context.Background()
	eco, mr := newTestEconomy(t, backend.DefaultOptions("redis"))
	m := economy.NewMember(42, "alice")
	mr.Close()

	r := eco.DepositMember(ctx, m, decimal.NewFromInt(1))
	assert.Equal(t, economy.Failure, r.Type())
	assert.NoError(t, r.Validate())
	assert.False(t, eco.HasAccount(ctx, m))
	assert.False(t, eco.CreatePlayerAccount(ctx, m))
	assert.Empty(t, eco.GetBanks(ctx))
}

func TestEconomy_AddBankMember(t *testing.T) {
	ctx := context.Background()
	eco, _ := newTestEconomy(t, backend.DefaultOptions("redis"))
	owner := economy.NewMember(1, "owner")
	friend := economy.NewMember(2, "friend")

	assert.ErrorIs(t, eco.AddBankMember(ctx, "guild", friend).Err(), economy.ErrBankNotFound)
	require.True(t, eco.CreateBank(ctx, "guild", owner).TransactionSuccess())
	assert.ErrorIs(t, eco.IsBankMember(ctx, "guild", friend).Err(), economy.ErrNotBankMember)

	assert.True(t, eco.AddBankMember(ctx, "guild", friend).TransactionSuccess())
	assert.True(t, eco.IsBankMember(ctx, "guild", friend).TransactionSuccess())
	assert.ErrorIs(t, eco.IsBankOwner(ctx, "guild", friend).Err(), economy.ErrNotBankOwner)
}

func TestEconomy_BankNamesNeverShareKeys(t *testing.T) {
	ctx := context.Background()
	owner := economy.NewMember(1, "owner")

	orders := map[string][]string{
		"Suffixed First": {"a:members", "a"},
		"Plain First":    {"b", "b:members"},
	}
	for name, banks := range orders {
		t.Run(name, func(t *testing.T) {
			eco, mr := newTestEconomy(t, backend.DefaultOptions("redis"))
			for _, bank := range banks {
				r := eco.CreateBank(ctx, bank, owner)
				require.True(t, r.TransactionSuccess(), r.String())
			}

			assert.ElementsMatch(t, banks, eco.GetBanks(ctx))
			for _, bank := range banks {
				assert.True(t, eco.IsBankOwner(ctx, bank, owner).TransactionSuccess())
				assert.True(t, eco.IsBankMember(ctx, bank, owner).TransactionSuccess())
				assert.True(t, mr.Exists("economy:bankmembers:"+bank))
			}

			require.True(t, eco.DeleteBank(ctx, banks[0]).TransactionSuccess())
			assert.True(t, eco.IsBankMember(ctx, banks[1], owner).TransactionSuccess())
		})
	}
}

func TestEconomy_CorruptBankBalanceIsReportedAsFailure(t *testing.T) {
	ctx := context.Background()
	eco, mr := newTestEconomy(t, backend.DefaultOptions("redis"))
	owner := economy.NewMember(1, "owner")

	require.True(t, eco.CreateBank(ctx, "vault", owner).TransactionSuccess())
	mr.HSet("economy:bank:vault", "balance", "not-a-number")

	for _, r := range []economy.Response{
		eco.BankBalance(ctx, "vault"),
		eco.IsBankOwner(ctx, "vault", owner),
		eco.IsBankMember(ctx, "vault", owner),
	} {
		assert.Equal(t, economy.Failure, r.Type())
		assert.NoError(t, r.Validate())
		assert.Contains(t, r.ErrorMessage(), "corrupt bank balance")
	}
}
