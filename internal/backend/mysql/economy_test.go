package mysql

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoeShih716/go-economy/internal/backend"
	"github.com/JoeShih716/go-economy/pkg/economy"
	"github.com/JoeShih716/go-economy/pkg/economy/economytest"
	mysqlpkg "github.com/JoeShih716/go-economy/pkg/mysql"
)

// newTestEconomy 以 SQLite 檔案取代 MySQL；單一連線讓 SQLite 的寫入自然序列化
func newTestEconomy(t *testing.T, opts backend.Options) *Economy {
	t.Helper()
	path := filepath.Join(t.TempDir(), "economy.db")
	client, err := mysqlpkg.NewClientWithDialector(sqlite.Open(path), mysqlpkg.Config{MaxOpenConns: 1})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	eco := New(client, opts, nil)
	require.NoError(t, eco.Migrate(context.Background()))
	return eco
}

func TestEconomy_Conformance(t *testing.T) {
	t.Run("Full", func(t *testing.T) {
		economytest.Run(t, func(t *testing.T) economy.Economy {
			return newTestEconomy(t, backend.DefaultOptions("mysql"))
		})
	})

	t.Run("Without Banks And Groups", func(t *testing.T) {
		economytest.Run(t, func(t *testing.T) economy.Economy {
			opts := backend.DefaultOptions("mysql-lite")
			opts.BankSupport = false
			opts.GroupAccounts = false
			return newTestEconomy(t, opts)
		})
	})
}

func TestEconomy_Journal(t *testing.T) {
	ctx := context.Background()
	eco := newTestEconomy(t, backend.DefaultOptions("mysql"))
	m := economy.NewMember(42, "alice")

	require.True(t, eco.DepositMember(ctx, m, decimal.NewFromInt(30)).TransactionSuccess())
	require.True(t, eco.WithdrawMember(ctx, m, decimal.NewFromInt(10)).TransactionSuccess())
	// 失敗的異動不寫流水帳
	require.False(t, eco.WithdrawMember(ctx, m, decimal.NewFromInt(100)).TransactionSuccess())
	require.True(t, eco.DepositGroupMember(ctx, m, 7, decimal.NewFromInt(5)).TransactionSuccess())

	txs, err := eco.History(ctx, m, backend.Global, 0)
	require.NoError(t, err)
	require.Len(t, txs, 2)

	assert.Equal(t, KindWithdraw, txs[0].Kind)
	assert.True(t, decimal.NewFromInt(10).Equal(txs[0].Amount))
	assert.True(t, decimal.NewFromInt(20).Equal(txs[0].BalanceAfter))
	assert.Equal(t, KindDeposit, txs[1].Kind)
	assert.NotEqual(t, txs[0].ID, txs[1].ID)

	txs, err = eco.History(ctx, m, eco.GroupScope(7), 1)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.True(t, decimal.NewFromInt(5).Equal(txs[0].BalanceAfter))

	_, err = eco.History(ctx, nil, backend.Global, 0)
	assert.ErrorIs(t, err, economy.ErrNilMember)
}

func TestEconomy_BankJournal(t *testing.T) {
	ctx := context.Background()
	eco := newTestEconomy(t, backend.DefaultOptions("mysql"))
	owner := economy.NewMember(1, "owner")

	require.True(t, eco.CreateBank(ctx, "vault", owner).TransactionSuccess())
	require.True(t, eco.BankDeposit(ctx, "vault", decimal.NewFromInt(50)).TransactionSuccess())
	require.True(t, eco.BankWithdraw(ctx, "vault", decimal.NewFromInt(20)).TransactionSuccess())

	txs, err := eco.BankHistory(ctx, "vault", 10)
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, KindBankWithdraw, txs[0].Kind)
	assert.True(t, decimal.NewFromInt(30).Equal(txs[0].BalanceAfter))
	assert.Equal(t, KindBankDeposit, txs[1].Kind)

	_, err = eco.BankHistory(ctx, "missing", 10)
	assert.ErrorIs(t, err, economy.ErrBankNotFound)
}

func TestEconomy_RecreatedBankStartsWithEmptyHistory(t *testing.T) {
	ctx := context.Background()
	eco := newTestEconomy(t, backend.DefaultOptions("mysql"))
	owner := economy.NewMember(1, "owner")

	require.True(t, eco.CreateBank(ctx, "vault", owner).TransactionSuccess())
	require.True(t, eco.BankDeposit(ctx, "vault", decimal.NewFromInt(50)).TransactionSuccess())
	require.True(t, eco.DeleteBank(ctx, "vault").TransactionSuccess())

	require.True(t, eco.CreateBank(ctx, "vault", owner).TransactionSuccess())
	txs, err := eco.BankHistory(ctx, "vault", 0)
	require.NoError(t, err)
	assert.Empty(t, txs)

	require.True(t, eco.BankDeposit(ctx, "vault", decimal.NewFromInt(5)).TransactionSuccess())
	txs, err = eco.BankHistory(ctx, "vault", 0)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.True(t, decimal.NewFromInt(5).Equal(txs[0].BalanceAfter))

	// 舊銀行的流水帳仍保留
	var n int64
	require.NoError(t, eco.client.DB().Model(&Transaction{}).Where("bank_name = ?", "vault").Count(&n).Error)
	assert.Equal(t, int64(2), n)
}

func TestEconomy_GetBanksSortsByteWise(t *testing.T) {
	ctx := context.Background()
	eco := newTestEconomy(t, backend.DefaultOptions("mysql"))
	owner := economy.NewMember(1, "owner")

	for _, name := range []string{"b", "a", "B", "Z"} {
		require.True(t, eco.CreateBank(ctx, name, owner).TransactionSuccess())
	}
	assert.Equal(t, []string{"B", "Z", "a", "b"}, eco.GetBanks(ctx))
}

func TestEconomy_FailedWithdrawalCreatesNoAccount(t *testing.T) {
	ctx := context.Background()
	eco := newTestEconomy(t, backend.DefaultOptions("mysql"))
	m := economy.NewMember(42, "alice")

	r := eco.WithdrawMember(ctx, m, decimal.NewFromInt(1))
	assert.Equal(t, economy.Failure, r.Type())
	assert.ErrorIs(t, r.Err(), economy.ErrInsufficientFunds)
	assert.False(t, eco.HasAccount(ctx, m))

	r = eco.DepositMember(ctx, m, decimal.NewFromInt(-1))
	assert.ErrorIs(t, r.Err(), economy.ErrNegativeAmount)
	assert.False(t, eco.HasAccount(ctx, m))
}

func TestEconomy_BankMembersAndDelete(t *testing.T) {
	ctx := context.Background()
	eco := newTestEconomy(t, backend.DefaultOptions("mysql"))
	owner := economy.NewMember(1, "owner")
	guest := economy.NewMember(2, "guest")

	require.True(t, eco.CreateBank(ctx, "vault", owner).TransactionSuccess())
	assert.ErrorIs(t, eco.IsBankMember(ctx, "vault", guest).Err(), economy.ErrNotBankMember)

	require.True(t, eco.AddBankMember(ctx, "vault", guest).TransactionSuccess())
	// 重複加入不算錯誤
	require.True(t, eco.AddBankMember(ctx, "vault", guest).TransactionSuccess())
	assert.True(t, eco.IsBankMember(ctx, "vault", guest).TransactionSuccess())
	assert.ErrorIs(t, eco.IsBankOwner(ctx, "vault", guest).Err(), economy.ErrNotBankOwner)

	require.True(t, eco.DeleteBank(ctx, "vault").TransactionSuccess())
	var n int64
	require.NoError(t, eco.client.DB().Model(&BankMember{}).Count(&n).Error)
	assert.Zero(t, n)

	// 同名重建後不繼承舊成員
	require.True(t, eco.CreateBank(ctx, "vault", owner).TransactionSuccess())
	assert.ErrorIs(t, eco.IsBankMember(ctx, "vault", guest).Err(), economy.ErrNotBankMember)
	assert.ErrorIs(t, eco.AddBankMember(ctx, "missing", guest).Err(), economy.ErrBankNotFound)
}

func TestEconomy_ClosedDatabaseIsReportedAsFailure(t *testing.T) {
	ctx := context.Background()
	eco := newTestEconomy(t, backend.DefaultOptions("mysql"))
	m := economy.NewMember(42, "alice")
	require.NoError(t, eco.client.Close())

	r := eco.DepositMember(ctx, m, decimal.NewFromInt(1))
	assert.Equal(t, economy.Failure, r.Type())
	assert.NoError(t, r.Validate())
	assert.False(t, eco.HasAccount(ctx, m))
	assert.False(t, eco.CreatePlayerAccount(ctx, m))
	assert.Empty(t, eco.GetBanks(ctx))
	assert.Equal(t, economy.Failure, eco.BankBalance(ctx, "vault").Type())
}
