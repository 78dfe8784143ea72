// Package economytest 提供經濟後端的一致性測試套件。
// 後端作者在自己的測試中呼叫 Run，即可驗證實作是否符合 economy.Economy 的契約。
package economytest

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoeShih716/go-economy/pkg/economy"
)

// Factory 為每個子測試建立一個全新、已啟用的後端
type Factory func(t *testing.T) economy.Economy

var seq atomic.Int64

func newMember() economy.Member {
	id := 100000 + seq.Add(1)
	return economy.NewMember(id, fmt.Sprintf("member-%d", id))
}

func newBankName() string {
	return fmt.Sprintf("bank-%d", seq.Add(1))
}

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

// requireValid 驗證回執符合不變式並回傳它
func requireValid(t *testing.T, r economy.Response) economy.Response {
	t.Helper()
	require.NoError(t, r.Validate())
	return r
}

func assertBalance(t *testing.T, want, got decimal.Decimal) {
	t.Helper()
	assert.True(t, want.Equal(got), "balance want=%s got=%s", want, got)
}

// Run 執行完整的一致性測試
func Run(t *testing.T, newEconomy Factory) {
	t.Run("Introspection", func(t *testing.T) { testIntrospection(t, newEconomy(t)) })
	t.Run("Accounts", func(t *testing.T) { testAccounts(t, newEconomy(t)) })
	t.Run("DepositWithdrawRoundTrip", func(t *testing.T) { testRoundTrip(t, newEconomy(t)) })
	t.Run("InsufficientFunds", func(t *testing.T) { testInsufficientFunds(t, newEconomy(t)) })
	t.Run("NegativeAmounts", func(t *testing.T) { testNegativeAmounts(t, newEconomy(t)) })
	t.Run("NilMember", func(t *testing.T) { testNilMember(t, newEconomy(t)) })
	t.Run("GroupAccounts", func(t *testing.T) { testGroupAccounts(t, newEconomy(t)) })
	t.Run("Banks", func(t *testing.T) { testBanks(t, newEconomy(t)) })
	t.Run("ConcurrentDeposits", func(t *testing.T) { testConcurrentDeposits(t, newEconomy(t)) })
	t.Run("ConcurrentWithdrawals", func(t *testing.T) { testConcurrentWithdrawals(t, newEconomy(t)) })
	t.Run("ConcurrentBankDeposits", func(t *testing.T) { testConcurrentBankDeposits(t, newEconomy(t)) })
	t.Run("ConcurrentBankWithdrawals", func(t *testing.T) { testConcurrentBankWithdrawals(t, newEconomy(t)) })
}

func testIntrospection(t *testing.T, eco economy.Economy) {
	assert.True(t, eco.IsEnabled())
	assert.NotEmpty(t, eco.Name())
	assert.GreaterOrEqual(t, eco.FractionalDigits(), economy.NoRounding)
	assert.NotEmpty(t, eco.Format(dec(1234)))
}

func testAccounts(t *testing.T, eco economy.Economy) {
	ctx := context.Background()
	m := newMember()

	assert.Equal(t, eco.HasAccount(ctx, m), eco.HasAccountByName(ctx, m.Name()))

	eco.CreatePlayerAccount(ctx, m)
	assert.True(t, eco.HasAccount(ctx, m))
	assert.True(t, eco.HasAccountByName(ctx, m.Name()))
	assert.False(t, eco.HasAccountByName(ctx, "nobody-has-this-name"))

	// 第二次建立不可改變已存在帳戶的餘額
	before := eco.GetBalance(ctx, m)
	eco.CreatePlayerAccount(ctx, m)
	assertBalance(t, before, eco.GetBalance(ctx, m))
}

func testRoundTrip(t *testing.T, eco economy.Economy) {
	ctx := context.Background()
	m := newMember()
	start := eco.GetBalance(ctx, m)

	dep := requireValid(t, eco.DepositMember(ctx, m, dec(100)))
	require.True(t, dep.TransactionSuccess(), dep.String())
	assertBalance(t, start.Add(dec(100)), dep.Balance())
	assertBalance(t, dec(100), dep.Amount())
	assert.True(t, eco.HasAccount(ctx, m))
	assert.True(t, eco.Has(ctx, m, start.Add(dec(100))))
	assert.False(t, eco.Has(ctx, m, start.Add(dec(101))))

	wd := requireValid(t, eco.WithdrawMember(ctx, m, dec(100)))
	require.True(t, wd.TransactionSuccess(), wd.String())
	assertBalance(t, start, wd.Balance())
	assertBalance(t, start, eco.GetBalance(ctx, m))
}

func testInsufficientFunds(t *testing.T, eco economy.Economy) {
	ctx := context.Background()
	m := newMember()
	requireValid(t, eco.DepositMember(ctx, m, dec(25)))
	balance := eco.GetBalance(ctx, m)

	r := requireValid(t, eco.WithdrawMember(ctx, m, balance.Add(dec(1))))
	assert.Equal(t, economy.Failure, r.Type())
	assert.ErrorIs(t, r.Err(), economy.ErrInsufficientFunds)
	assertBalance(t, balance, r.Balance())
	assertBalance(t, balance, eco.GetBalance(ctx, m))
}

func testNegativeAmounts(t *testing.T, eco economy.Economy) {
	ctx := context.Background()
	m := newMember()
	requireValid(t, eco.DepositMember(ctx, m, dec(10)))
	balance := eco.GetBalance(ctx, m)

	for _, r := range []economy.Response{
		eco.DepositMember(ctx, m, dec(-5)),
		eco.WithdrawMember(ctx, m, dec(-5)),
		eco.DepositGroupMember(ctx, m, 42, dec(-5)),
		eco.WithdrawGroupMember(ctx, m, 42, dec(-5)),
	} {
		requireValid(t, r)
		assert.ErrorIs(t, r.Err(), economy.ErrNegativeAmount)
	}
	assert.False(t, eco.Has(ctx, m, dec(-1)))
	assert.False(t, eco.GroupHas(ctx, m, 42, dec(-1)))
	assertBalance(t, balance, eco.GetBalance(ctx, m))
}

func testNilMember(t *testing.T, eco economy.Economy) {
	ctx := context.Background()

	assert.False(t, eco.HasAccount(ctx, nil))
	assert.False(t, eco.Has(ctx, nil, dec(0)))
	assert.False(t, eco.CreatePlayerAccount(ctx, nil))
	assert.True(t, eco.GetBalance(ctx, nil).IsZero())

	r := requireValid(t, eco.DepositMember(ctx, nil, dec(1)))
	assert.ErrorIs(t, r.Err(), economy.ErrNilMember)
	r = requireValid(t, eco.WithdrawMember(ctx, nil, dec(1)))
	assert.ErrorIs(t, r.Err(), economy.ErrNilMember)
}

func testGroupAccounts(t *testing.T, eco economy.Economy) {
	ctx := context.Background()
	m := newMember()
	const groupID int64 = 987654

	if !eco.CreateGroupPlayerAccount(ctx, m, groupID) {
		// 不支援群組帳戶: 所有群組操作退回全域帳戶
		requireValid(t, eco.DepositGroupMember(ctx, m, groupID, dec(40)))
		assertBalance(t, eco.GetBalance(ctx, m), eco.GetGroupBalance(ctx, m, groupID))
		assert.Equal(t, eco.HasAccount(ctx, m), eco.HasGroupAccount(ctx, m, groupID))

		global := eco.GetBalance(ctx, m)
		assert.Equal(t, eco.Has(ctx, m, global), eco.GroupHas(ctx, m, groupID, global))

		r := requireValid(t, eco.WithdrawGroupMember(ctx, m, groupID, dec(15)))
		require.True(t, r.TransactionSuccess(), r.String())
		assertBalance(t, global.Sub(dec(15)), eco.GetBalance(ctx, m))
		assertBalance(t, eco.GetBalance(ctx, m), eco.GetGroupBalance(ctx, m, groupID))
		assert.False(t, eco.CreateGroupPlayerAccount(ctx, newMember(), groupID))
		return
	}

	assert.True(t, eco.HasGroupAccount(ctx, m, groupID))
	assert.False(t, eco.HasGroupAccount(ctx, m, groupID+1))
	globalStart := eco.GetBalance(ctx, m)
	groupStart := eco.GetGroupBalance(ctx, m, groupID)

	r := requireValid(t, eco.DepositGroupMember(ctx, m, groupID, dec(40)))
	require.True(t, r.TransactionSuccess(), r.String())
	assertBalance(t, groupStart.Add(dec(40)), eco.GetGroupBalance(ctx, m, groupID))
	assertBalance(t, globalStart, eco.GetBalance(ctx, m))
	assert.True(t, eco.GroupHas(ctx, m, groupID, groupStart.Add(dec(40))))

	r = requireValid(t, eco.WithdrawGroupMember(ctx, m, groupID, groupStart.Add(dec(41))))
	assert.ErrorIs(t, r.Err(), economy.ErrInsufficientFunds)

	r = requireValid(t, eco.WithdrawGroupMember(ctx, m, groupID, dec(40)))
	require.True(t, r.TransactionSuccess(), r.String())
	assertBalance(t, groupStart, r.Balance())
}

func testBanks(t *testing.T, eco economy.Economy) {
	ctx := context.Background()
	owner := newMember()
	other := newMember()
	name := newBankName()

	if !eco.HasBankSupport() {
		for _, r := range []economy.Response{
			eco.CreateBank(ctx, name, owner),
			eco.DeleteBank(ctx, name),
			eco.BankBalance(ctx, name),
			eco.BankHas(ctx, name, dec(1)),
			eco.BankWithdraw(ctx, name, dec(1)),
			eco.BankDeposit(ctx, name, dec(1)),
			eco.IsBankOwner(ctx, name, owner),
			eco.IsBankMember(ctx, name, owner),
		} {
			requireValid(t, r)
			assert.Equal(t, economy.NotImplemented, r.Type())
		}
		assert.Empty(t, eco.GetBanks(ctx))
		return
	}

	r := requireValid(t, eco.CreateBank(ctx, name, owner))
	require.True(t, r.TransactionSuccess(), r.String())
	r = requireValid(t, eco.CreateBank(ctx, name, other))
	assert.ErrorIs(t, r.Err(), economy.ErrBankExists)
	assert.Contains(t, eco.GetBanks(ctx), name)

	r = requireValid(t, eco.BankDeposit(ctx, name, dec(100)))
	require.True(t, r.TransactionSuccess(), r.String())
	assertBalance(t, dec(100), r.Balance())

	assert.True(t, requireValid(t, eco.BankHas(ctx, name, dec(100))).TransactionSuccess())
	r = requireValid(t, eco.BankHas(ctx, name, dec(101)))
	assert.ErrorIs(t, r.Err(), economy.ErrInsufficientFunds)

	r = requireValid(t, eco.BankWithdraw(ctx, name, dec(101)))
	assert.ErrorIs(t, r.Err(), economy.ErrInsufficientFunds)
	r = requireValid(t, eco.BankWithdraw(ctx, name, dec(40)))
	require.True(t, r.TransactionSuccess(), r.String())
	assertBalance(t, dec(60), r.Balance())

	r = requireValid(t, eco.BankBalance(ctx, name))
	require.True(t, r.TransactionSuccess(), r.String())
	assertBalance(t, dec(60), r.Balance())

	assert.True(t, requireValid(t, eco.IsBankOwner(ctx, name, owner)).TransactionSuccess())
	assert.True(t, requireValid(t, eco.IsBankMember(ctx, name, owner)).TransactionSuccess())
	r = requireValid(t, eco.IsBankOwner(ctx, name, other))
	assert.ErrorIs(t, r.Err(), economy.ErrNotBankOwner)
	r = requireValid(t, eco.IsBankMember(ctx, name, other))
	assert.ErrorIs(t, r.Err(), economy.ErrNotBankMember)

	missing := newBankName()
	for _, r := range []economy.Response{
		eco.BankBalance(ctx, missing),
		eco.BankDeposit(ctx, missing, dec(1)),
		eco.BankWithdraw(ctx, missing, dec(1)),
		eco.BankHas(ctx, missing, dec(1)),
		eco.IsBankOwner(ctx, missing, owner),
		eco.IsBankMember(ctx, missing, owner),
		eco.DeleteBank(ctx, missing),
	} {
		requireValid(t, r)
		assert.ErrorIs(t, r.Err(), economy.ErrBankNotFound)
	}

	r = requireValid(t, eco.BankDeposit(ctx, name, dec(-1)))
	assert.ErrorIs(t, r.Err(), economy.ErrNegativeAmount)

	r = requireValid(t, eco.DeleteBank(ctx, name))
	require.True(t, r.TransactionSuccess(), r.String())
	assert.NotContains(t, eco.GetBanks(ctx), name)
	r = requireValid(t, eco.DeleteBank(ctx, name))
	assert.ErrorIs(t, r.Err(), economy.ErrBankNotFound)
}

func testConcurrentDeposits(t *testing.T, eco economy.Economy) {
	ctx := context.Background()
	m := newMember()
	start := eco.GetBalance(ctx, m)

	const workers = 20
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			if r := eco.DepositMember(ctx, m, dec(5)); !r.TransactionSuccess() {
				t.Errorf("deposit failed: %s", r)
			}
		}()
	}
	wg.Wait()

	assertBalance(t, start.Add(dec(5*workers)), eco.GetBalance(ctx, m))
}

func testConcurrentWithdrawals(t *testing.T, eco economy.Economy) {
	ctx := context.Background()
	m := newMember()
	start := eco.GetBalance(ctx, m)
	require.True(t, eco.DepositMember(ctx, m, dec(50)).TransactionSuccess())
	if start.IsPositive() {
		require.True(t, eco.WithdrawMember(ctx, m, start).TransactionSuccess())
	}

	const workers = 20
	var (
		wg        sync.WaitGroup
		succeeded atomic.Int64
	)
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			r := eco.WithdrawMember(ctx, m, dec(5))
			if err := r.Validate(); err != nil {
				t.Errorf("invalid response: %v", err)
			}
			if r.TransactionSuccess() {
				succeeded.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(10), succeeded.Load())
	assert.True(t, eco.GetBalance(ctx, m).IsZero())
}

// newFundedBank 建立銀行並存入 balance；不支援銀行時略過測試
func newFundedBank(t *testing.T, eco economy.Economy, balance int64) string {
	t.Helper()
	if !eco.HasBankSupport() {
		t.Skip("backend has no bank support")
	}
	ctx := context.Background()
	name := newBankName()
	r := eco.CreateBank(ctx, name, newMember())
	require.True(t, r.TransactionSuccess(), r.String())
	if balance > 0 {
		r = eco.BankDeposit(ctx, name, dec(balance))
		require.True(t, r.TransactionSuccess(), r.String())
	}
	return name
}

func testConcurrentBankDeposits(t *testing.T, eco economy.Economy) {
	ctx := context.Background()
	name := newFundedBank(t, eco, 7)

	const workers = 20
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			if r := eco.BankDeposit(ctx, name, dec(5)); !r.TransactionSuccess() {
				t.Errorf("bank deposit failed: %s", r)
			}
		}()
	}
	wg.Wait()

	r := requireValid(t, eco.BankBalance(ctx, name))
	require.True(t, r.TransactionSuccess(), r.String())
	assertBalance(t, dec(7+5*workers), r.Balance())
}

func testConcurrentBankWithdrawals(t *testing.T, eco economy.Economy) {
	ctx := context.Background()
	// 53 / 5 = 10 次成功，剩 3
	name := newFundedBank(t, eco, 53)

	const workers = 20
	var (
		wg        sync.WaitGroup
		succeeded atomic.Int64
	)
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			r := eco.BankWithdraw(ctx, name, dec(5))
			if err := r.Validate(); err != nil {
				t.Errorf("invalid response: %v", err)
			}
			if r.TransactionSuccess() {
				succeeded.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(10), succeeded.Load())
	r := requireValid(t, eco.BankBalance(ctx, name))
	require.True(t, r.TransactionSuccess(), r.String())
	assertBalance(t, dec(3), r.Balance())
}
