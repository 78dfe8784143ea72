// Package memory 提供完全在記憶體中的經濟後端。
// 採用單一讀寫鎖序列化所有狀態變更，確保每次異動原子完成；程序結束後資料即消失。
package memory

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-economy/internal/backend"
	"github.com/JoeShih716/go-economy/pkg/economy"
)

var _ economy.Economy = (*Economy)(nil)

type accountKey struct {
	memberID int64
	scope    backend.Scope
}

type account struct {
	balance decimal.Decimal
}

type bank struct {
	owner   int64
	members map[int64]struct{}
	balance decimal.Decimal
}

// Economy 記憶體後端。
// - mu: 保護以下所有 map，讀取取讀鎖、異動取寫鎖
// - accounts: (成員, 範圍) → 帳戶
// - names: 成員名稱 → 成員 ID，供已棄用的 HasAccountByName 解析身分
// - banks: 銀行名稱 → 銀行
type Economy struct {
	backend.Base

	mu       sync.RWMutex
	accounts map[accountKey]*account
	names    map[string]int64
	banks    map[string]*bank
}

// New 建立空白的記憶體後端
func New(opts backend.Options, logger *slog.Logger) *Economy {
	return &Economy{
		Base:     backend.NewBase(opts, logger),
		accounts: make(map[accountKey]*account),
		names:    make(map[string]int64),
		banks:    make(map[string]*bank),
	}
}

// balanceOf 呼叫端需持有鎖
func (e *Economy) balanceOf(key accountKey) decimal.Decimal {
	if a, ok := e.accounts[key]; ok {
		return a.balance
	}
	return e.StartingBalance()
}

// ensure 取得或建立帳戶，呼叫端需持有寫鎖
func (e *Economy) ensure(key accountKey, name string) *account {
	a, ok := e.accounts[key]
	if !ok {
		a = &account{balance: e.StartingBalance()}
		e.accounts[key] = a
	}
	if name != "" {
		e.names[name] = key.memberID
	}
	return a
}

// ---------------------------------------------------------
// Accounts
// ---------------------------------------------------------

// HasAccountByName implements economy.Economy.
//
// Deprecated: use HasAccount.
func (e *Economy) HasAccountByName(ctx context.Context, memberName string) bool {
	e.mu.RLock()
	id, ok := e.names[memberName]
	e.mu.RUnlock()
	if !ok {
		return false
	}
	return e.HasAccount(ctx, economy.NewMember(id, memberName))
}

func (e *Economy) HasAccount(_ context.Context, member economy.Member) bool {
	return e.hasAccount(member, backend.Global)
}

func (e *Economy) HasGroupAccount(_ context.Context, member economy.Member, groupID int64) bool {
	return e.hasAccount(member, e.GroupScope(groupID))
}

func (e *Economy) hasAccount(member economy.Member, scope backend.Scope) bool {
	if member == nil {
		return false
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	_, ok := e.accounts[accountKey{memberID: member.ID(), scope: scope}]
	return ok
}

func (e *Economy) GetBalance(_ context.Context, member economy.Member) decimal.Decimal {
	return e.balance(member, backend.Global)
}

func (e *Economy) GetGroupBalance(_ context.Context, member economy.Member, groupID int64) decimal.Decimal {
	return e.balance(member, e.GroupScope(groupID))
}

func (e *Economy) balance(member economy.Member, scope backend.Scope) decimal.Decimal {
	if member == nil {
		return decimal.Zero
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.balanceOf(accountKey{memberID: member.ID(), scope: scope})
}

func (e *Economy) Has(ctx context.Context, member economy.Member, amount decimal.Decimal) bool {
	if member == nil || amount.IsNegative() {
		return false
	}
	return e.GetBalance(ctx, member).GreaterThanOrEqual(amount)
}

func (e *Economy) GroupHas(ctx context.Context, member economy.Member, groupID int64, amount decimal.Decimal) bool {
	if member == nil || amount.IsNegative() {
		return false
	}
	return e.GetGroupBalance(ctx, member, groupID).GreaterThanOrEqual(amount)
}

func (e *Economy) CreatePlayerAccount(_ context.Context, member economy.Member) bool {
	return e.create(member, backend.Global)
}

func (e *Economy) CreateGroupPlayerAccount(_ context.Context, member economy.Member, groupID int64) bool {
	// 不支援群組帳戶時不退回全域帳戶
	if !e.GroupAccounts() {
		return false
	}
	return e.create(member, e.GroupScope(groupID))
}

func (e *Economy) create(member economy.Member, scope backend.Scope) bool {
	if member == nil {
		return false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	key := accountKey{memberID: member.ID(), scope: scope}
	if _, ok := e.accounts[key]; ok {
		return false
	}
	e.ensure(key, member.Name())
	return true
}

// ---------------------------------------------------------
// Mutations
// ---------------------------------------------------------

func (e *Economy) WithdrawMember(_ context.Context, member economy.Member, amount decimal.Decimal) economy.Response {
	return e.withdraw(member, backend.Global, amount)
}

func (e *Economy) WithdrawGroupMember(_ context.Context, member economy.Member, groupID int64, amount decimal.Decimal) economy.Response {
	return e.withdraw(member, e.GroupScope(groupID), amount)
}

func (e *Economy) DepositMember(_ context.Context, member economy.Member, amount decimal.Decimal) economy.Response {
	return e.deposit(member, backend.Global, amount)
}

func (e *Economy) DepositGroupMember(_ context.Context, member economy.Member, groupID int64, amount decimal.Decimal) economy.Response {
	return e.deposit(member, e.GroupScope(groupID), amount)
}

func (e *Economy) withdraw(member economy.Member, scope backend.Scope, amount decimal.Decimal) economy.Response {
	if member == nil {
		return economy.Fail(amount, decimal.Zero, economy.ErrNilMember)
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	key := accountKey{memberID: member.ID(), scope: scope}
	current := e.balanceOf(key)
	amt, err := e.Normalize(amount)
	if err != nil {
		return economy.Fail(amount, current, err)
	}
	if current.LessThan(amt) {
		return economy.Fail(amount, current, economy.ErrInsufficientFunds)
	}
	a := e.ensure(key, member.Name())
	a.balance = current.Sub(amt)
	return economy.Succeed(amount, a.balance)
}

func (e *Economy) deposit(member economy.Member, scope backend.Scope, amount decimal.Decimal) economy.Response {
	if member == nil {
		return economy.Fail(amount, decimal.Zero, economy.ErrNilMember)
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	key := accountKey{memberID: member.ID(), scope: scope}
	amt, err := e.Normalize(amount)
	if err != nil {
		return economy.Fail(amount, e.balanceOf(key), err)
	}
	a := e.ensure(key, member.Name())
	a.balance = a.balance.Add(amt)
	return economy.Succeed(amount, a.balance)
}

// ---------------------------------------------------------
// Banks
// ---------------------------------------------------------

func (e *Economy) CreateBank(_ context.Context, name string, owner economy.Member) economy.Response {
	if r, off := e.BanksUnsupported(decimal.Zero); off {
		return r
	}
	if owner == nil {
		return economy.Fail(decimal.Zero, decimal.Zero, economy.ErrNilMember)
	}
	if name == "" {
		return economy.Fail(decimal.Zero, decimal.Zero, economy.ErrInvalidBankName)
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.banks[name]; ok {
		return economy.Fail(decimal.Zero, decimal.Zero, economy.ErrBankExists)
	}
	e.banks[name] = &bank{
		owner:   owner.ID(),
		members: map[int64]struct{}{owner.ID(): {}},
		balance: decimal.Zero,
	}
	return economy.Succeed(decimal.Zero, decimal.Zero)
}

func (e *Economy) DeleteBank(_ context.Context, name string) economy.Response {
	if r, off := e.BanksUnsupported(decimal.Zero); off {
		return r
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.banks[name]; !ok {
		return economy.Fail(decimal.Zero, decimal.Zero, economy.ErrBankNotFound)
	}
	delete(e.banks, name)
	return economy.Succeed(decimal.Zero, decimal.Zero)
}

func (e *Economy) BankBalance(_ context.Context, name string) economy.Response {
	if r, off := e.BanksUnsupported(decimal.Zero); off {
		return r
	}
	e.mu.RLock()
	defer e.mu.RUnlock()

	b, ok := e.banks[name]
	if !ok {
		return economy.Fail(decimal.Zero, decimal.Zero, economy.ErrBankNotFound)
	}
	return economy.Succeed(decimal.Zero, b.balance)
}

func (e *Economy) BankHas(_ context.Context, name string, amount decimal.Decimal) economy.Response {
	if r, off := e.BanksUnsupported(amount); off {
		return r
	}
	e.mu.RLock()
	defer e.mu.RUnlock()

	b, ok := e.banks[name]
	if !ok {
		return economy.Fail(amount, decimal.Zero, economy.ErrBankNotFound)
	}
	if amount.IsNegative() {
		return economy.Fail(amount, b.balance, economy.ErrNegativeAmount)
	}
	if b.balance.LessThan(amount) {
		return economy.Fail(amount, b.balance, economy.ErrInsufficientFunds)
	}
	return economy.Succeed(amount, b.balance)
}

func (e *Economy) BankWithdraw(_ context.Context, name string, amount decimal.Decimal) economy.Response {
	if r, off := e.BanksUnsupported(amount); off {
		return r
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	b, ok := e.banks[name]
	if !ok {
		return economy.Fail(amount, decimal.Zero, economy.ErrBankNotFound)
	}
	amt, err := e.Normalize(amount)
	if err != nil {
		return economy.Fail(amount, b.balance, err)
	}
	if b.balance.LessThan(amt) {
		return economy.Fail(amount, b.balance, economy.ErrInsufficientFunds)
	}
	b.balance = b.balance.Sub(amt)
	return economy.Succeed(amount, b.balance)
}

func (e *Economy) BankDeposit(_ context.Context, name string, amount decimal.Decimal) economy.Response {
	if r, off := e.BanksUnsupported(amount); off {
		return r
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	b, ok := e.banks[name]
	if !ok {
		return economy.Fail(amount, decimal.Zero, economy.ErrBankNotFound)
	}
	amt, err := e.Normalize(amount)
	if err != nil {
		return economy.Fail(amount, b.balance, err)
	}
	b.balance = b.balance.Add(amt)
	return economy.Succeed(amount, b.balance)
}

func (e *Economy) IsBankOwner(_ context.Context, name string, member economy.Member) economy.Response {
	if r, off := e.BanksUnsupported(decimal.Zero); off {
		return r
	}
	e.mu.RLock()
	defer e.mu.RUnlock()

	b, ok := e.banks[name]
	if !ok {
		return economy.Fail(decimal.Zero, decimal.Zero, economy.ErrBankNotFound)
	}
	if member == nil {
		return economy.Fail(decimal.Zero, b.balance, economy.ErrNilMember)
	}
	if b.owner != member.ID() {
		return economy.Fail(decimal.Zero, b.balance, economy.ErrNotBankOwner)
	}
	return economy.Succeed(decimal.Zero, b.balance)
}

func (e *Economy) IsBankMember(_ context.Context, name string, member economy.Member) economy.Response {
	if r, off := e.BanksUnsupported(decimal.Zero); off {
		return r
	}
	e.mu.RLock()
	defer e.mu.RUnlock()

	b, ok := e.banks[name]
	if !ok {
		return economy.Fail(decimal.Zero, decimal.Zero, economy.ErrBankNotFound)
	}
	if member == nil {
		return economy.Fail(decimal.Zero, b.balance, economy.ErrNilMember)
	}
	if _, ok := b.members[member.ID()]; !ok {
		return economy.Fail(decimal.Zero, b.balance, economy.ErrNotBankMember)
	}
	return economy.Succeed(decimal.Zero, b.balance)
}

// AddBankMember 將成員加入銀行；不屬於 economy.Economy 契約，由宿主管理指令使用
func (e *Economy) AddBankMember(_ context.Context, name string, member economy.Member) economy.Response {
	if r, off := e.BanksUnsupported(decimal.Zero); off {
		return r
	}
	if member == nil {
		return economy.Fail(decimal.Zero, decimal.Zero, economy.ErrNilMember)
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	b, ok := e.banks[name]
	if !ok {
		return economy.Fail(decimal.Zero, decimal.Zero, economy.ErrBankNotFound)
	}
	b.members[member.ID()] = struct{}{}
	return economy.Succeed(decimal.Zero, b.balance)
}

func (e *Economy) GetBanks(_ context.Context) []string {
	if !e.HasBankSupport() {
		return []string{}
	}
	e.mu.RLock()
	defer e.mu.RUnlock()

	names := make([]string, 0, len(e.banks))
	for name := range e.banks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
