// Package redis 提供以 Redis 儲存的經濟後端。
//
// 帳戶餘額以十進位字串存放，所有異動透過 WATCH/MULTI 樂觀交易完成，
// 多個程序共用同一個 Redis 時也能序列化同一帳戶或銀行的並行異動。
package redis

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strconv"

	goredis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-economy/internal/backend"
	"github.com/JoeShih716/go-economy/pkg/economy"
	pkgRedis "github.com/JoeShih716/go-economy/pkg/redis"
)

const (
	// DefaultPrefix 所有鍵的預設前綴
	DefaultPrefix = "economy"

	// Key Pattern: {prefix}:account:{MemberID} -> 全域餘額
	KeyAccount = "%s:account:%d"
	// Key Pattern: {prefix}:account:{MemberID}:group:{GroupID} -> 群組餘額
	KeyGroupAccount = "%s:account:%d:group:%d"
	// Key Pattern: {prefix}:names -> Hash(成員名稱 -> 成員 ID)
	KeyNames = "%s:names"
	// Key Pattern: {prefix}:bank:{Name} -> Hash(owner, balance)
	KeyBank = "%s:bank:%s"
	// Key Pattern: {prefix}:bankmembers:{Name} -> Set of MemberID
	// 與 KeyBank 分屬不同命名空間，任何銀行名稱都不會對應到另一家銀行的鍵
	KeyBankMembers = "%s:bankmembers:%s"
	// Key Pattern: {prefix}:banks -> Set of bank names
	KeyBanks = "%s:banks"

	fieldOwner   = "owner"
	fieldBalance = "balance"
)

var _ economy.Economy = (*Economy)(nil)

// Economy Redis 後端
type Economy struct {
	backend.Base
	rds    *pkgRedis.Client
	prefix string
}

// New 建立 Redis 後端，prefix 為空時使用 DefaultPrefix
func New(rds *pkgRedis.Client, prefix string, opts backend.Options, logger *slog.Logger) *Economy {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Economy{
		Base:   backend.NewBase(opts, logger),
		rds:    rds,
		prefix: prefix,
	}
}

func (e *Economy) accountKey(memberID int64, scope backend.Scope) string {
	if scope.Grouped {
		return fmt.Sprintf(KeyGroupAccount, e.prefix, memberID, scope.GroupID)
	}
	return fmt.Sprintf(KeyAccount, e.prefix, memberID)
}

func (e *Economy) namesKey() string { return fmt.Sprintf(KeyNames, e.prefix) }

func (e *Economy) bankKey(name string) string { return fmt.Sprintf(KeyBank, e.prefix, name) }

func (e *Economy) bankMembersKey(name string) string {
	return fmt.Sprintf(KeyBankMembers, e.prefix, name)
}

func (e *Economy) banksKey() string { return fmt.Sprintf(KeyBanks, e.prefix) }

// parseBalance 將儲存的字串轉回金額；鍵不存在時回傳起始餘額
func (e *Economy) parseBalance(val string, err error) (decimal.Decimal, bool, error) {
	if pkgRedis.IsNil(err) {
		return e.StartingBalance(), false, nil
	}
	if err != nil {
		return decimal.Zero, false, err
	}
	d, err := decimal.NewFromString(val)
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("corrupt balance %q: %w", val, err)
	}
	return d, true, nil
}

// ---------------------------------------------------------
// Accounts
// ---------------------------------------------------------

// HasAccountByName implements economy.Economy.
//
// Deprecated: use HasAccount.
func (e *Economy) HasAccountByName(ctx context.Context, memberName string) bool {
	val, err := e.rds.HGet(ctx, e.namesKey(), memberName)
	if err != nil {
		if !pkgRedis.IsNil(err) {
			e.Logger().Error("lookup member by name failed", "name", memberName, "error", err)
		}
		return false
	}
	id, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		e.Logger().Error("corrupt member id", "name", memberName, "value", val)
		return false
	}
	return e.HasAccount(ctx, economy.NewMember(id, memberName))
}

func (e *Economy) HasAccount(ctx context.Context, member economy.Member) bool {
	return e.hasAccount(ctx, member, backend.Global)
}

func (e *Economy) HasGroupAccount(ctx context.Context, member economy.Member, groupID int64) bool {
	return e.hasAccount(ctx, member, e.GroupScope(groupID))
}

func (e *Economy) hasAccount(ctx context.Context, member economy.Member, scope backend.Scope) bool {
	if member == nil {
		return false
	}
	ok, err := e.rds.Exists(ctx, e.accountKey(member.ID(), scope))
	if err != nil {
		e.Logger().Error("has account failed", "member_id", member.ID(), "error", err)
		return false
	}
	return ok
}

func (e *Economy) GetBalance(ctx context.Context, member economy.Member) decimal.Decimal {
	return e.balance(ctx, member, backend.Global)
}

func (e *Economy) GetGroupBalance(ctx context.Context, member economy.Member, groupID int64) decimal.Decimal {
	return e.balance(ctx, member, e.GroupScope(groupID))
}

func (e *Economy) balance(ctx context.Context, member economy.Member, scope backend.Scope) decimal.Decimal {
	if member == nil {
		return decimal.Zero
	}
	bal, _, err := e.parseBalance(e.rds.Get(ctx, e.accountKey(member.ID(), scope)))
	if err != nil {
		e.Logger().Error("get balance failed", "member_id", member.ID(), "error", err)
		return decimal.Zero
	}
	return bal
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

func (e *Economy) CreatePlayerAccount(ctx context.Context, member economy.Member) bool {
	return e.create(ctx, member, backend.Global)
}

func (e *Economy) CreateGroupPlayerAccount(ctx context.Context, member economy.Member, groupID int64) bool {
	// 不支援群組帳戶時不退回全域帳戶
	if !e.GroupAccounts() {
		return false
	}
	return e.create(ctx, member, e.GroupScope(groupID))
}

func (e *Economy) create(ctx context.Context, member economy.Member, scope backend.Scope) bool {
	if member == nil {
		return false
	}
	key := e.accountKey(member.ID(), scope)
	created := false
	err := e.rds.Atomic(ctx, func(tx *goredis.Tx) error {
		created = false
		n, err := tx.Exists(ctx, key).Result()
		if err != nil {
			return err
		}
		if n > 0 {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.Set(ctx, key, e.StartingBalance().String(), 0)
			e.rememberName(ctx, pipe, member)
			return nil
		})
		if err != nil {
			return err
		}
		created = true
		return nil
	}, key)
	if err != nil {
		e.Logger().Error("create account failed", "member_id", member.ID(), "error", err)
		return false
	}
	return created
}

func (e *Economy) rememberName(ctx context.Context, pipe goredis.Pipeliner, member economy.Member) {
	if name := member.Name(); name != "" {
		pipe.HSet(ctx, e.namesKey(), name, member.ID())
	}
}

// ---------------------------------------------------------
// Mutations
// ---------------------------------------------------------

func (e *Economy) WithdrawMember(ctx context.Context, member economy.Member, amount decimal.Decimal) economy.Response {
	return e.apply(ctx, member, backend.Global, amount, true)
}

func (e *Economy) WithdrawGroupMember(ctx context.Context, member economy.Member, groupID int64, amount decimal.Decimal) economy.Response {
	return e.apply(ctx, member, e.GroupScope(groupID), amount, true)
}

func (e *Economy) DepositMember(ctx context.Context, member economy.Member, amount decimal.Decimal) economy.Response {
	return e.apply(ctx, member, backend.Global, amount, false)
}

func (e *Economy) DepositGroupMember(ctx context.Context, member economy.Member, groupID int64, amount decimal.Decimal) economy.Response {
	return e.apply(ctx, member, e.GroupScope(groupID), amount, false)
}

// apply 在樂觀交易內讀取餘額、檢查並寫回
func (e *Economy) apply(ctx context.Context, member economy.Member, scope backend.Scope, amount decimal.Decimal, withdraw bool) economy.Response {
	if member == nil {
		return economy.Fail(amount, decimal.Zero, economy.ErrNilMember)
	}
	key := e.accountKey(member.ID(), scope)
	amt, amountErr := e.Normalize(amount)

	var resp economy.Response
	err := e.rds.Atomic(ctx, func(tx *goredis.Tx) error {
		current, _, err := e.parseBalance(tx.Get(ctx, key).Result())
		if err != nil {
			return err
		}
		if amountErr != nil {
			resp = economy.Fail(amount, current, amountErr)
			return nil
		}

		next := current.Add(amt)
		if withdraw {
			if current.LessThan(amt) {
				resp = economy.Fail(amount, current, economy.ErrInsufficientFunds)
				return nil
			}
			next = current.Sub(amt)
		}

		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.Set(ctx, key, next.String(), 0)
			e.rememberName(ctx, pipe, member)
			return nil
		})
		if err != nil {
			return err
		}
		resp = economy.Succeed(amount, next)
		return nil
	}, key)
	if err != nil {
		op := "deposit"
		if withdraw {
			op = "withdraw"
		}
		return e.SystemFailure(op, amount, decimal.Zero, err)
	}
	return resp
}

// ---------------------------------------------------------
// Banks
// ---------------------------------------------------------

func (e *Economy) CreateBank(ctx context.Context, name string, owner economy.Member) economy.Response {
	if r, off := e.BanksUnsupported(decimal.Zero); off {
		return r
	}
	if owner == nil {
		return economy.Fail(decimal.Zero, decimal.Zero, economy.ErrNilMember)
	}
	if name == "" {
		return economy.Fail(decimal.Zero, decimal.Zero, economy.ErrInvalidBankName)
	}

	key := e.bankKey(name)
	var resp economy.Response
	err := e.rds.Atomic(ctx, func(tx *goredis.Tx) error {
		n, err := tx.Exists(ctx, key).Result()
		if err != nil {
			return err
		}
		if n > 0 {
			resp = economy.Fail(decimal.Zero, decimal.Zero, economy.ErrBankExists)
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.HSet(ctx, key, fieldOwner, owner.ID(), fieldBalance, "0")
			pipe.SAdd(ctx, e.bankMembersKey(name), owner.ID())
			pipe.SAdd(ctx, e.banksKey(), name)
			return nil
		})
		if err != nil {
			return err
		}
		resp = economy.Succeed(decimal.Zero, decimal.Zero)
		return nil
	}, key)
	if err != nil {
		return e.SystemFailure("create bank", decimal.Zero, decimal.Zero, err)
	}
	return resp
}

func (e *Economy) DeleteBank(ctx context.Context, name string) economy.Response {
	if r, off := e.BanksUnsupported(decimal.Zero); off {
		return r
	}

	key := e.bankKey(name)
	var resp economy.Response
	err := e.rds.Atomic(ctx, func(tx *goredis.Tx) error {
		n, err := tx.Exists(ctx, key).Result()
		if err != nil {
			return err
		}
		if n == 0 {
			resp = economy.Fail(decimal.Zero, decimal.Zero, economy.ErrBankNotFound)
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.Del(ctx, key, e.bankMembersKey(name))
			pipe.SRem(ctx, e.banksKey(), name)
			return nil
		})
		if err != nil {
			return err
		}
		resp = economy.Succeed(decimal.Zero, decimal.Zero)
		return nil
	}, key)
	if err != nil {
		return e.SystemFailure("delete bank", decimal.Zero, decimal.Zero, err)
	}
	return resp
}

// bankBalance 讀取銀行餘額，銀行不存在時 found 為 false
func (e *Economy) bankBalance(val string, err error) (decimal.Decimal, bool, error) {
	if pkgRedis.IsNil(err) {
		return decimal.Zero, false, nil
	}
	if err != nil {
		return decimal.Zero, false, err
	}
	d, err := decimal.NewFromString(val)
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("corrupt bank balance %q: %w", val, err)
	}
	return d, true, nil
}

func (e *Economy) BankBalance(ctx context.Context, name string) economy.Response {
	if r, off := e.BanksUnsupported(decimal.Zero); off {
		return r
	}
	bal, found, err := e.bankBalance(e.rds.HGet(ctx, e.bankKey(name), fieldBalance))
	if err != nil {
		return e.SystemFailure("bank balance", decimal.Zero, decimal.Zero, err)
	}
	if !found {
		return economy.Fail(decimal.Zero, decimal.Zero, economy.ErrBankNotFound)
	}
	return economy.Succeed(decimal.Zero, bal)
}

func (e *Economy) BankHas(ctx context.Context, name string, amount decimal.Decimal) economy.Response {
	if r, off := e.BanksUnsupported(amount); off {
		return r
	}
	bal, found, err := e.bankBalance(e.rds.HGet(ctx, e.bankKey(name), fieldBalance))
	if err != nil {
		return e.SystemFailure("bank has", amount, decimal.Zero, err)
	}
	switch {
	case !found:
		return economy.Fail(amount, decimal.Zero, economy.ErrBankNotFound)
	case amount.IsNegative():
		return economy.Fail(amount, bal, economy.ErrNegativeAmount)
	case bal.LessThan(amount):
		return economy.Fail(amount, bal, economy.ErrInsufficientFunds)
	}
	return economy.Succeed(amount, bal)
}

func (e *Economy) BankWithdraw(ctx context.Context, name string, amount decimal.Decimal) economy.Response {
	if r, off := e.BanksUnsupported(amount); off {
		return r
	}
	return e.applyBank(ctx, name, amount, true)
}

func (e *Economy) BankDeposit(ctx context.Context, name string, amount decimal.Decimal) economy.Response {
	if r, off := e.BanksUnsupported(amount); off {
		return r
	}
	return e.applyBank(ctx, name, amount, false)
}

func (e *Economy) applyBank(ctx context.Context, name string, amount decimal.Decimal, withdraw bool) economy.Response {
	key := e.bankKey(name)
	amt, amountErr := e.Normalize(amount)

	var resp economy.Response
	err := e.rds.Atomic(ctx, func(tx *goredis.Tx) error {
		current, found, err := e.bankBalance(tx.HGet(ctx, key, fieldBalance).Result())
		if err != nil {
			return err
		}
		if !found {
			resp = economy.Fail(amount, decimal.Zero, economy.ErrBankNotFound)
			return nil
		}
		if amountErr != nil {
			resp = economy.Fail(amount, current, amountErr)
			return nil
		}

		next := current.Add(amt)
		if withdraw {
			if current.LessThan(amt) {
				resp = economy.Fail(amount, current, economy.ErrInsufficientFunds)
				return nil
			}
			next = current.Sub(amt)
		}

		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.HSet(ctx, key, fieldBalance, next.String())
			return nil
		})
		if err != nil {
			return err
		}
		resp = economy.Succeed(amount, next)
		return nil
	}, key)
	if err != nil {
		op := "bank deposit"
		if withdraw {
			op = "bank withdraw"
		}
		return e.SystemFailure(op, amount, decimal.Zero, err)
	}
	return resp
}

func (e *Economy) IsBankOwner(ctx context.Context, name string, member economy.Member) economy.Response {
	if r, off := e.BanksUnsupported(decimal.Zero); off {
		return r
	}
	vals, err := e.rds.HMGet(ctx, e.bankKey(name), fieldOwner, fieldBalance)
	if err != nil {
		return e.SystemFailure("is bank owner", decimal.Zero, decimal.Zero, err)
	}
	owner, bal, found, err := parseBankFields(vals)
	if err != nil {
		return e.SystemFailure("is bank owner", decimal.Zero, decimal.Zero, err)
	}
	if !found {
		return economy.Fail(decimal.Zero, decimal.Zero, economy.ErrBankNotFound)
	}
	if member == nil {
		return economy.Fail(decimal.Zero, bal, economy.ErrNilMember)
	}
	if owner != strconv.FormatInt(member.ID(), 10) {
		return economy.Fail(decimal.Zero, bal, economy.ErrNotBankOwner)
	}
	return economy.Succeed(decimal.Zero, bal)
}

func (e *Economy) IsBankMember(ctx context.Context, name string, member economy.Member) economy.Response {
	if r, off := e.BanksUnsupported(decimal.Zero); off {
		return r
	}
	vals, err := e.rds.HMGet(ctx, e.bankKey(name), fieldOwner, fieldBalance)
	if err != nil {
		return e.SystemFailure("is bank member", decimal.Zero, decimal.Zero, err)
	}
	_, bal, found, err := parseBankFields(vals)
	if err != nil {
		return e.SystemFailure("is bank member", decimal.Zero, decimal.Zero, err)
	}
	if !found {
		return economy.Fail(decimal.Zero, decimal.Zero, economy.ErrBankNotFound)
	}
	if member == nil {
		return economy.Fail(decimal.Zero, bal, economy.ErrNilMember)
	}
	ok, err := e.rds.SIsMember(ctx, e.bankMembersKey(name), member.ID())
	if err != nil {
		return e.SystemFailure("is bank member", decimal.Zero, bal, err)
	}
	if !ok {
		return economy.Fail(decimal.Zero, bal, economy.ErrNotBankMember)
	}
	return economy.Succeed(decimal.Zero, bal)
}

// parseBankFields 解析 HMGET owner balance 的結果
func parseBankFields(vals []any) (string, decimal.Decimal, bool, error) {
	if len(vals) != 2 || vals[0] == nil {
		return "", decimal.Zero, false, nil
	}
	owner, _ := vals[0].(string)
	raw, _ := vals[1].(string)
	balance, err := decimal.NewFromString(raw)
	if err != nil {
		return "", decimal.Zero, false, fmt.Errorf("corrupt bank balance %q: %w", raw, err)
	}
	return owner, balance, true, nil
}

// AddBankMember 將成員加入銀行；不屬於 economy.Economy 契約，由宿主管理指令使用
func (e *Economy) AddBankMember(ctx context.Context, name string, member economy.Member) economy.Response {
	if r, off := e.BanksUnsupported(decimal.Zero); off {
		return r
	}
	if member == nil {
		return economy.Fail(decimal.Zero, decimal.Zero, economy.ErrNilMember)
	}

	key := e.bankKey(name)
	var resp economy.Response
	err := e.rds.Atomic(ctx, func(tx *goredis.Tx) error {
		bal, found, err := e.bankBalance(tx.HGet(ctx, key, fieldBalance).Result())
		if err != nil {
			return err
		}
		if !found {
			resp = economy.Fail(decimal.Zero, decimal.Zero, economy.ErrBankNotFound)
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.SAdd(ctx, e.bankMembersKey(name), member.ID())
			return nil
		})
		if err != nil {
			return err
		}
		resp = economy.Succeed(decimal.Zero, bal)
		return nil
	}, key)
	if err != nil {
		return e.SystemFailure("add bank member", decimal.Zero, decimal.Zero, err)
	}
	return resp
}

func (e *Economy) GetBanks(ctx context.Context) []string {
	if !e.HasBankSupport() {
		return []string{}
	}
	names, err := e.rds.SMembers(ctx, e.banksKey())
	if err != nil {
		e.Logger().Error("list banks failed", "error", err)
		return []string{}
	}
	if names == nil {
		names = []string{}
	}
	sort.Strings(names)
	return names
}
