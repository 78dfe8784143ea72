// Package mysql 提供以關聯式資料庫 (gorm) 儲存的經濟後端。
//
// 每次異動都在一個資料庫交易中完成: 以 SELECT ... FOR UPDATE 鎖定帳戶或銀行列、
// 檢查、更新餘額並寫入一筆流水帳。領域錯誤 (餘額不足、銀行不存在等) 會讓交易回滾，
// 因此失敗的操作不會留下任何痕跡 (包括自動建立的帳戶)。
package mysql

import (
	"context"
	"errors"
	"log/slog"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/JoeShih716/go-economy/internal/backend"
	"github.com/JoeShih716/go-economy/pkg/economy"
	mysqlpkg "github.com/JoeShih716/go-economy/pkg/mysql"
)

var _ economy.Economy = (*Economy)(nil)

// domainErrors 會回滾交易並以原訊息回報，其他錯誤一律視為系統錯誤
var domainErrors = []error{
	economy.ErrInsufficientFunds,
	economy.ErrNegativeAmount,
	economy.ErrBankExists,
	economy.ErrBankNotFound,
}

func isDomainErr(err error) bool {
	for _, target := range domainErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// Economy gorm 後端
type Economy struct {
	backend.Base
	client *mysqlpkg.Client
}

// New 建立 gorm 後端，不會自動建表，請先呼叫 Migrate
func New(client *mysqlpkg.Client, opts backend.Options, logger *slog.Logger) *Economy {
	return &Economy{
		Base:   backend.NewBase(opts, logger),
		client: client,
	}
}

// Migrate 建立或更新資料表
func (e *Economy) Migrate(ctx context.Context) error {
	return e.db(ctx).AutoMigrate(&Account{}, &Bank{}, &BankMember{}, &Transaction{})
}

func (e *Economy) db(ctx context.Context) *gorm.DB {
	return e.client.DB().WithContext(ctx)
}

func scopeWhere(db *gorm.DB, memberID int64, scope backend.Scope) *gorm.DB {
	return db.Where("member_id = ? AND group_id = ? AND grouped = ?", memberID, scope.GroupID, scope.Grouped)
}

// History 回傳成員在指定範圍最近的流水帳，新的在前
func (e *Economy) History(ctx context.Context, member economy.Member, scope backend.Scope, limit int) ([]Transaction, error) {
	if member == nil {
		return nil, economy.ErrNilMember
	}
	var txs []Transaction
	q := scopeWhere(e.db(ctx).Model(&Transaction{}), member.ID(), scope).
		Where("bank_uid = ?", "").
		Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}

// BankHistory 回傳目前同名銀行最近的流水帳，新的在前；已刪除的同名銀行不列入
func (e *Economy) BankHistory(ctx context.Context, name string, limit int) ([]Transaction, error) {
	db := e.db(ctx)
	b, err := e.findBank(db, name)
	if err != nil {
		return nil, err
	}
	var txs []Transaction
	q := db.Where("bank_uid = ?", b.UID).Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}

// journal 以 UUIDv7 作為主鍵，主鍵順序即寫入順序
func journal(tx *gorm.DB, entry Transaction) error {
	id, err := uuid.NewV7()
	if err != nil {
		return err
	}
	entry.ID = id.String()
	return tx.Create(&entry).Error
}

// ---------------------------------------------------------
// Accounts
// ---------------------------------------------------------

// HasAccountByName implements economy.Economy.
//
// Deprecated: use HasAccount.
func (e *Economy) HasAccountByName(ctx context.Context, memberName string) bool {
	var ids []int64
	err := e.db(ctx).Model(&Account{}).
		Where("member_name = ?", memberName).
		Limit(1).
		Pluck("member_id", &ids).Error
	if err != nil {
		e.Logger().Warn("resolve member name failed", "name", memberName, "error", err)
		return false
	}
	if len(ids) == 0 {
		return false
	}
	return e.HasAccount(ctx, economy.NewMember(ids[0], memberName))
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
	var n int64
	if err := scopeWhere(e.db(ctx).Model(&Account{}), member.ID(), scope).Count(&n).Error; err != nil {
		e.Logger().Warn("account lookup failed", "member", member.ID(), "error", err)
		return false
	}
	return n > 0
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
	var acct Account
	err := scopeWhere(e.db(ctx), member.ID(), scope).Take(&acct).Error
	switch {
	case err == nil:
		return acct.Balance
	case errors.Is(err, gorm.ErrRecordNotFound):
		return e.StartingBalance()
	default:
		e.Logger().Warn("balance lookup failed", "member", member.ID(), "error", err)
		return decimal.Zero
	}
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
	if !e.GroupAccounts() {
		return false
	}
	return e.create(ctx, member, e.GroupScope(groupID))
}

func (e *Economy) create(ctx context.Context, member economy.Member, scope backend.Scope) bool {
	if member == nil {
		return false
	}
	res := e.db(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(e.newAccount(member, scope))
	if res.Error != nil {
		e.Logger().Warn("create account failed", "member", member.ID(), "error", res.Error)
		return false
	}
	return res.RowsAffected == 1
}

func (e *Economy) newAccount(member economy.Member, scope backend.Scope) *Account {
	return &Account{
		MemberID:   member.ID(),
		GroupID:    scope.GroupID,
		Grouped:    scope.Grouped,
		MemberName: member.Name(),
		Balance:    e.StartingBalance(),
	}
}

// lockAccount 在交易內取得或建立帳戶並鎖定該列
func (e *Economy) lockAccount(tx *gorm.DB, member economy.Member, scope backend.Scope) (Account, error) {
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(e.newAccount(member, scope)).Error; err != nil {
		return Account{}, err
	}
	var acct Account
	err := scopeWhere(tx.Clauses(clause.Locking{Strength: "UPDATE"}), member.ID(), scope).Take(&acct).Error
	return acct, err
}

// ---------------------------------------------------------
// Mutations
// ---------------------------------------------------------

func (e *Economy) WithdrawMember(ctx context.Context, member economy.Member, amount decimal.Decimal) economy.Response {
	return e.apply(ctx, member, backend.Global, amount, KindWithdraw)
}

func (e *Economy) WithdrawGroupMember(ctx context.Context, member economy.Member, groupID int64, amount decimal.Decimal) economy.Response {
	return e.apply(ctx, member, e.GroupScope(groupID), amount, KindWithdraw)
}

func (e *Economy) DepositMember(ctx context.Context, member economy.Member, amount decimal.Decimal) economy.Response {
	return e.apply(ctx, member, backend.Global, amount, KindDeposit)
}

func (e *Economy) DepositGroupMember(ctx context.Context, member economy.Member, groupID int64, amount decimal.Decimal) economy.Response {
	return e.apply(ctx, member, e.GroupScope(groupID), amount, KindDeposit)
}

func (e *Economy) apply(ctx context.Context, member economy.Member, scope backend.Scope, amount decimal.Decimal, kind TransactionKind) economy.Response {
	if member == nil {
		return economy.Fail(amount, decimal.Zero, economy.ErrNilMember)
	}
	amt, amountErr := e.Normalize(amount)

	var balance decimal.Decimal
	err := e.db(ctx).Transaction(func(tx *gorm.DB) error {
		acct, err := e.lockAccount(tx, member, scope)
		if err != nil {
			return err
		}
		balance = acct.Balance
		if amountErr != nil {
			return amountErr
		}

		next := acct.Balance.Add(amt)
		if kind == KindWithdraw {
			if acct.Balance.LessThan(amt) {
				return economy.ErrInsufficientFunds
			}
			next = acct.Balance.Sub(amt)
		}

		err = tx.Model(&Account{}).Where("id = ?", acct.ID).Updates(map[string]any{
			"balance":     next,
			"member_name": member.Name(),
		}).Error
		if err != nil {
			return err
		}
		balance = next

		return journal(tx, Transaction{
			Kind:         kind,
			MemberID:     member.ID(),
			GroupID:      scope.GroupID,
			Grouped:      scope.Grouped,
			Amount:       amt,
			BalanceAfter: next,
		})
	})
	if err != nil {
		if isDomainErr(err) {
			return economy.Fail(amount, balance, err)
		}
		return e.SystemFailure(string(kind), amount, balance, err)
	}
	return economy.Succeed(amount, balance)
}

// ---------------------------------------------------------
// Banks
// ---------------------------------------------------------

func (e *Economy) findBank(db *gorm.DB, name string) (Bank, error) {
	var b Bank
	err := db.Where("name = ?", name).Take(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return b, economy.ErrBankNotFound
	}
	return b, err
}

func (e *Economy) lockBank(tx *gorm.DB, name string) (Bank, error) {
	return e.findBank(tx.Clauses(clause.Locking{Strength: "UPDATE"}), name)
}

// bankResult 把 findBank 的錯誤轉成回應；ok 為 false 時呼叫端直接回傳 r
func (e *Economy) bankResult(op string, amount decimal.Decimal, err error) (economy.Response, bool) {
	if err == nil {
		return economy.Response{}, true
	}
	if isDomainErr(err) {
		return economy.Fail(amount, decimal.Zero, err), false
	}
	return e.SystemFailure(op, amount, decimal.Zero, err), false
}

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

	err := e.db(ctx).Transaction(func(tx *gorm.DB) error {
		b := Bank{UID: uuid.NewString(), Name: name, OwnerID: owner.ID(), Balance: decimal.Zero}
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&b)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return economy.ErrBankExists
		}
		return tx.Create(&BankMember{BankID: b.ID, MemberID: owner.ID()}).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		err = economy.ErrBankExists
	}
	if r, ok := e.bankResult("create bank", decimal.Zero, err); !ok {
		return r
	}
	return economy.Succeed(decimal.Zero, decimal.Zero)
}

func (e *Economy) DeleteBank(ctx context.Context, name string) economy.Response {
	if r, off := e.BanksUnsupported(decimal.Zero); off {
		return r
	}
	err := e.db(ctx).Transaction(func(tx *gorm.DB) error {
		b, err := e.lockBank(tx, name)
		if err != nil {
			return err
		}
		if err := tx.Where("bank_id = ?", b.ID).Delete(&BankMember{}).Error; err != nil {
			return err
		}
		return tx.Delete(&Bank{}, b.ID).Error
	})
	if r, ok := e.bankResult("delete bank", decimal.Zero, err); !ok {
		return r
	}
	return economy.Succeed(decimal.Zero, decimal.Zero)
}

func (e *Economy) BankBalance(ctx context.Context, name string) economy.Response {
	if r, off := e.BanksUnsupported(decimal.Zero); off {
		return r
	}
	b, err := e.findBank(e.db(ctx), name)
	if r, ok := e.bankResult("bank balance", decimal.Zero, err); !ok {
		return r
	}
	return economy.Succeed(decimal.Zero, b.Balance)
}

func (e *Economy) BankHas(ctx context.Context, name string, amount decimal.Decimal) economy.Response {
	if r, off := e.BanksUnsupported(amount); off {
		return r
	}
	b, err := e.findBank(e.db(ctx), name)
	if r, ok := e.bankResult("bank has", amount, err); !ok {
		return r
	}
	if amount.IsNegative() {
		return economy.Fail(amount, b.Balance, economy.ErrNegativeAmount)
	}
	if b.Balance.LessThan(amount) {
		return economy.Fail(amount, b.Balance, economy.ErrInsufficientFunds)
	}
	return economy.Succeed(amount, b.Balance)
}

func (e *Economy) BankWithdraw(ctx context.Context, name string, amount decimal.Decimal) economy.Response {
	return e.applyBank(ctx, name, amount, KindBankWithdraw)
}

func (e *Economy) BankDeposit(ctx context.Context, name string, amount decimal.Decimal) economy.Response {
	return e.applyBank(ctx, name, amount, KindBankDeposit)
}

func (e *Economy) applyBank(ctx context.Context, name string, amount decimal.Decimal, kind TransactionKind) economy.Response {
	if r, off := e.BanksUnsupported(amount); off {
		return r
	}
	amt, amountErr := e.Normalize(amount)

	var balance decimal.Decimal
	err := e.db(ctx).Transaction(func(tx *gorm.DB) error {
		b, err := e.lockBank(tx, name)
		if err != nil {
			return err
		}
		balance = b.Balance
		if amountErr != nil {
			return amountErr
		}

		next := b.Balance.Add(amt)
		if kind == KindBankWithdraw {
			if b.Balance.LessThan(amt) {
				return economy.ErrInsufficientFunds
			}
			next = b.Balance.Sub(amt)
		}
		if err := tx.Model(&Bank{}).Where("id = ?", b.ID).Update("balance", next).Error; err != nil {
			return err
		}
		balance = next

		return journal(tx, Transaction{
			Kind:         kind,
			BankUID:      b.UID,
			BankName:     name,
			Amount:       amt,
			BalanceAfter: next,
		})
	})
	if err != nil {
		if isDomainErr(err) {
			return economy.Fail(amount, balance, err)
		}
		return e.SystemFailure(string(kind), amount, balance, err)
	}
	return economy.Succeed(amount, balance)
}

func (e *Economy) IsBankOwner(ctx context.Context, name string, member economy.Member) economy.Response {
	if r, off := e.BanksUnsupported(decimal.Zero); off {
		return r
	}
	b, err := e.findBank(e.db(ctx), name)
	if r, ok := e.bankResult("bank owner", decimal.Zero, err); !ok {
		return r
	}
	if member == nil {
		return economy.Fail(decimal.Zero, b.Balance, economy.ErrNilMember)
	}
	if b.OwnerID != member.ID() {
		return economy.Fail(decimal.Zero, b.Balance, economy.ErrNotBankOwner)
	}
	return economy.Succeed(decimal.Zero, b.Balance)
}

func (e *Economy) IsBankMember(ctx context.Context, name string, member economy.Member) economy.Response {
	if r, off := e.BanksUnsupported(decimal.Zero); off {
		return r
	}
	db := e.db(ctx)
	b, err := e.findBank(db, name)
	if r, ok := e.bankResult("bank member", decimal.Zero, err); !ok {
		return r
	}
	if member == nil {
		return economy.Fail(decimal.Zero, b.Balance, economy.ErrNilMember)
	}
	var n int64
	err = db.Model(&BankMember{}).Where("bank_id = ? AND member_id = ?", b.ID, member.ID()).Count(&n).Error
	if err != nil {
		return e.SystemFailure("bank member", decimal.Zero, b.Balance, err)
	}
	if n == 0 {
		return economy.Fail(decimal.Zero, b.Balance, economy.ErrNotBankMember)
	}
	return economy.Succeed(decimal.Zero, b.Balance)
}

// AddBankMember 將成員加入銀行；不屬於 economy.Economy 契約，由宿主管理指令使用
func (e *Economy) AddBankMember(ctx context.Context, name string, member economy.Member) economy.Response {
	if r, off := e.BanksUnsupported(decimal.Zero); off {
		return r
	}
	if member == nil {
		return economy.Fail(decimal.Zero, decimal.Zero, economy.ErrNilMember)
	}
	var balance decimal.Decimal
	err := e.db(ctx).Transaction(func(tx *gorm.DB) error {
		b, err := e.lockBank(tx, name)
		if err != nil {
			return err
		}
		balance = b.Balance
		return tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&BankMember{BankID: b.ID, MemberID: member.ID()}).Error
	})
	if r, ok := e.bankResult("add bank member", decimal.Zero, err); !ok {
		return r
	}
	return economy.Succeed(decimal.Zero, balance)
}

func (e *Economy) GetBanks(ctx context.Context) []string {
	names := []string{}
	if !e.HasBankSupport() {
		return names
	}
	if err := e.db(ctx).Model(&Bank{}).Pluck("name", &names).Error; err != nil {
		e.Logger().Warn("list banks failed", "error", err)
		return []string{}
	}
	if names == nil {
		names = []string{}
	}
	// 依位元組排序，不受資料庫定序影響
	sort.Strings(names)
	return names
}
