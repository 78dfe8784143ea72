package mysql

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account 成員帳戶；Grouped 為 false 時是全域帳戶，GroupID 固定為 0
type Account struct {
	ID         uint64          `gorm:"primaryKey;autoIncrement"`
	MemberID   int64           `gorm:"not null;uniqueIndex:idx_account_scope"`
	GroupID    int64           `gorm:"not null;uniqueIndex:idx_account_scope"`
	Grouped    bool            `gorm:"not null;uniqueIndex:idx_account_scope"`
	MemberName string          `gorm:"size:128;index"`
	Balance    decimal.Decimal `gorm:"type:decimal(30,8);not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (Account) TableName() string { return "economy_accounts" }

// Bank 銀行
type Bank struct {
	ID        uint64          `gorm:"primaryKey;autoIncrement"`
	UID       string          `gorm:"column:uid;size:36;not null;uniqueIndex"` // 每次建立都不同，刪除後同名重建不會沿用
	Name      string          `gorm:"size:128;not null;uniqueIndex"`
	OwnerID   int64           `gorm:"not null"`
	Balance   decimal.Decimal `gorm:"type:decimal(30,8);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Bank) TableName() string { return "economy_banks" }

// BankMember 銀行成員 (擁有者也是成員)
type BankMember struct {
	BankID    uint64 `gorm:"primaryKey"`
	MemberID  int64  `gorm:"primaryKey"`
	CreatedAt time.Time
}

func (BankMember) TableName() string { return "economy_bank_members" }

// TransactionKind 異動種類
type TransactionKind string

const (
	KindDeposit      TransactionKind = "deposit"
	KindWithdraw     TransactionKind = "withdraw"
	KindBankDeposit  TransactionKind = "bank_deposit"
	KindBankWithdraw TransactionKind = "bank_withdraw"
)

// Transaction 每筆成功異動的流水帳，與餘額更新在同一個資料庫交易內寫入
type Transaction struct {
	ID           string          `gorm:"primaryKey;size:36"`
	Kind         TransactionKind `gorm:"size:32;not null"`
	MemberID     int64           `gorm:"index:idx_tx_account"`
	GroupID      int64           `gorm:"index:idx_tx_account"`
	Grouped      bool            `gorm:"index:idx_tx_account"`
	BankUID      string          `gorm:"column:bank_uid;size:36;not null;default:'';index"` // 空字串表示成員帳戶異動
	BankName     string          `gorm:"size:128"`
	Amount       decimal.Decimal `gorm:"type:decimal(30,8);not null"`
	BalanceAfter decimal.Decimal `gorm:"type:decimal(30,8);not null"`
	CreatedAt    time.Time       `gorm:"index"`
}

func (Transaction) TableName() string { return "economy_transactions" }
