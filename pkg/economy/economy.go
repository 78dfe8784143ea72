// Package economy 定義供聊天機器人插件共用的經濟服務契約。
//
// 任何經濟插件 (後端) 只要實作 Economy 介面，其他插件即可在不知道具體實作的情況下
// 查詢與異動成員餘額，或使用選配的銀行子系統。
//
// 錯誤分為兩個通道:
//   - 領域結果 (餘額不足、銀行不存在、不支援) 透過 Response 的 Type 與 ErrorMessage 回報，不以 error 回傳。
//   - 布林查詢 (IsEnabled、HasAccount、Has、HasBankSupport) 只回報述詞結果，沒有 NotImplemented 的空間，
//     呼叫端需先檢查 IsEnabled / HasBankSupport。
//
// 後端的系統錯誤 (儲存 I/O、狀態損毀) 應以 Failure 回報，不應跨越介面邊界。
package economy

import (
	"context"

	"github.com/shopspring/decimal"
)

// Economy 是經濟後端必須實作的完整能力介面。
//
// 每個回傳 bool 的查詢必須是純讀取、沒有副作用；每個異動操作對呼叫端而言必須是原子的:
// 完整套用並回傳 Success，或完全不套用並回傳 Failure / NotImplemented。
// 對同一帳戶或銀行的並行異動必須序列化，不得遺失更新。
//
// 帶有 groupID 的方法操作成員在指定群組的子帳戶；
// 若後端不支援群組帳戶，除 CreateGroupPlayerAccount 外皆透明地退回全域帳戶。
//
//go:generate mockgen -destination=../../test/mocks/economy/mock_economy.go -package=mock_economy github.com/JoeShih716/go-economy/pkg/economy Economy
type Economy interface {
	// IsEnabled 後端目前是否啟用、是否應被使用
	IsEnabled() bool

	// Name 後端名稱，用於診斷與介面顯示
	Name() string

	// HasBankSupport 後端是否實作銀行操作；為 false 時所有銀行操作回傳 NotImplemented
	HasBankSupport() bool

	// FractionalDigits 後端儲存金額時四捨五入到的小數位數，不做四捨五入時回傳 -1
	FractionalDigits() int

	// Format 將金額格式化為後端特定、人類可讀的貨幣字串
	Format(amount decimal.Decimal) string

	// CurrencyNamePlural 貨幣的複數名稱，沒有命名貨幣時回傳空字串
	CurrencyNamePlural() string

	// CurrencyNameSingular 貨幣的單數名稱，沒有命名貨幣時回傳空字串
	CurrencyNameSingular() string

	// HasAccountByName 以成員名稱檢查帳戶是否存在。
	//
	// Deprecated: 名稱不是穩定的識別，請改用 HasAccount。
	// 實作需以名稱解析出 Member 後轉呼叫 HasAccount，語意完全相同。
	HasAccountByName(ctx context.Context, memberName string) bool

	// HasAccount 檢查成員是否有全域帳戶。
	// 後端會在第一次觀察到成員時自動建立帳戶，呼叫端不需要事先建立。
	HasAccount(ctx context.Context, member Member) bool

	// HasGroupAccount 檢查成員在指定群組是否有帳戶；不支援群組帳戶時退回 HasAccount
	HasGroupAccount(ctx context.Context, member Member, groupID int64) bool

	// GetBalance 取得成員的全域餘額
	GetBalance(ctx context.Context, member Member) decimal.Decimal

	// GetGroupBalance 取得成員在指定群組的餘額；不支援群組帳戶時回傳全域餘額
	GetGroupBalance(ctx context.Context, member Member, groupID int64) decimal.Decimal

	// Has 餘額是否 >= amount。amount 不可為負數
	Has(ctx context.Context, member Member, amount decimal.Decimal) bool

	// GroupHas 群組餘額是否 >= amount；不支援群組帳戶時檢查全域餘額。amount 不可為負數
	GroupHas(ctx context.Context, member Member, groupID int64, amount decimal.Decimal) bool

	// WithdrawMember 從成員扣款，餘額不足時失敗。amount 不可為負數
	WithdrawMember(ctx context.Context, member Member, amount decimal.Decimal) Response

	// WithdrawGroupMember 從成員的群組帳戶扣款；不支援群組帳戶時扣全域帳戶
	WithdrawGroupMember(ctx context.Context, member Member, groupID int64, amount decimal.Decimal) Response

	// DepositMember 向成員存款。amount 不可為負數
	DepositMember(ctx context.Context, member Member, amount decimal.Decimal) Response

	// DepositGroupMember 向成員的群組帳戶存款；不支援群組帳戶時存入全域帳戶
	DepositGroupMember(ctx context.Context, member Member, groupID int64, amount decimal.Decimal) Response

	// CreateBank 建立由 owner 擁有的銀行，名稱已存在時失敗
	CreateBank(ctx context.Context, name string, owner Member) Response

	// DeleteBank 刪除銀行，不存在時失敗
	DeleteBank(ctx context.Context, name string) Response

	// BankBalance 查詢銀行餘額，結果在 Response.Balance()
	BankBalance(ctx context.Context, name string) Response

	// BankHas 銀行餘額是否 >= amount，答案為 Response.TransactionSuccess()
	BankHas(ctx context.Context, name string, amount decimal.Decimal) Response

	// BankWithdraw 從銀行扣款
	BankWithdraw(ctx context.Context, name string, amount decimal.Decimal) Response

	// BankDeposit 向銀行存款
	BankDeposit(ctx context.Context, name string, amount decimal.Decimal) Response

	// IsBankOwner 成員是否為銀行擁有者，答案為 Response.TransactionSuccess()。
	// Failure 時以 ErrorMessage 區分「不是擁有者」與「銀行不存在」
	IsBankOwner(ctx context.Context, name string, member Member) Response

	// IsBankMember 成員是否為銀行成員，語意同 IsBankOwner
	IsBankMember(ctx context.Context, name string, member Member) Response

	// GetBanks 所有銀行名稱 (依名稱排序)，沒有或不支援時回傳空切片
	GetBanks(ctx context.Context) []string

	// CreatePlayerAccount 主動建立成員帳戶，回傳是否建立成功 (已存在也可能回傳 false)
	CreatePlayerAccount(ctx context.Context, member Member) bool

	// CreateGroupPlayerAccount 建立成員在指定群組的帳戶。
	// 不支援群組帳戶的後端一律回傳 false，不退回全域帳戶。
	CreateGroupPlayerAccount(ctx context.Context, member Member, groupID int64) bool
}
