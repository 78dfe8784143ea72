package economy

import (
	"context"

	"github.com/shopspring/decimal"
)

// NoBanks 可嵌入到沒有銀行子系統的後端，
// 讓所有銀行操作回傳 NotImplemented、GetBanks 回傳空切片。
// 嵌入者的 HasBankSupport 應回傳 false。
type NoBanks struct{}

func (NoBanks) CreateBank(context.Context, string, Member) Response {
	return NotImplementedResponse(decimal.Zero)
}

func (NoBanks) DeleteBank(context.Context, string) Response {
	return NotImplementedResponse(decimal.Zero)
}

func (NoBanks) BankBalance(context.Context, string) Response {
	return NotImplementedResponse(decimal.Zero)
}

func (NoBanks) BankHas(_ context.Context, _ string, amount decimal.Decimal) Response {
	return NotImplementedResponse(amount)
}

func (NoBanks) BankWithdraw(_ context.Context, _ string, amount decimal.Decimal) Response {
	return NotImplementedResponse(amount)
}

func (NoBanks) BankDeposit(_ context.Context, _ string, amount decimal.Decimal) Response {
	return NotImplementedResponse(amount)
}

func (NoBanks) IsBankOwner(context.Context, string, Member) Response {
	return NotImplementedResponse(decimal.Zero)
}

func (NoBanks) IsBankMember(context.Context, string, Member) Response {
	return NotImplementedResponse(decimal.Zero)
}

func (NoBanks) GetBanks(context.Context) []string {
	return []string{}
}
