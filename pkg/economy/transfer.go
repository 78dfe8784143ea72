package economy

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// Transfer 在兩名成員之間轉帳: 先從 from 扣款，再存入 to。
// 存款失敗時會把款項退回 from。成功時回執的 Balance 為 from 扣款後的餘額。
//
// 參數:
//
//	ctx: context.Context - 上下文
//	eco: Economy - 使用中的經濟後端
//	from: Member - 付款成員
//	to: Member - 收款成員
//	amount: decimal.Decimal - 轉帳金額 (不可為負數)
//
// 回傳值:
//
//	Response: 轉帳結果；扣款階段的失敗原樣回傳
func Transfer(ctx context.Context, eco Economy, from, to Member, amount decimal.Decimal) Response {
	if amount.IsNegative() {
		return Fail(amount, decimal.Zero, ErrNegativeAmount)
	}
	if from == nil || to == nil {
		return Fail(amount, decimal.Zero, ErrNilMember)
	}
	if !eco.IsEnabled() {
		return Fail(amount, decimal.Zero, ErrEconomyDisabled)
	}

	withdrawn := eco.WithdrawMember(ctx, from, amount)
	if !withdrawn.TransactionSuccess() {
		return withdrawn
	}

	deposited := eco.DepositMember(ctx, to, amount)
	if deposited.TransactionSuccess() {
		return Succeed(amount, withdrawn.Balance())
	}

	reason := deposited.ErrorMessage()
	if reason == "" {
		reason = deposited.Type().String()
	}
	refund := eco.DepositMember(ctx, from, amount)
	if !refund.TransactionSuccess() {
		return Fail(amount, withdrawn.Balance(), fmt.Errorf("transfer to %d failed (%s) and refund failed: %s", to.ID(), reason, refund.ErrorMessage()))
	}
	return Fail(amount, refund.Balance(), fmt.Errorf("transfer to %d failed: %s", to.ID(), reason))
}
