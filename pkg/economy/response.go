package economy

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ResponseType 表示一次經濟操作的結果種類
type ResponseType int

const (
	// Success 操作完整套用
	Success ResponseType = iota + 1
	// Failure 領域層級的失敗 (例如餘額不足、銀行不存在)，ErrorMessage 必定有值
	Failure
	// NotImplemented 後端不支援此操作 (例如沒有銀行子系統)，不應視為錯誤告警
	NotImplemented
)

func (t ResponseType) String() string {
	switch t {
	case Success:
		return "SUCCESS"
	case Failure:
		return "FAILURE"
	case NotImplemented:
		return "NOT_IMPLEMENTED"
	default:
		return fmt.Sprintf("ResponseType(%d)", int(t))
	}
}

// Response 是一次操作的回執 (receipt)，建立後不可變。
//
// 不變式: Type 為 Failure 時 ErrorMessage 必須有意義；
// Success 與 NotImplemented 時 ErrorMessage 為空字串。
type Response struct {
	amount       decimal.Decimal
	balance      decimal.Decimal
	typ          ResponseType
	errorMessage string
}

// NewResponse 建立一個回執，不做任何驗證。
// 不變式由產生回執的後端負責；後端應優先使用 Succeed / Fail / NotImplementedResponse。
//
// 參數:
//
//	amount: decimal.Decimal - 呼叫端要求的金額 (失敗時不代表實際移動的金額)
//	balance: decimal.Decimal - 操作後的餘額；無法得知時回傳操作前的餘額
//	typ: ResponseType - 結果種類
//	errorMessage: string - 僅在 Failure 時有值
func NewResponse(amount, balance decimal.Decimal, typ ResponseType, errorMessage string) Response {
	return Response{
		amount:       amount,
		balance:      balance,
		typ:          typ,
		errorMessage: errorMessage,
	}
}

// Succeed 建立成功的回執
func Succeed(amount, balance decimal.Decimal) Response {
	return NewResponse(amount, balance, Success, "")
}

// Fail 建立失敗的回執，ErrorMessage 取自 err。
// err 為 nil 時使用通用訊息，確保 Failure 一定帶有訊息。
func Fail(amount, balance decimal.Decimal, err error) Response {
	msg := "economy operation failed"
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	return NewResponse(amount, balance, Failure, msg)
}

// NotImplementedResponse 建立「後端不支援此操作」的回執
func NotImplementedResponse(amount decimal.Decimal) Response {
	return NewResponse(amount, decimal.Zero, NotImplemented, "")
}

// Amount 呼叫端要求的金額
func (r Response) Amount() decimal.Decimal { return r.amount }

// Balance 操作後的帳戶餘額
func (r Response) Balance() decimal.Decimal { return r.balance }

// Type 結果種類
func (r Response) Type() ResponseType { return r.typ }

// ErrorMessage 失敗原因，僅在 Failure 時有值
func (r Response) ErrorMessage() string { return r.errorMessage }

// TransactionSuccess 回報操作是否成功 (Type == Success)。
// IsBankOwner / IsBankMember 的答案也透過此方法取得。
func (r Response) TransactionSuccess() bool {
	return r.typ == Success
}

// Validate 檢查回執是否符合不變式
func (r Response) Validate() error {
	switch r.typ {
	case Success, NotImplemented:
		if r.errorMessage != "" {
			return fmt.Errorf("%w: %s response carries error message %q", ErrInvalidResponse, r.typ, r.errorMessage)
		}
	case Failure:
		if r.errorMessage == "" {
			return fmt.Errorf("%w: failure without error message", ErrInvalidResponse)
		}
	default:
		return fmt.Errorf("%w: unknown type %s", ErrInvalidResponse, r.typ)
	}
	return nil
}

// Err 將回執轉換為 Go error。
//
// 回傳值:
//
//	error: Success 時為 nil；NotImplemented 時為 ErrNotImplemented；
//	       Failure 時為帶有 ErrorMessage 的錯誤，若訊息對應已知的領域錯誤則可用 errors.Is 判斷
func (r Response) Err() error {
	switch r.typ {
	case Success:
		return nil
	case NotImplemented:
		return ErrNotImplemented
	}
	for _, target := range domainErrors {
		if r.errorMessage == target.Error() {
			return target
		}
	}
	if r.errorMessage == "" {
		return errors.New("economy operation failed")
	}
	return errors.New(r.errorMessage)
}

func (r Response) String() string {
	if r.errorMessage != "" {
		return fmt.Sprintf("%s amount=%s balance=%s error=%q", r.typ, r.amount, r.balance, r.errorMessage)
	}
	return fmt.Sprintf("%s amount=%s balance=%s", r.typ, r.amount, r.balance)
}
