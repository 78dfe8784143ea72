package economy

import "errors"

// 定義經濟契約層級的領域錯誤。
// 這些錯誤的 Error() 字串即為後端回傳 Response.ErrorMessage() 的內容，
// 呼叫端可用 errors.Is 搭配 Response.Err() 判斷。
var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrNegativeAmount    = errors.New("cannot use negative amounts")
	ErrNilMember         = errors.New("member is nil")
	ErrBankExists        = errors.New("bank already exists")
	ErrBankNotFound      = errors.New("bank does not exist")
	ErrInvalidBankName   = errors.New("bank name is empty")
	ErrNotBankOwner      = errors.New("member is not the bank owner")
	ErrNotBankMember     = errors.New("member is not a bank member")
	ErrEconomyDisabled   = errors.New("economy is disabled")
	ErrNotImplemented    = errors.New("operation not implemented by this economy")
	ErrInvalidResponse   = errors.New("invalid economy response")
)

// domainErrors 用於將 ErrorMessage 還原成對應的 sentinel error
var domainErrors = []error{
	ErrInsufficientFunds,
	ErrNegativeAmount,
	ErrNilMember,
	ErrBankExists,
	ErrBankNotFound,
	ErrInvalidBankName,
	ErrNotBankOwner,
	ErrNotBankMember,
	ErrEconomyDisabled,
}
