package economy

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// NoRounding 表示後端不對金額做四捨五入
const NoRounding = -1

var printer = message.NewPrinter(language.English)

// Currency 描述後端使用的貨幣，提供四捨五入與格式化
type Currency struct {
	Singular         string // 單數名稱，例如 "coin"
	Plural           string // 複數名稱，例如 "coins"
	Symbol           string // 貨幣符號，例如 "$"；設定後格式化時不再附加名稱
	FractionalDigits int    // 保留的小數位數，NoRounding 表示不四捨五入
}

// Round 依 FractionalDigits 對金額四捨五入
func (c Currency) Round(amount decimal.Decimal) decimal.Decimal {
	if c.FractionalDigits < 0 {
		return amount
	}
	return amount.Round(int32(c.FractionalDigits))
}

// Name 依金額回傳單數或複數名稱 (金額恰為 1 時使用單數)
func (c Currency) Name(amount decimal.Decimal) string {
	if amount.Abs().Equal(decimal.NewFromInt(1)) {
		return c.Singular
	}
	return c.Plural
}

// Format 將金額格式化為含千分位的字串，例如 "$1,234.50" 或 "1,234 coins"
func (c Currency) Format(amount decimal.Decimal) string {
	a := c.Round(amount)
	sign := ""
	if a.IsNegative() {
		sign = "-"
		a = a.Abs()
	}

	digits := c.FractionalDigits
	if digits < 0 {
		digits = max(0, -int(a.Exponent()))
	}
	intPart, frac, _ := strings.Cut(a.StringFixed(int32(digits)), ".")

	grouped := intPart
	if n, err := strconv.ParseInt(intPart, 10, 64); err == nil {
		grouped = printer.Sprintf("%d", n)
	}

	var b strings.Builder
	b.WriteString(sign)
	b.WriteString(c.Symbol)
	b.WriteString(grouped)
	if frac != "" {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	if c.Symbol == "" {
		if name := c.Name(a); name != "" {
			b.WriteByte(' ')
			b.WriteString(name)
		}
	}
	return b.String()
}
