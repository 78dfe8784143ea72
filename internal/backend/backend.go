// Package backend holds the plumbing shared by the bundled economy backends:
// their options, introspection answers, amount normalization and scope fallback.
package backend

import (
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-economy/pkg/economy"
)

// Options configures a bundled backend.
type Options struct {
	Name            string
	Enabled         bool
	BankSupport     bool
	GroupAccounts   bool            // per-group sub-accounts; when false group calls use the global account
	StartingBalance decimal.Decimal // balance of an account that has never been written
	Currency        economy.Currency
}

// DefaultOptions enables everything with a two-digit "coin" currency.
func DefaultOptions(name string) Options {
	return Options{
		Name:          name,
		Enabled:       true,
		BankSupport:   true,
		GroupAccounts: true,
		Currency: economy.Currency{
			Singular:         "coin",
			Plural:           "coins",
			FractionalDigits: 2,
		},
	}
}

// Scope addresses either the global account (Grouped == false) or a group sub-account.
type Scope struct {
	GroupID int64
	Grouped bool
}

// Global is the member's single global account.
var Global = Scope{}

// Base answers the introspection half of economy.Economy and is embedded by every backend.
type Base struct {
	opts   Options
	logger *slog.Logger
}

func NewBase(opts Options, logger *slog.Logger) Base {
	if logger == nil {
		logger = slog.Default()
	}
	return Base{
		opts:   opts,
		logger: logger.With("economy", opts.Name),
	}
}

func (b Base) IsEnabled() bool { return b.opts.Enabled }

func (b Base) Name() string { return b.opts.Name }

func (b Base) HasBankSupport() bool { return b.opts.BankSupport }

func (b Base) FractionalDigits() int { return b.opts.Currency.FractionalDigits }

func (b Base) Format(amount decimal.Decimal) string { return b.opts.Currency.Format(amount) }

func (b Base) CurrencyNamePlural() string { return b.opts.Currency.Plural }

func (b Base) CurrencyNameSingular() string { return b.opts.Currency.Singular }

// GroupAccounts reports whether group sub-accounts are kept apart from the global account.
func (b Base) GroupAccounts() bool { return b.opts.GroupAccounts }

func (b Base) StartingBalance() decimal.Decimal { return b.opts.StartingBalance }

func (b Base) Logger() *slog.Logger { return b.logger }

// GroupScope resolves a group id to the scope actually used, falling back to Global
// when group accounts are disabled.
func (b Base) GroupScope(groupID int64) Scope {
	if !b.opts.GroupAccounts {
		return Global
	}
	return Scope{GroupID: groupID, Grouped: true}
}

// Normalize rejects negative amounts and rounds to the currency's fractional digits.
func (b Base) Normalize(amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.IsNegative() {
		return amount, economy.ErrNegativeAmount
	}
	return b.opts.Currency.Round(amount), nil
}

// SystemFailure logs a storage fault and turns it into a Failure response so it
// never crosses the contract as a Go error.
func (b Base) SystemFailure(op string, amount, balance decimal.Decimal, err error) economy.Response {
	b.logger.Error("economy operation failed", "op", op, "error", err)
	return economy.Fail(amount, balance, fmt.Errorf("%s: %w", op, err))
}

// BanksUnsupported returns the NotImplemented response bank calls must give when
// the bank subsystem is off.
func (b Base) BanksUnsupported(amount decimal.Decimal) (economy.Response, bool) {
	if b.opts.BankSupport {
		return economy.Response{}, false
	}
	return economy.NotImplementedResponse(amount), true
}
