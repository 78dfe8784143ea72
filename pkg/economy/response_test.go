package economy_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/JoeShih716/go-economy/pkg/economy"
)

func TestResponse_TransactionSuccess(t *testing.T) {
	tests := []struct {
		name string
		typ  economy.ResponseType
		want bool
	}{
		{name: "success", typ: economy.Success, want: true},
		{name: "failure", typ: economy.Failure, want: false},
		{name: "not implemented", typ: economy.NotImplemented, want: false},
		{name: "zero value", typ: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := economy.NewResponse(decimal.NewFromInt(5), decimal.NewFromInt(10), tt.typ, "")
			assert.Equal(t, tt.want, r.TransactionSuccess())
		})
	}
}

func TestResponse_Accessors(t *testing.T) {
	r := economy.NewResponse(decimal.NewFromInt(5), decimal.NewFromInt(10), economy.Failure, "boom")

	assert.True(t, r.Amount().Equal(decimal.NewFromInt(5)))
	assert.True(t, r.Balance().Equal(decimal.NewFromInt(10)))
	assert.Equal(t, economy.Failure, r.Type())
	assert.Equal(t, "boom", r.ErrorMessage())
}

func TestResponse_Validate(t *testing.T) {
	one := decimal.NewFromInt(1)

	assert.NoError(t, economy.Succeed(one, one).Validate())
	assert.NoError(t, economy.Fail(one, one, economy.ErrInsufficientFunds).Validate())
	assert.NoError(t, economy.NotImplementedResponse(one).Validate())

	invalid := []economy.Response{
		economy.NewResponse(one, one, economy.Failure, ""),
		economy.NewResponse(one, one, economy.Success, "should be empty"),
		economy.NewResponse(one, one, economy.NotImplemented, "should be empty"),
		economy.NewResponse(one, one, 0, ""),
	}
	for _, r := range invalid {
		assert.ErrorIs(t, r.Validate(), economy.ErrInvalidResponse, r.String())
	}
}

func TestFail_NilErrorStillCarriesMessage(t *testing.T) {
	r := economy.Fail(decimal.Zero, decimal.Zero, nil)
	assert.Equal(t, economy.Failure, r.Type())
	assert.NotEmpty(t, r.ErrorMessage())
}

func TestResponse_Err(t *testing.T) {
	one := decimal.NewFromInt(1)

	assert.NoError(t, economy.Succeed(one, one).Err())
	assert.ErrorIs(t, economy.NotImplementedResponse(one).Err(), economy.ErrNotImplemented)
	assert.ErrorIs(t, economy.Fail(one, one, economy.ErrBankNotFound).Err(), economy.ErrBankNotFound)

	custom := economy.Fail(one, one, errors.New("disk on fire")).Err()
	assert.EqualError(t, custom, "disk on fire")
	assert.False(t, errors.Is(custom, economy.ErrInsufficientFunds))
}

func TestResponseType_String(t *testing.T) {
	assert.Equal(t, "SUCCESS", economy.Success.String())
	assert.Equal(t, "FAILURE", economy.Failure.String())
	assert.Equal(t, "NOT_IMPLEMENTED", economy.NotImplemented.String())
	assert.Equal(t, "ResponseType(9)", economy.ResponseType(9).String())
}
