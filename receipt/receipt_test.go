package receipt

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/progressivemobile/acquiring/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type defaulted struct {
	kind string
	code string
}

func collect(out *[]defaulted) DefaultFunc {
	return func(kind, code string) {
		*out = append(*out, defaulted{kind, code})
	}
}

func TestParsePaymentRequest(t *testing.T) {
	data := []byte(`{
		"orderId": "order-42",
		"amount": 150000,
		"title": "Подписка",
		"description": "Годовая подписка",
		"email": "buyer@example.com",
		"receipt": {
			"email": "buyer@example.com",
			"taxation": "usn_income",
			"items": [
				{"name": "Подписка", "price": 100000, "quantity": 1, "tax": "vat20"},
				{"name": "Доставка", "price": 25000, "quantity": 2, "amount": 50000, "tax": "non"}
			]
		}
	}`)

	var got []defaulted
	req, err := ParsePaymentRequest(data, collect(&got))
	require.NoError(t, err)
	assert.Empty(t, got)

	assert.Equal(t, "order-42", req.OrderID)
	assert.Equal(t, int64(150000), req.Amount)
	require.NotNil(t, req.Receipt)
	assert.Equal(t, types.TaxationUSNIncome, req.Receipt.Taxation)
	require.Len(t, req.Receipt.Items, 2)

	first := req.Receipt.Items[0]
	assert.Equal(t, types.TaxVat20, first.Tax)
	assert.Equal(t, int64(100000), first.Amount)
	assert.True(t, first.Quantity.Equal(decimal.NewFromInt(1)))

	second := req.Receipt.Items[1]
	assert.Equal(t, types.TaxNone, second.Tax)
	assert.Equal(t, int64(50000), second.Amount)
}

func TestParsePaymentRequestDefaults(t *testing.T) {
	data := []byte(`{
		"orderId": "o-1",
		"amount": 5000,
		"receipt": {
			"taxation": "simplified",
			"items": [
				{"name": "Кофе", "price": 10000, "quantity": "0.5", "tax": "VAT20"},
				{"name": "Сахар", "price": 0}
			]
		}
	}`)

	var got []defaulted
	req, err := ParsePaymentRequest(data, collect(&got))
	require.NoError(t, err)

	assert.Equal(t, types.TaxationOSN, req.Receipt.Taxation)
	assert.Equal(t, types.TaxNone, req.Receipt.Items[0].Tax)
	assert.Equal(t, int64(5000), req.Receipt.Items[0].Amount)
	assert.Equal(t, types.TaxNone, req.Receipt.Items[1].Tax)
	assert.True(t, req.Receipt.Items[1].Quantity.Equal(decimal.NewFromInt(1)))

	// absent codes are not reported, unknown ones are
	assert.Equal(t, []defaulted{
		{KindTaxation, "simplified"},
		{KindTax, "VAT20"},
	}, got)
}

func TestParsePaymentRequestWithoutReceipt(t *testing.T) {
	req, err := ParsePaymentRequest([]byte(`{"orderId":"o-2","amount":100}`), nil)
	require.NoError(t, err)
	assert.Nil(t, req.Receipt)
}

func TestParsePaymentRequestRejectsOverflowingTotal(t *testing.T) {
	data := []byte(fmt.Sprintf(`{
		"orderId": "o-ovf",
		"amount": 100,
		"receipt": {"items": [
			{"name": "a", "price": %[1]d, "amount": %[1]d},
			{"name": "b", "price": %[1]d, "amount": %[1]d},
			{"name": "c", "price": 102, "amount": 102}
		]}
	}`, int64(math.MaxInt64)))

	_, err := ParsePaymentRequest(data, nil)
	require.Error(t, err)

	var aerr *types.AcquiringError
	require.True(t, errors.As(err, &aerr))
	assert.Equal(t, types.ErrInvalidRequest, aerr.Code)
	assert.Contains(t, aerr.Message, "does not match payment amount 100")
}

func TestParsePaymentRequestRejectsOverflowingLine(t *testing.T) {
	data := []byte(fmt.Sprintf(`{
		"orderId": "o-line",
		"amount": 100,
		"receipt": {"items": [{"name": "a", "price": %d, "quantity": 2}]}
	}`, int64(math.MaxInt64)))

	_, err := ParsePaymentRequest(data, nil)
	require.Error(t, err)

	var aerr *types.AcquiringError
	require.True(t, errors.As(err, &aerr))
	assert.Equal(t, types.ErrInvalidRequest, aerr.Code)
	assert.Contains(t, aerr.Message, "items[0]")
}

func TestParsePaymentRequestErrors(t *testing.T) {
	cases := map[string]string{
		"malformed json":    `{"orderId":`,
		"missing order id":  `{"amount":100}`,
		"zero amount":       `{"orderId":"o","amount":0}`,
		"bad email":         `{"orderId":"o","amount":100,"email":"nope"}`,
		"empty items":       `{"orderId":"o","amount":100,"receipt":{"items":[]}}`,
		"item without name": `{"orderId":"o","amount":100,"receipt":{"items":[{"price":100}]}}`,
		"zero quantity":     `{"orderId":"o","amount":100,"receipt":{"items":[{"name":"x","price":100,"quantity":0}]}}`,
		"negative price":    `{"orderId":"o","amount":100,"receipt":{"items":[{"name":"x","price":-100,"amount":100}]}}`,
		"total mismatch":    `{"orderId":"o","amount":100,"receipt":{"items":[{"name":"x","price":90}]}}`,
		"huge quantity":     `{"orderId":"o","amount":100,"receipt":{"items":[{"name":"x","price":100,"quantity":"1e900000000"}]}}`,
	}

	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParsePaymentRequest([]byte(input), nil)
			require.Error(t, err)

			var aerr *types.AcquiringError
			require.True(t, errors.As(err, &aerr))
			assert.Equal(t, types.ErrInvalidRequest, aerr.Code)
		})
	}
}
