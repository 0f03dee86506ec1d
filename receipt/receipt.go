// Package receipt decodes payment requests sent by the plugin layer into the
// acquiring SDK request model.
package receipt

import (
	"encoding/json"
	"fmt"

	"github.com/progressivemobile/acquiring/types"
	"github.com/progressivemobile/acquiring/utils"
	"github.com/shopspring/decimal"
)

// Kinds of codes reported to a DefaultFunc
const (
	KindTax      = "tax"
	KindTaxation = "taxation"
)

// DefaultFunc is called for every non-empty code that was not recognised and
// was replaced by the default value.
type DefaultFunc func(kind, code string)

type rawItem struct {
	Name     string           `json:"name"`
	Price    int64            `json:"price"`
	Quantity *decimal.Decimal `json:"quantity"`
	Amount   *int64           `json:"amount"`
	Tax      *string          `json:"tax"`
}

type rawReceipt struct {
	Email    string    `json:"email"`
	Phone    string    `json:"phone"`
	Taxation *string   `json:"taxation"`
	Items    []rawItem `json:"items"`
}

type rawRequest struct {
	OrderID     string      `json:"orderId"`
	Amount      int64       `json:"amount"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	CustomerKey string      `json:"customerKey"`
	Email       string      `json:"email"`
	EnableSPB   bool        `json:"enableSPB"`
	Receipt     *rawReceipt `json:"receipt"`
}

// ParsePaymentRequest decodes and validates a plugin payment request.
// Unknown tax and taxation codes never fail the request: they resolve to
// the SDK defaults and are reported through onDefault, which may be nil.
func ParsePaymentRequest(data []byte, onDefault DefaultFunc) (*types.PaymentRequest, error) {
	var raw rawRequest
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &types.AcquiringError{
			Code:    types.ErrInvalidRequest,
			Message: fmt.Sprintf("failed to parse payment request: %v", err),
		}
	}

	if onDefault == nil {
		onDefault = func(string, string) {}
	}

	req := &types.PaymentRequest{
		OrderID:     raw.OrderID,
		Amount:      raw.Amount,
		Title:       raw.Title,
		Description: raw.Description,
		CustomerKey: raw.CustomerKey,
		Email:       raw.Email,
		EnableSPB:   raw.EnableSPB,
	}

	if raw.Receipt != nil {
		r, err := buildReceipt(raw.Receipt, onDefault)
		if err != nil {
			return nil, err
		}
		req.Receipt = r
	}

	if err := utils.ValidateStruct(req); err != nil {
		return nil, &types.AcquiringError{
			Code:    types.ErrInvalidRequest,
			Message: fmt.Sprintf("validation failed: %s", utils.ValidationMessage(err)),
		}
	}

	if req.Receipt != nil {
		if total := req.Receipt.Total(); !total.Equal(decimal.NewFromInt(req.Amount)) {
			return nil, &types.AcquiringError{
				Code:    types.ErrInvalidRequest,
				Message: fmt.Sprintf("receipt total %s does not match payment amount %d", total.String(), req.Amount),
			}
		}
	}

	return req, nil
}

func buildReceipt(raw *rawReceipt, onDefault DefaultFunc) (*types.Receipt, error) {
	r := &types.Receipt{
		Email:    raw.Email,
		Phone:    raw.Phone,
		Taxation: resolveTaxation(raw.Taxation, onDefault),
		Items:    make([]types.ReceiptItem, 0, len(raw.Items)),
	}

	for i, it := range raw.Items {
		quantity := decimal.NewFromInt(1)
		if it.Quantity != nil {
			quantity = *it.Quantity
		}
		if err := utils.ValidateQuantity(quantity); err != nil {
			return nil, &types.AcquiringError{
				Code:    types.ErrInvalidRequest,
				Message: fmt.Sprintf("items[%d]: %v", i, err),
			}
		}

		var amount int64
		if it.Amount != nil {
			amount = *it.Amount
		} else {
			line, err := utils.LineAmount(it.Price, quantity)
			if err != nil {
				return nil, &types.AcquiringError{
					Code:    types.ErrInvalidRequest,
					Message: fmt.Sprintf("items[%d]: %v", i, err),
				}
			}
			amount = line
		}

		r.Items = append(r.Items, types.ReceiptItem{
			Name:     it.Name,
			Price:    it.Price,
			Quantity: quantity,
			Amount:   amount,
			Tax:      resolveTax(it.Tax, onDefault),
		})
	}

	return r, nil
}

func resolveTax(code *string, onDefault DefaultFunc) types.Tax {
	if code == nil || *code == "" {
		return types.DefaultTax
	}
	tax, ok := types.LookupTax(*code)
	if !ok {
		onDefault(KindTax, *code)
	}
	return tax
}

func resolveTaxation(code *string, onDefault DefaultFunc) types.Taxation {
	if code == nil || *code == "" {
		return types.DefaultTaxation
	}
	taxation, ok := types.LookupTaxation(*code)
	if !ok {
		onDefault(KindTaxation, *code)
	}
	return taxation
}
