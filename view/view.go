// Package view assembles the configuration of the SDK payment screen.
package view

import (
	"github.com/progressivemobile/acquiring/format"
	"github.com/progressivemobile/acquiring/types"
)

const (
	paymentTitle  = "Оплата"
	amountPrefix  = "на сумму "
	titleFontSize = 22
	bodyFontSize  = 17
	noteFontSize  = 13
	noteColor     = "#9299A2"
)

// Input is what the plugin passes when it opens the payment screen.
// Amount is in minor currency units.
type Input struct {
	Title       string
	Description string
	Amount      int64
	EnableSPB   bool
	Email       string
}

// Options are bridge-wide display settings
type Options struct {
	Language       string
	CurrencySymbol string
	FractionDigits int
	// ShowSPBButton allows the "pay with SBP" field when the request asks for it
	ShowSPBButton bool
}

// DefaultOptions matches the SDK defaults: Russian, rubles, two fraction digits
func DefaultOptions() Options {
	return Options{
		Language:       types.DefaultLanguage,
		CurrencySymbol: types.DefaultCurrencySymbol,
		FractionDigits: types.DefaultFractionDigits,
	}
}

// Build returns the screen configuration: an amount header followed by the
// purchase details.
func Build(in Input, opts Options) types.ViewConfiguration {
	amount := format.MinorUnits(in.Amount, opts.FractionDigits, opts.CurrencySymbol)

	fields := []types.InfoField{
		{
			Kind: types.FieldAmount,
			Title: []types.StyledText{
				{Text: paymentTitle, Style: types.TextStyle{FontSize: titleFontSize, Bold: true}},
			},
			Amount: []types.StyledText{
				{Text: amountPrefix + amount, Style: types.TextStyle{FontSize: bodyFontSize}},
			},
		},
		{
			Kind: types.FieldDetail,
			Title: []types.StyledText{
				{Text: in.Title + "\n", Style: types.TextStyle{FontSize: bodyFontSize}},
				{Text: in.Description, Style: types.TextStyle{FontSize: noteFontSize, Color: noteColor}},
			},
		},
	}

	if in.EnableSPB && opts.ShowSPBButton {
		fields = append(fields, types.InfoField{Kind: types.FieldButtonSPB})
	}

	return types.ViewConfiguration{
		ViewTitle:       paymentTitle,
		Fields:          fields,
		Email:           in.Email,
		LocalizableInfo: types.NewLocalizableInfo(opts.Language),
	}
}
