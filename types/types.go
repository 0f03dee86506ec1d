package types

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
)

// Default display settings of the payment screen
const (
	DefaultLanguage       = "ru"
	DefaultCurrencySymbol = "₽"
	DefaultFractionDigits = 2
)

// ReceiptItem is a single position of a fiscal receipt.
// Prices and amounts are in minor currency units.
type ReceiptItem struct {
	Name     string          `json:"name" validate:"required,max=128"`
	Price    int64           `json:"price" validate:"gte=0"`
	Quantity decimal.Decimal `json:"quantity"`
	Amount   int64           `json:"amount" validate:"gte=0"`
	Tax      Tax             `json:"tax"`
}

// Receipt is the fiscal receipt attached to a payment
type Receipt struct {
	Email    string        `json:"email,omitempty" validate:"omitempty,email"`
	Phone    string        `json:"phone,omitempty"`
	Taxation Taxation      `json:"taxation"`
	Items    []ReceiptItem `json:"items" validate:"required,min=1,dive"`
}

// Total sums the item amounts in minor units. The sum is exact, it does not
// wrap around int64.
func (r *Receipt) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range r.Items {
		total = total.Add(decimal.NewFromInt(it.Amount))
	}
	return total
}

// PaymentRequest is the SDK-side model of a payment started from the plugin.
// Amount is in minor currency units.
type PaymentRequest struct {
	OrderID     string   `json:"orderId" validate:"required,max=50"`
	Amount      int64    `json:"amount" validate:"gt=0"`
	Title       string   `json:"title"`
	Description string   `json:"description" validate:"max=250"`
	CustomerKey string   `json:"customerKey,omitempty"`
	Email       string   `json:"email,omitempty" validate:"omitempty,email"`
	EnableSPB   bool     `json:"enableSPB,omitempty"`
	Receipt     *Receipt `json:"receipt,omitempty"`
}

// LocalizableInfo selects the language of the SDK payment screens
type LocalizableInfo struct {
	Lang string `json:"lang"`
}

// NewLocalizableInfo normalises lang to a lowercase base language ("en-US" -> "en")
func NewLocalizableInfo(lang string) LocalizableInfo {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return LocalizableInfo{Lang: DefaultLanguage}
	}

	tag, err := language.Parse(lang)
	if err != nil {
		return LocalizableInfo{Lang: strings.ToLower(lang)}
	}

	base, _ := tag.Base()
	return LocalizableInfo{Lang: strings.ToLower(base.String())}
}

// FieldKind identifies an info field of the payment screen
type FieldKind string

const (
	FieldAmount    FieldKind = "amount"
	FieldDetail    FieldKind = "detail"
	FieldButtonSPB FieldKind = "buttonPaySPB"
)

// TextStyle describes how a text fragment is rendered
type TextStyle struct {
	FontSize float64 `json:"fontSize"`
	Bold     bool    `json:"bold,omitempty"`
	Color    string  `json:"color,omitempty"`
}

// StyledText is a run of text with a single style
type StyledText struct {
	Text  string    `json:"text"`
	Style TextStyle `json:"style"`
}

// InfoField is one block of the payment screen
type InfoField struct {
	Kind   FieldKind    `json:"kind"`
	Title  []StyledText `json:"title,omitempty"`
	Amount []StyledText `json:"amount,omitempty"`
}

// ViewConfiguration describes what the payment screen shows
type ViewConfiguration struct {
	ViewTitle       string          `json:"viewTitle"`
	Fields          []InfoField     `json:"fields"`
	Email           string          `json:"email,omitempty"`
	LocalizableInfo LocalizableInfo `json:"localizableInfo"`
}

// Config contains global configuration for the bridge
type Config struct {
	Language        string `json:"language,omitempty" envconfig:"LANGUAGE" default:"ru" validate:"omitempty,min=2,max=35"`
	CurrencySymbol  string `json:"currencySymbol,omitempty" envconfig:"CURRENCY_SYMBOL" default:"₽"`
	FractionDigits  int    `json:"fractionDigits,omitempty" envconfig:"FRACTION_DIGITS" default:"2" validate:"gte=0,lte=8"`
	LogLevel        string `json:"logLevel,omitempty" envconfig:"LOG_LEVEL" default:"info" validate:"omitempty,oneof=debug info warn error"`
	EnableMetrics   bool   `json:"enableMetrics,omitempty" envconfig:"ENABLE_METRICS"`
	EnableSPBButton bool   `json:"enableSPBButton,omitempty" envconfig:"ENABLE_SPB_BUTTON"`
}

// Error types
type AcquiringError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func (e AcquiringError) Error() string {
	return e.Message
}

// Common error codes
const (
	ErrInvalidRequest     = "INVALID_REQUEST"
	ErrConfigError        = "CONFIG_ERROR"
	ErrSerializationError = "SERIALIZATION_ERROR"
)
