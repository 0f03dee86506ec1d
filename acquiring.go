// Package acquiring bridges a cross-platform plugin layer to a native in-app
// acquiring SDK: it formats amounts for the payment screen, translates plugin
// tax codes into SDK values and assembles the payment screen configuration.
package acquiring

import (
	"fmt"
	"time"

	"github.com/progressivemobile/acquiring/config"
	"github.com/progressivemobile/acquiring/format"
	"github.com/progressivemobile/acquiring/logger"
	"github.com/progressivemobile/acquiring/metrics"
	"github.com/progressivemobile/acquiring/receipt"
	"github.com/progressivemobile/acquiring/types"
	"github.com/progressivemobile/acquiring/utils"
	"github.com/progressivemobile/acquiring/view"
	"github.com/shopspring/decimal"
)

// Bridge is the main struct that provides all bridge functionality.
// It is immutable after New and safe for concurrent use.
type Bridge struct {
	logger  logger.Logger
	metrics metrics.Recorder
	view    view.Options
}

// New creates a new Bridge with the given configuration. Fields of cfg are
// taken as given: a partial Config must set FractionDigits, otherwise amounts
// are shown without fraction digits. A nil cfg uses the defaults.
func New(cfg *types.Config, opts ...Option) *Bridge {
	b := &Bridge{
		logger:  logger.NoopLogger{},
		metrics: metrics.NoopRecorder{},
		view:    view.DefaultOptions(),
	}

	if cfg != nil {
		if cfg.Language != "" {
			b.view.Language = cfg.Language
		}
		if cfg.CurrencySymbol != "" {
			b.view.CurrencySymbol = cfg.CurrencySymbol
		}
		b.view.FractionDigits = cfg.FractionDigits
		b.view.ShowSPBButton = cfg.EnableSPBButton
	}

	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NewWithDefaults creates a new Bridge with default configuration
func NewWithDefaults() *Bridge {
	return New(&types.Config{
		Language:       types.DefaultLanguage,
		CurrencySymbol: types.DefaultCurrencySymbol,
		FractionDigits: types.DefaultFractionDigits,
		LogLevel:       "info",
	})
}

// NewFromEnv reads ACQUIRING_* variables and wires a zap logger and, when
// enabled, a Prometheus recorder on the default registry. opts are applied last.
func NewFromEnv(opts ...Option) (*Bridge, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log, err := logger.NewZapLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	base := []Option{WithLogger(log)}

	if cfg.EnableMetrics {
		rec, err := metrics.NewPrometheusRecorder(nil)
		if err != nil {
			return nil, err
		}
		base = append(base, WithMetrics(rec))
	}

	return New(cfg, append(base, opts...)...), nil
}

// Language returns the normalised language of the SDK screens
func (b *Bridge) Language() string {
	return types.NewLocalizableInfo(b.view.Language).Lang
}

// FormatAmount formats a major-unit amount with the bridge currency settings
func (b *Bridge) FormatAmount(value decimal.Decimal) string {
	return format.Amount(value, b.view.FractionDigits, b.view.CurrencySymbol)
}

// FormatMinorUnits formats an amount in kopecks/cents
func (b *Bridge) FormatMinorUnits(amount int64) string {
	return format.MinorUnits(amount, b.view.FractionDigits, b.view.CurrencySymbol)
}

// FormatAmountString formats a raw decimal string; non-numeric text is shown as is
func (b *Bridge) FormatAmountString(raw string) string {
	if _, err := utils.ValidateAmount(raw); err != nil {
		b.logger.Warn("invalid amount", map[string]any{"amount": raw, "error": err.Error()})
		b.metrics.IncCounter(metrics.EventAmountFallback, nil)
	}
	return format.AmountString(raw, b.view.FractionDigits, b.view.CurrencySymbol)
}

// ParseTax translates a plugin tax code. Unknown codes become TaxNone.
func (b *Bridge) ParseTax(code string) types.Tax {
	tax, ok := types.LookupTax(code)
	if !ok && code != "" {
		b.codeDefaulted(receipt.KindTax, code)
	}
	return tax
}

// ParseTaxation translates a plugin taxation code. Unknown codes become TaxationOSN.
func (b *Bridge) ParseTaxation(code string) types.Taxation {
	taxation, ok := types.LookupTaxation(code)
	if !ok && code != "" {
		b.codeDefaulted(receipt.KindTaxation, code)
	}
	return taxation
}

// ViewConfiguration builds the payment screen for a purchase
func (b *Bridge) ViewConfiguration(in view.Input) types.ViewConfiguration {
	return view.Build(in, b.view)
}

// ParsePaymentRequest decodes a plugin payment request into the SDK model
func (b *Bridge) ParsePaymentRequest(data []byte) (*types.PaymentRequest, error) {
	start := time.Now()
	defer func() {
		b.metrics.ObserveLatency("parse_payment_request", time.Since(start), nil)
	}()

	req, err := receipt.ParsePaymentRequest(data, b.codeDefaulted)
	if err != nil {
		b.logger.Warn("payment request rejected", map[string]any{"error": err.Error()})
		b.metrics.IncCounter(metrics.EventRequestInvalid, nil)
		return nil, err
	}

	b.logger.Debug("payment request parsed", map[string]any{
		"orderId": req.OrderID,
		"amount":  b.FormatMinorUnits(req.Amount),
	})
	return req, nil
}

// PrepareJSON renders v as indented JSON for the plugin channel
func (b *Bridge) PrepareJSON(v interface{}) (string, bool) {
	out, ok := utils.PrepareJSON(v)
	if !ok {
		b.logger.Error("failed to serialize plugin response", map[string]any{
			"code": types.ErrSerializationError,
			"type": fmt.Sprintf("%T", v),
		})
	}
	return out, ok
}

// unknown codes keep the checkout going but must stay visible
func (b *Bridge) codeDefaulted(kind, code string) {
	b.logger.Warn("unknown code replaced by default", map[string]any{"kind": kind, "code": code})
	b.metrics.IncCounter(metrics.EventCodeDefaulted, map[string]string{"kind": kind})
}

// Version information
const (
	Version = "1.0.0"
)

// GetVersion returns version information
func GetVersion() map[string]interface{} {
	taxes := make([]string, 0, len(types.AllTaxes()))
	for _, t := range types.AllTaxes() {
		taxes = append(taxes, t.Code())
	}
	taxations := make([]string, 0, len(types.AllTaxations()))
	for _, t := range types.AllTaxations() {
		taxations = append(taxations, t.Code())
	}

	return map[string]interface{}{
		"library_version":     Version,
		"supported_taxes":     taxes,
		"supported_taxations": taxations,
	}
}
