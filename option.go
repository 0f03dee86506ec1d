package acquiring

import (
	"github.com/progressivemobile/acquiring/format"
	"github.com/progressivemobile/acquiring/logger"
	"github.com/progressivemobile/acquiring/metrics"
)

type Option func(*Bridge)

func WithLogger(l logger.Logger) Option {
	return func(b *Bridge) {
		b.logger = l
	}
}

func WithMetrics(r metrics.Recorder) Option {
	return func(b *Bridge) {
		b.metrics = r
	}
}

// WithLanguage sets the language of the SDK screens
func WithLanguage(lang string) Option {
	return func(b *Bridge) {
		b.view.Language = lang
	}
}

// WithCurrency sets the symbol appended to formatted amounts
func WithCurrency(symbol string) Option {
	return func(b *Bridge) {
		b.view.CurrencySymbol = symbol
	}
}

// WithCurrencyCode resolves an ISO 4217 code ("RUB", "USD") to its symbol.
// Unknown codes are ignored.
func WithCurrencyCode(code string) Option {
	return func(b *Bridge) {
		sym, err := format.SymbolForISO(code)
		if err != nil {
			b.logger.Warn("ignoring currency code", map[string]any{"code": code, "error": err.Error()})
			return
		}
		b.view.CurrencySymbol = sym
	}
}

func WithFractionDigits(n int) Option {
	return func(b *Bridge) {
		b.view.FractionDigits = n
	}
}
