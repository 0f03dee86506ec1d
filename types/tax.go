package types

// Tax represents the VAT rate of a receipt item as the acquiring SDK expects it
type Tax string

const (
	TaxNone   Tax = "none"
	TaxVat0   Tax = "vat0"
	TaxVat10  Tax = "vat10"
	TaxVat18  Tax = "vat18"
	TaxVat20  Tax = "vat20"
	TaxVat110 Tax = "vat110" // 10/110
	TaxVat118 Tax = "vat118" // 18/118
	TaxVat120 Tax = "vat120" // 20/120
)

// Taxation represents the tax accounting scheme of the merchant
type Taxation string

const (
	TaxationOSN              Taxation = "osn"
	TaxationUSNIncome        Taxation = "usn_income"
	TaxationUSNIncomeOutcome Taxation = "usn_income_outcome"
	TaxationPatent           Taxation = "patent"
	TaxationENVD             Taxation = "envd"
	TaxationESN              Taxation = "esn"
)

// DefaultTax is returned for absent or unrecognised tax codes.
const DefaultTax = TaxNone

// DefaultTaxation is returned for absent or unrecognised taxation codes.
const DefaultTaxation = TaxationOSN

// Plugin codes. Only "no VAT" differs from the SDK value.
var taxByCode = map[string]Tax{
	"non":    TaxNone,
	"vat0":   TaxVat0,
	"vat10":  TaxVat10,
	"vat18":  TaxVat18,
	"vat20":  TaxVat20,
	"vat110": TaxVat110,
	"vat118": TaxVat118,
	"vat120": TaxVat120,
}

var taxationByCode = map[string]Taxation{
	"usn_income":         TaxationUSNIncome,
	"usn_income_outcome": TaxationUSNIncomeOutcome,
	"patent":             TaxationPatent,
	"envd":               TaxationENVD,
	"esn":                TaxationESN,
	"osn":                TaxationOSN,
}

// LookupTax resolves a plugin tax code and reports whether it was recognised
func LookupTax(code string) (Tax, bool) {
	t, ok := taxByCode[code]
	if !ok {
		return DefaultTax, false
	}
	return t, true
}

// ParseTax resolves a plugin tax code, falling back to TaxNone
func ParseTax(code string) Tax {
	t, _ := LookupTax(code)
	return t
}

// ParseOptionalTax is ParseTax for a code that may be absent
func ParseOptionalTax(code *string) Tax {
	if code == nil {
		return DefaultTax
	}
	return ParseTax(*code)
}

// LookupTaxation resolves a plugin taxation code and reports whether it was recognised
func LookupTaxation(code string) (Taxation, bool) {
	t, ok := taxationByCode[code]
	if !ok {
		return DefaultTaxation, false
	}
	return t, true
}

// ParseTaxation resolves a plugin taxation code, falling back to TaxationOSN
func ParseTaxation(code string) Taxation {
	t, _ := LookupTaxation(code)
	return t
}

// ParseOptionalTaxation is ParseTaxation for a code that may be absent
func ParseOptionalTaxation(code *string) Taxation {
	if code == nil {
		return DefaultTaxation
	}
	return ParseTaxation(*code)
}

// Code returns the plugin code that resolves to t
func (t Tax) Code() string {
	if t == TaxNone {
		return "non"
	}
	return string(t)
}

// Code returns the plugin code that resolves to t
func (t Taxation) Code() string {
	return string(t)
}

func (t Tax) IsValid() bool {
	for _, v := range taxByCode {
		if v == t {
			return true
		}
	}
	return false
}

func (t Taxation) IsValid() bool {
	_, ok := taxationByCode[string(t)]
	return ok
}

func (t Tax) String() string {
	return string(t)
}

func (t Taxation) String() string {
	return string(t)
}

// AllTaxes lists every supported VAT rate
func AllTaxes() []Tax {
	return []Tax{TaxNone, TaxVat0, TaxVat10, TaxVat18, TaxVat20, TaxVat110, TaxVat118, TaxVat120}
}

// AllTaxations lists every supported taxation scheme
func AllTaxations() []Taxation {
	return []Taxation{
		TaxationOSN, TaxationUSNIncome, TaxationUSNIncomeOutcome,
		TaxationPatent, TaxationENVD, TaxationESN,
	}
}
