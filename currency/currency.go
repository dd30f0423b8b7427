// Package currency lists the ISO 4217 codes accepted by the Nexus attribution API.
package currency

import "sort"

type Code string

const (
	AED Code = "AED"
	ARS Code = "ARS"
	AUD Code = "AUD"
	BGN Code = "BGN"
	BHD Code = "BHD"
	BIF Code = "BIF"
	BRL Code = "BRL"
	CAD Code = "CAD"
	CHF Code = "CHF"
	CLP Code = "CLP"
	CNY Code = "CNY"
	COP Code = "COP"
	CZK Code = "CZK"
	DJF Code = "DJF"
	DKK Code = "DKK"
	EGP Code = "EGP"
	EUR Code = "EUR"
	GBP Code = "GBP"
	GNF Code = "GNF"
	HKD Code = "HKD"
	HUF Code = "HUF"
	IDR Code = "IDR"
	ILS Code = "ILS"
	INR Code = "INR"
	ISK Code = "ISK"
	JOD Code = "JOD"
	JPY Code = "JPY"
	KES Code = "KES"
	KMF Code = "KMF"
	KRW Code = "KRW"
	KWD Code = "KWD"
	MGA Code = "MGA"
	MXN Code = "MXN"
	MYR Code = "MYR"
	NGN Code = "NGN"
	NOK Code = "NOK"
	NZD Code = "NZD"
	OMR Code = "OMR"
	PEN Code = "PEN"
	PHP Code = "PHP"
	PLN Code = "PLN"
	PYG Code = "PYG"
	QAR Code = "QAR"
	RON Code = "RON"
	RWF Code = "RWF"
	SAR Code = "SAR"
	SEK Code = "SEK"
	SGD Code = "SGD"
	THB Code = "THB"
	TND Code = "TND"
	TRY Code = "TRY"
	TWD Code = "TWD"
	UAH Code = "UAH"
	UGX Code = "UGX"
	USD Code = "USD"
	UYU Code = "UYU"
	VND Code = "VND"
	VUV Code = "VUV"
	XAF Code = "XAF"
	XOF Code = "XOF"
	XPF Code = "XPF"
	ZAR Code = "ZAR"
)

// exponents maps every supported code to the number of digits of its minor unit.
var exponents = map[Code]int32{
	AED: 2, ARS: 2, AUD: 2, BGN: 2, BHD: 3, BIF: 0, BRL: 2, CAD: 2,
	CHF: 2, CLP: 0, CNY: 2, COP: 2, CZK: 2, DJF: 0, DKK: 2, EGP: 2,
	EUR: 2, GBP: 2, GNF: 0, HKD: 2, HUF: 2, IDR: 2, ILS: 2, INR: 2,
	ISK: 2, JOD: 3, JPY: 0, KES: 2, KMF: 0, KRW: 0, KWD: 3, MGA: 0,
	MXN: 2, MYR: 2, NGN: 2, NOK: 2, NZD: 2, OMR: 3, PEN: 2, PHP: 2,
	PLN: 2, PYG: 0, QAR: 2, RON: 2, RWF: 0, SAR: 2, SEK: 2, SGD: 2,
	THB: 2, TND: 3, TRY: 2, TWD: 2, UAH: 2, UGX: 0, USD: 2, UYU: 2,
	VND: 0, VUV: 0, XAF: 0, XOF: 0, XPF: 0, ZAR: 2,
}

// IsSupported reports whether code is accepted by the API. Codes are case-sensitive.
func IsSupported(code string) bool {
	_, ok := exponents[Code(code)]
	return ok
}

// IsZeroDecimal reports whether amounts in code must be whole numbers.
func IsZeroDecimal(code string) bool {
	exp, ok := exponents[Code(code)]
	return ok && exp == 0
}

// Exponent returns the minor-unit digits of a supported code.
func Exponent(code string) (int32, bool) {
	exp, ok := exponents[Code(code)]
	return exp, ok
}

// Supported returns all supported codes in lexical order.
func Supported() []Code {
	codes := make([]Code, 0, len(exponents))
	for c := range exponents {
		codes = append(codes, c)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

// ZeroDecimal returns the zero-decimal subset in lexical order.
func ZeroDecimal() []Code {
	var codes []Code
	for _, c := range Supported() {
		if exponents[c] == 0 {
			codes = append(codes, c)
		}
	}
	return codes
}
