package domain

import (
	"strconv"
)

// LovelaceUnit is the unit string the provider uses for the native currency.
const LovelaceUnit = "lovelace"

// UnitQuantity is one entry of an array-shaped amount: {unit, quantity}.
// Quantities arrive as decimal strings on the wire.
type UnitQuantity struct {
	Unit     string `json:"unit"`
	Quantity string `json:"quantity"`
}

// ProviderAmount is the closed set of amount shapes the output-query paths
// are known to return. The degraded wallet path may omit the amount
// entirely, in which case a ProviderOutput carries a nil ProviderAmount.
type ProviderAmount interface {
	providerAmount()
}

// AmountUnits is the array-of-{unit,quantity} shape.
type AmountUnits []UnitQuantity

// AmountMap is the map-keyed-by-unit shape.
type AmountMap map[string]string

// AmountBare is a bare numeric amount, already in lovelace.
type AmountBare uint64

// AmountString is a numeric string amount in lovelace.
type AmountString string

func (AmountUnits) providerAmount()  {}
func (AmountMap) providerAmount()    {}
func (AmountBare) providerAmount()   {}
func (AmountString) providerAmount() {}

// ProviderOutput is one spendable output exactly as a query path returned
// it. Amount is nil for the minimal shape.
type ProviderOutput struct {
	TxHash string
	Index  uint32
	Amount ProviderAmount
}

// SpendableOutput is the canonical shape every provider output is
// normalized into. Lovelace is nil until an amount was successfully parsed.
// Raw preserves the provider's native shape for downstream builder calls.
type SpendableOutput struct {
	TxHash   string
	Index    uint32
	Lovelace *uint64
	Raw      ProviderOutput
}

// AmountKnown reports whether the native amount could be parsed.
func (o SpendableOutput) AmountKnown() bool {
	return o.Lovelace != nil
}

// ParseLovelace parses a decimal lovelace quantity string.
func ParseLovelace(s string) (uint64, bool) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
