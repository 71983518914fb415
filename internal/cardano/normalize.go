// Package cardano implements the pure minting primitives: normalization of
// provider output shapes, spendable-output selection, forging-policy
// derivation, CIP-25 metadata assembly and mint-transaction construction.
package cardano

import (
	"github.com/CAR-dano/cardano-backend-sub000/internal/core/domain"
)

// Normalize converts one provider-shaped output into the canonical
// SpendableOutput. The provider may express the amount as an array of
// {unit, quantity} pairs, a map keyed by unit, a bare number or a numeric
// string; a minimal shape carries no amount at all. Normalize never fails:
// an unparseable or absent amount simply leaves Lovelace nil, which the
// selector handles.
func Normalize(out domain.ProviderOutput) domain.SpendableOutput {
	s := domain.SpendableOutput{
		TxHash: out.TxHash,
		Index:  out.Index,
		Raw:    out,
	}

	switch amt := out.Amount.(type) {
	case domain.AmountUnits:
		for _, uq := range amt {
			if uq.Unit != domain.LovelaceUnit {
				continue
			}
			if v, ok := domain.ParseLovelace(uq.Quantity); ok {
				s.Lovelace = &v
			}
			break
		}
	case domain.AmountMap:
		if q, ok := amt[domain.LovelaceUnit]; ok {
			if v, ok := domain.ParseLovelace(q); ok {
				s.Lovelace = &v
			}
		}
	case domain.AmountBare:
		v := uint64(amt)
		s.Lovelace = &v
	case domain.AmountString:
		if v, ok := domain.ParseLovelace(string(amt)); ok {
			s.Lovelace = &v
		}
	}

	return s
}

// NormalizeAll normalizes a full provider response.
func NormalizeAll(outs []domain.ProviderOutput) []domain.SpendableOutput {
	normalized := make([]domain.SpendableOutput, 0, len(outs))
	for _, out := range outs {
		normalized = append(normalized, Normalize(out))
	}
	return normalized
}
