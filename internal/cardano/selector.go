package cardano

import (
	"context"
	"fmt"

	"github.com/CAR-dano/cardano-backend-sub000/internal/core/domain"
	"github.com/CAR-dano/cardano-backend-sub000/internal/core/ports"

	"github.com/rs/zerolog"
)

// Selector picks spendable outputs that individually clear a configured
// lovelace floor. Outputs below the floor are dust relative to fees and
// risk violating the ledger's minimum-value-per-output rule once consumed.
type Selector struct {
	provider ports.ChainProvider
	min      uint64
	log      zerolog.Logger
}

// NewSelector creates a Selector with the given per-output floor.
func NewSelector(provider ports.ChainProvider, minLovelace uint64, log zerolog.Logger) *Selector {
	return &Selector{provider: provider, min: minLovelace, log: log}
}

// Select fetches a fresh set of spendable outputs for the address and
// returns those meeting the floor. Outputs are never cached across calls;
// staleness risk is the entire reason for re-fetching.
//
// If the wallet-scoped query yields only amount-less shapes, the
// authoritative indexer query is invoked exactly once and the result is
// re-normalized. If no output qualifies even then, a
// *domain.NoUsableOutputsError with diagnostic counts is returned.
func (s *Selector) Select(ctx context.Context, address string) ([]domain.SpendableOutput, error) {
	raw, err := s.provider.QuerySpendableOutputs(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("query spendable outputs: %w", err)
	}
	outputs := NormalizeAll(raw)
	usable := s.filter(outputs)

	if len(usable) == 0 && allAmountsUnknown(outputs) {
		s.log.Debug().
			Str("address", address).
			Int("outputs", len(outputs)).
			Msg("degraded output shapes, re-querying indexer")

		raw, err = s.provider.QuerySpendableOutputsAuthoritative(ctx, address)
		if err != nil {
			return nil, fmt.Errorf("authoritative output query: %w", err)
		}
		outputs = NormalizeAll(raw)
		usable = s.filter(outputs)
	}

	if len(usable) == 0 {
		return nil, &domain.NoUsableOutputsError{
			Address:      address,
			TotalOutputs: len(outputs),
			Usable:       0,
			KnownBalance: knownBalance(outputs),
			MinLovelace:  s.min,
		}
	}

	return usable, nil
}

func (s *Selector) filter(outputs []domain.SpendableOutput) []domain.SpendableOutput {
	var usable []domain.SpendableOutput
	for _, out := range outputs {
		if out.AmountKnown() && *out.Lovelace >= s.min {
			usable = append(usable, out)
		}
	}
	return usable
}

// allAmountsUnknown is vacuously true for an empty set: an empty
// wallet-scoped answer is indistinguishable from a degraded one, so it also
// triggers the authoritative re-query.
func allAmountsUnknown(outputs []domain.SpendableOutput) bool {
	for _, out := range outputs {
		if out.AmountKnown() {
			return false
		}
	}
	return true
}

func knownBalance(outputs []domain.SpendableOutput) uint64 {
	var sum uint64
	for _, out := range outputs {
		if out.AmountKnown() {
			sum += *out.Lovelace
		}
	}
	return sum
}
