package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/CAR-dano/cardano-backend-sub000/internal/cardano"
	"github.com/CAR-dano/cardano-backend-sub000/internal/core/domain"
	"github.com/CAR-dano/cardano-backend-sub000/pkg/apperror"
)

// submitWithRetry runs select -> build -> sign -> submit, bounded by the
// configured inner attempt count. When the ledger rejects a submission for
// a stale-input reason, the next attempt starts from a brand-new output
// selection: a stale SignedTransaction is never resubmitted as-is. Each
// iteration threads a fresh immutable transaction forward, so every
// attempt's inputs are auditable in isolation.
//
// Selection and build failures return immediately; they belong to the
// outer loop, not this one. Caller holds the address lock.
func (s *MintServiceImpl) submitWithRetry(ctx context.Context, req domain.MintRequest, policy domain.PolicyScript) (string, error) {
	backoff := s.cfg.InnerBackoff
	var lastErr error

	for attempt := 1; attempt <= s.cfg.InnerAttempts; attempt++ {
		outputs, err := s.selector.Select(ctx, s.address)
		if err != nil {
			return "", err
		}

		built, err := s.builder.BuildMint(cardano.MintParams{
			Request: req,
			Address: s.address,
			Policy:  policy,
			Outputs: outputs,
		})
		if err != nil {
			return "", err
		}

		signed, err := s.signer.Sign(ctx, built)
		if err != nil {
			return "", apperror.InternalError(fmt.Errorf("sign transaction: %w", err))
		}

		txID, err := s.provider.Submit(ctx, signed)
		if err == nil {
			return txID, nil
		}

		var subErr *domain.SubmitError
		if !errors.As(err, &subErr) || !subErr.Retryable() {
			return "", apperror.ErrSubmissionRejected(err)
		}

		lastErr = err
		if attempt < s.cfg.InnerAttempts {
			s.log.Warn().
				Err(err).
				Int("attempt", attempt).
				Dur("backoff", backoff).
				Int("inputs", len(built.Inputs)).
				Msg("submission hit stale inputs, rebuilding")
			if err := sleepCtx(ctx, backoff); err != nil {
				return "", err
			}
			backoff *= 2
		}
	}

	return "", apperror.ErrStaleInputExhausted(s.cfg.InnerAttempts, lastErr)
}
