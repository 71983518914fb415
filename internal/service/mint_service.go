package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/CAR-dano/cardano-backend-sub000/config"
	"github.com/CAR-dano/cardano-backend-sub000/internal/cardano"
	"github.com/CAR-dano/cardano-backend-sub000/internal/core/domain"
	"github.com/CAR-dano/cardano-backend-sub000/internal/core/ports"
	"github.com/CAR-dano/cardano-backend-sub000/pkg/apperror"

	"github.com/rs/zerolog"
)

// MintServiceImpl implements ports.MintService. It serializes the whole
// build-sign-submit sequence per wallet address and runs two nested retry
// loops: the outer loop retries when no usable outputs are currently
// available, the inner loop (submitWithRetry) retries submissions rejected
// for stale inputs. The address lock only protects against this process
// racing itself; the inner loop is the compensating control for races with
// other writers spending from the same address.
type MintServiceImpl struct {
	provider ports.ChainProvider
	signer   ports.TxSigner
	locker   ports.AddressLocker
	selector *cardano.Selector
	builder  *cardano.Builder
	address  string
	cfg      config.MintingConfig
	log      zerolog.Logger
}

// NewMintService creates a new MintServiceImpl.
func NewMintService(
	provider ports.ChainProvider,
	signer ports.TxSigner,
	locker ports.AddressLocker,
	selector *cardano.Selector,
	builder *cardano.Builder,
	address string,
	cfg config.MintingConfig,
	log zerolog.Logger,
) *MintServiceImpl {
	return &MintServiceImpl{
		provider: provider,
		signer:   signer,
		locker:   locker,
		selector: selector,
		builder:  builder,
		address:  address,
		cfg:      cfg,
		log:      log,
	}
}

// Mint mints one asset for the request and blocks until a terminal outcome.
func (s *MintServiceImpl) Mint(ctx context.Context, req domain.MintRequest) (*domain.MintResult, error) {
	// Desynchronize near-simultaneous requests before they contend for the
	// address lock or query outputs.
	if err := sleepCtx(ctx, jitter(s.cfg.StartJitterMax)); err != nil {
		return nil, err
	}

	policy, err := cardano.SigPolicy(s.signer.KeyHash())
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("derive policy: %w", err))
	}
	assetName := req.AssetName()
	assetID := domain.AssetID(policy.PolicyID, assetName)

	backoff := s.cfg.OuterBackoff
	var lastErr error
	for attempt := 1; attempt <= s.cfg.OuterAttempts; attempt++ {
		var txID string
		err := s.locker.Run(ctx, s.address, func(ctx context.Context) error {
			id, err := s.mintOnce(ctx, req, policy)
			if err != nil {
				return err
			}
			txID = id
			return nil
		})
		if err == nil {
			s.log.Info().
				Str("tx_id", txID).
				Str("asset_id", assetID).
				Str("vehicle_number", req.VehicleNumber).
				Int("attempt", attempt).
				Msg("mint submitted")
			return &domain.MintResult{
				TxID:      txID,
				AssetID:   assetID,
				PolicyID:  policy.PolicyID,
				AssetName: assetName,
				Attempts:  attempt,
			}, nil
		}
		if !domain.IsRetryableOuter(err) {
			return nil, err
		}
		lastErr = err
		if attempt < s.cfg.OuterAttempts {
			s.log.Warn().
				Err(err).
				Int("attempt", attempt).
				Dur("backoff", backoff).
				Msg("no usable outputs yet, retrying mint")
			if err := sleepCtx(ctx, backoff); err != nil {
				return nil, err
			}
			backoff *= 2
		}
	}

	var buildErr *domain.BuildError
	if errors.As(lastErr, &buildErr) {
		return nil, apperror.ErrMintBuildFailed(s.cfg.OuterAttempts, lastErr)
	}
	return nil, apperror.ErrNoUsableOutputs(s.cfg.OuterAttempts, lastErr)
}

// mintOnce runs one full exclusive section: balance check, then the
// select-build-sign-submit cycle with its internal stale-input retries.
// Caller holds the address lock.
func (s *MintServiceImpl) mintOnce(ctx context.Context, req domain.MintRequest, policy domain.PolicyScript) (string, error) {
	balance, err := s.provider.GetBalance(ctx, s.address)
	if err != nil {
		return "", apperror.ErrChainUnavailable(fmt.Errorf("balance check: %w", err))
	}
	if balance < s.cfg.MinBalance {
		return "", apperror.ErrInsufficientBalance(balance, s.cfg.MinBalance)
	}

	return s.submitWithRetry(ctx, req, policy)
}

// jitter returns a random delay in [0, max).
func jitter(max time.Duration) time.Duration {
	if max <= 0 {
		return 0
	}
	return time.Duration(rand.Int64N(int64(max)))
}

// sleepCtx sleeps for d or until ctx is done, whichever comes first.
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
