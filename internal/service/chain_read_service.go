package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/CAR-dano/cardano-backend-sub000/internal/core/domain"
	"github.com/CAR-dano/cardano-backend-sub000/internal/core/ports"
	"github.com/CAR-dano/cardano-backend-sub000/pkg/apperror"
)

// ChainReadServiceImpl implements ports.ChainReadService over the ledger
// indexer.
type ChainReadServiceImpl struct {
	provider ports.ChainProvider
}

// NewChainReadService creates a new ChainReadServiceImpl.
func NewChainReadService(provider ports.ChainProvider) *ChainReadServiceImpl {
	return &ChainReadServiceImpl{provider: provider}
}

// GetTransactionMetadata reads the on-chain metadata labels of a
// transaction.
func (s *ChainReadServiceImpl) GetTransactionMetadata(ctx context.Context, txID string) ([]domain.TxMetadataEntry, error) {
	entries, err := s.provider.GetTransactionMetadata(ctx, txID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.ErrChainNotFound("transaction")
		}
		return nil, apperror.ErrChainUnavailable(fmt.Errorf("tx metadata: %w", err))
	}
	return entries, nil
}

// GetAsset reads the indexer's view of a minted asset.
func (s *ChainReadServiceImpl) GetAsset(ctx context.Context, assetID string) (*domain.AssetInfo, error) {
	info, err := s.provider.GetAsset(ctx, assetID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.ErrChainNotFound("asset")
		}
		return nil, apperror.ErrChainUnavailable(fmt.Errorf("asset info: %w", err))
	}
	return info, nil
}
