package ports

import (
	"context"

	"github.com/CAR-dano/cardano-backend-sub000/internal/core/domain"
)

// ChainProvider is the upstream ledger/indexer boundary. The wallet-scoped
// output query may return degraded shapes missing amounts; the
// authoritative variant goes straight to the indexer and always carries
// amounts. Submit returns the ledger-confirmed transaction ID or a
// *domain.SubmitError classified by the adapter.
type ChainProvider interface {
	QuerySpendableOutputs(ctx context.Context, address string) ([]domain.ProviderOutput, error)
	QuerySpendableOutputsAuthoritative(ctx context.Context, address string) ([]domain.ProviderOutput, error)
	Submit(ctx context.Context, tx domain.SignedTransaction) (string, error)
	GetBalance(ctx context.Context, address string) (uint64, error)

	// Read paths against the indexer; return domain.ErrNotFound when the
	// entity does not exist on-chain.
	GetTransactionMetadata(ctx context.Context, txID string) ([]domain.TxMetadataEntry, error)
	GetAsset(ctx context.Context, assetID string) (*domain.AssetInfo, error)
}

// TxSigner is the wallet's signing capability. KeyHash exposes the
// blake2b-224 hash of the payment verification key, which parameterizes the
// single-signature forging policy.
type TxSigner interface {
	KeyHash() []byte
	Sign(ctx context.Context, built *domain.BuiltTransaction) (domain.SignedTransaction, error)
}

// AddressLocker serializes build-sign-submit sequences per wallet address.
// Run executes fn while holding the address's lock and guarantees release
// on every exit path. Callers for the same address are served FIFO;
// different addresses never contend.
type AddressLocker interface {
	Run(ctx context.Context, address string, fn func(ctx context.Context) error) error
}
