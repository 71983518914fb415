// Package signer implements the wallet signing capability over a local
// ed25519 payment key.
package signer

import (
	"context"
	"crypto/ed25519"
	"encoding/hex"
	"fmt"

	"github.com/CAR-dano/cardano-backend-sub000/internal/core/domain"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/crypto/blake2b"
)

// Witness set keys per the ledger CDDL.
const (
	witnessKeyVKeys         = 0
	witnessKeyNativeScripts = 1
	witnessKeyRedeemers     = 5
)

// Ed25519Signer implements ports.TxSigner with an in-memory payment key.
type Ed25519Signer struct {
	priv    ed25519.PrivateKey
	keyHash []byte
}

// New creates a signer from a hex-encoded 32-byte ed25519 seed.
func New(seedHex string) (*Ed25519Signer, error) {
	seed, err := hex.DecodeString(seedHex)
	if err != nil {
		return nil, fmt.Errorf("decode signing key: %w", err)
	}
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("signing key must be %d bytes, got %d", ed25519.SeedSize, len(seed))
	}

	priv := ed25519.NewKeyFromSeed(seed)

	h, err := blake2b.New(28, nil)
	if err != nil {
		return nil, fmt.Errorf("init blake2b: %w", err)
	}
	h.Write(priv.Public().(ed25519.PublicKey))

	return &Ed25519Signer{priv: priv, keyHash: h.Sum(nil)}, nil
}

// KeyHash returns the blake2b-224 hash of the payment verification key.
func (s *Ed25519Signer) KeyHash() []byte {
	return append([]byte(nil), s.keyHash...)
}

// Sign witnesses the transaction body and assembles the full serialized
// transaction: [body, witness_set, true, auxiliary_data].
func (s *Ed25519Signer) Sign(_ context.Context, built *domain.BuiltTransaction) (domain.SignedTransaction, error) {
	if built == nil || len(built.Body) == 0 {
		return nil, fmt.Errorf("nothing to sign")
	}

	sig := ed25519.Sign(s.priv, built.BodyHash)
	vkey := s.priv.Public().(ed25519.PublicKey)

	witnesses := map[uint64]interface{}{
		witnessKeyVKeys: []interface{}{
			[]interface{}{[]byte(vkey), sig},
		},
	}
	if len(built.Script.Code) > 0 && built.Script.Version == 0 {
		witnesses[witnessKeyNativeScripts] = []interface{}{cbor.RawMessage(built.Script.Code)}
	}
	if built.Redeemer != nil {
		witnesses[witnessKeyRedeemers] = cbor.RawMessage(built.Redeemer)
	}

	var aux interface{}
	if len(built.AuxData) > 0 {
		aux = cbor.RawMessage(built.AuxData)
	}

	tx, err := cbor.Marshal([]interface{}{
		cbor.RawMessage(built.Body),
		witnesses,
		true,
		aux,
	})
	if err != nil {
		return nil, fmt.Errorf("encode signed transaction: %w", err)
	}
	return domain.SignedTransaction(tx), nil
}
