package cardano

import (
	"encoding/hex"
	"fmt"

	"github.com/CAR-dano/cardano-backend-sub000/internal/core/domain"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/crypto/blake2b"
)

// Native script tags per the ledger CDDL.
const scriptTagSig = 0

// Script hash namespace prefixes. The ledger hashes the language tag byte
// together with the script bytes.
const (
	nsNativeScript = 0x00
	nsPlutusV1     = 0x01
	nsPlutusV2     = 0x02
)

const policyIDLen = 28 // blake2b-224

// SigPolicy derives the default single-signature forging policy bound to
// the wallet's payment key hash. The policy ID is deterministic for a given
// key.
func SigPolicy(keyHash []byte) (domain.PolicyScript, error) {
	code, err := cbor.Marshal([]interface{}{uint64(scriptTagSig), keyHash})
	if err != nil {
		return domain.PolicyScript{}, fmt.Errorf("encode native script: %w", err)
	}

	id, err := scriptHash(nsNativeScript, code)
	if err != nil {
		return domain.PolicyScript{}, err
	}

	return domain.PolicyScript{Code: code, Version: 0, PolicyID: id}, nil
}

// PlutusPolicy derives a forging policy from a smart-contract script. Used
// by the contract-policy mint variant, which additionally requires a
// reference input, a collateral input and a redeemer.
func PlutusPolicy(code []byte, version uint8) (domain.PolicyScript, error) {
	var ns byte
	switch version {
	case 1:
		ns = nsPlutusV1
	case 2:
		ns = nsPlutusV2
	default:
		return domain.PolicyScript{}, fmt.Errorf("unsupported plutus version %d", version)
	}

	id, err := scriptHash(ns, code)
	if err != nil {
		return domain.PolicyScript{}, err
	}

	return domain.PolicyScript{Code: code, Version: version, PolicyID: id}, nil
}

func scriptHash(namespace byte, code []byte) (string, error) {
	h, err := blake2b.New(policyIDLen, nil)
	if err != nil {
		return "", fmt.Errorf("init blake2b: %w", err)
	}
	h.Write([]byte{namespace})
	h.Write(code)
	return hex.EncodeToString(h.Sum(nil)), nil
}
