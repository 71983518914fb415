package cardano

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil/bech32"
)

// Payment-address prefixes for the two Cardano networks.
const (
	MainnetHRP = "addr"
	TestnetHRP = "addr_test"
)

// DecodeAddress unpacks a bech32 payment address into the raw header+hash
// bytes that transaction outputs carry. Cardano addresses exceed the
// BIP-173 length limit, so decoding is length-unlimited.
func DecodeAddress(address string) ([]byte, error) {
	hrp, data, err := bech32.DecodeNoLimit(address)
	if err != nil {
		return nil, fmt.Errorf("decode address: %w", err)
	}
	if hrp != MainnetHRP && hrp != TestnetHRP {
		return nil, fmt.Errorf("unexpected address prefix %q", hrp)
	}
	raw, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return nil, fmt.Errorf("unpack address payload: %w", err)
	}
	return raw, nil
}

// EncodeAddress is the inverse of DecodeAddress.
func EncodeAddress(hrp string, raw []byte) (string, error) {
	data, err := bech32.ConvertBits(raw, 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("pack address payload: %w", err)
	}
	return bech32.Encode(hrp, data)
}
