package domain

import (
	"encoding/hex"
	"strings"
)

// AssetNamePrefix is prepended to the vehicle number to form the on-chain
// asset name.
const AssetNamePrefix = "CARdano"

// maxAssetNameLen is the ledger's limit on asset name bytes.
const maxAssetNameLen = 32

// MintRequest describes what becomes the on-chain asset's embedded
// metadata. Immutable once constructed.
type MintRequest struct {
	VehicleNumber string
	PDFHash       string
	DisplayName   string
	Extra         map[string]string
}

// AssetName derives the deterministic on-chain asset name for the request:
// a fixed prefix plus the vehicle number with separators stripped,
// truncated to the ledger's 32-byte limit.
func (r MintRequest) AssetName() string {
	num := strings.NewReplacer(" ", "", "-", "").Replace(r.VehicleNumber)
	name := AssetNamePrefix + num
	if len(name) > maxAssetNameLen {
		name = name[:maxAssetNameLen]
	}
	return name
}

// PolicyScript is a forging policy: the script bytes, its language version
// and the content-derived policy ID (hex).
type PolicyScript struct {
	Code     []byte
	Version  uint8
	PolicyID string
}

// AssetID returns the globally unique asset identifier under a policy:
// policyId ++ hex(assetName).
func AssetID(policyID, assetName string) string {
	return policyID + hex.EncodeToString([]byte(assetName))
}

// BuiltTransaction is an unsigned transaction: the CBOR body, its hash
// (which doubles as the transaction ID once submitted), the auxiliary
// metadata and the forging script authorizing the mint. Never reused across
// submission attempts.
type BuiltTransaction struct {
	Body     []byte
	BodyHash []byte
	AuxData  []byte
	Script   PolicyScript
	Inputs   []SpendableOutput
	Redeemer []byte // set only on the contract-policy variant
}

// SignedTransaction is the full serialized transaction ready for submit.
type SignedTransaction []byte

// MintResult is the terminal success outcome of a mint.
type MintResult struct {
	TxID      string `json:"tx_id"`
	AssetID   string `json:"asset_id"`
	PolicyID  string `json:"policy_id"`
	AssetName string `json:"asset_name"`
	Attempts  int    `json:"attempts"`
}
