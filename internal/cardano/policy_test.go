package cardano

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSigPolicy_Deterministic(t *testing.T) {
	keyHash := bytes.Repeat([]byte{0xab}, 28)

	p1, err := SigPolicy(keyHash)
	require.NoError(t, err)
	p2, err := SigPolicy(keyHash)
	require.NoError(t, err)

	assert.Equal(t, p1.PolicyID, p2.PolicyID)
	assert.Equal(t, p1.Code, p2.Code)
	assert.Equal(t, uint8(0), p1.Version)

	// 28-byte blake2b digest, hex-encoded.
	raw, err := hex.DecodeString(p1.PolicyID)
	require.NoError(t, err)
	assert.Len(t, raw, 28)
}

func TestSigPolicy_DifferentKeysDifferentPolicies(t *testing.T) {
	p1, err := SigPolicy(bytes.Repeat([]byte{0x01}, 28))
	require.NoError(t, err)
	p2, err := SigPolicy(bytes.Repeat([]byte{0x02}, 28))
	require.NoError(t, err)

	assert.NotEqual(t, p1.PolicyID, p2.PolicyID)
}

func TestSigPolicy_ScriptEncoding(t *testing.T) {
	keyHash := bytes.Repeat([]byte{0xcd}, 28)

	p, err := SigPolicy(keyHash)
	require.NoError(t, err)

	// The script is [0, keyhash].
	var decoded []interface{}
	require.NoError(t, cbor.Unmarshal(p.Code, &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, uint64(0), decoded[0])
	assert.Equal(t, keyHash, decoded[1])
}

func TestPlutusPolicy_VersionNamespaces(t *testing.T) {
	code := []byte{0x58, 0x02, 0x01, 0x02}

	v1, err := PlutusPolicy(code, 1)
	require.NoError(t, err)
	v2, err := PlutusPolicy(code, 2)
	require.NoError(t, err)

	// Same bytes, different language namespace, different policy.
	assert.NotEqual(t, v1.PolicyID, v2.PolicyID)
	assert.Equal(t, uint8(1), v1.Version)
	assert.Equal(t, uint8(2), v2.Version)
}

func TestPlutusPolicy_RejectsUnknownVersion(t *testing.T) {
	_, err := PlutusPolicy([]byte{0x01}, 3)
	assert.Error(t, err)
}
