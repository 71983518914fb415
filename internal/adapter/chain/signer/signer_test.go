package signer

import (
	"context"
	"crypto/ed25519"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/CAR-dano/cardano-backend-sub000/internal/core/domain"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/blake2b"
)

const testSeedHex = "0101010101010101010101010101010101010101010101010101010101010101"

func TestNew_Validation(t *testing.T) {
	t.Run("valid seed", func(t *testing.T) {
		s, err := New(testSeedHex)
		require.NoError(t, err)
		assert.Len(t, s.KeyHash(), 28)
	})

	t.Run("not hex", func(t *testing.T) {
		_, err := New("zz")
		assert.Error(t, err)
	})

	t.Run("wrong length", func(t *testing.T) {
		_, err := New("0102")
		assert.Error(t, err)
	})
}

func TestKeyHash_DeterministicAndIsolated(t *testing.T) {
	s, err := New(testSeedHex)
	require.NoError(t, err)

	h1 := s.KeyHash()
	h1[0] ^= 0xff // callers must not be able to corrupt the signer's copy
	h2 := s.KeyHash()

	assert.NotEqual(t, h1[0], h2[0])

	// Matches blake2b-224 over the ed25519 public key of the seed.
	seed, _ := hex.DecodeString(testSeedHex)
	pub := ed25519.NewKeyFromSeed(seed).Public().(ed25519.PublicKey)
	h, _ := blake2b.New(28, nil)
	h.Write(pub)
	assert.Equal(t, h.Sum(nil), h2)
}

func TestSign_TransactionEnvelope(t *testing.T) {
	s, err := New(testSeedHex)
	require.NoError(t, err)

	body := []byte{0xa1, 0x02, 0x19, 0x03, 0xe8} // {2: 1000}
	sum := blake2b.Sum256(body)
	auxData, _ := cbor.Marshal(map[uint64]string{721: "meta"})
	script, _ := cbor.Marshal([]interface{}{uint64(0), make([]byte, 28)})

	signed, err := s.Sign(context.Background(), &domain.BuiltTransaction{
		Body:     body,
		BodyHash: sum[:],
		AuxData:  auxData,
		Script:   domain.PolicyScript{Code: script, Version: 0, PolicyID: "abc"},
	})
	require.NoError(t, err)

	var tx []cbor.RawMessage
	require.NoError(t, cbor.Unmarshal(signed, &tx))
	require.Len(t, tx, 4)

	// Element 0 is the body, byte for byte; re-serialization would change
	// the hash the witnesses sign.
	assert.Equal(t, body, []byte(tx[0]))

	// Element 1 carries a vkey witness whose signature verifies over the
	// body hash, plus the native script.
	var witnesses map[uint64]cbor.RawMessage
	require.NoError(t, cbor.Unmarshal(tx[1], &witnesses))

	var vkeys [][2][]byte
	require.NoError(t, cbor.Unmarshal(witnesses[0], &vkeys))
	require.Len(t, vkeys, 1)
	pub := ed25519.PublicKey(vkeys[0][0])
	assert.True(t, ed25519.Verify(pub, sum[:], vkeys[0][1]))

	_, hasScripts := witnesses[1]
	assert.True(t, hasScripts)

	// Element 2 is the validity flag.
	var valid bool
	require.NoError(t, cbor.Unmarshal(tx[2], &valid))
	assert.True(t, valid)

	// Element 3 embeds the auxiliary data unchanged.
	assert.Equal(t, auxData, []byte(tx[3]))
}

func TestSign_PlutusScriptGoesThroughRedeemer(t *testing.T) {
	s, err := New(testSeedHex)
	require.NoError(t, err)

	body := []byte{0xa0}
	sum := blake2b.Sum256(body)
	redeemer, _ := cbor.Marshal([]interface{}{})

	signed, err := s.Sign(context.Background(), &domain.BuiltTransaction{
		Body:     body,
		BodyHash: sum[:],
		Script:   domain.PolicyScript{Code: []byte{0x01}, Version: 2, PolicyID: "abc"},
		Redeemer: redeemer,
	})
	require.NoError(t, err)

	var tx []cbor.RawMessage
	require.NoError(t, cbor.Unmarshal(signed, &tx))

	var witnesses map[uint64]cbor.RawMessage
	require.NoError(t, cbor.Unmarshal(tx[1], &witnesses))

	// Plutus scripts are not native-script witnesses.
	_, hasNative := witnesses[1]
	assert.False(t, hasNative)
	_, hasRedeemer := witnesses[5]
	assert.True(t, hasRedeemer)
}

func TestSign_RejectsEmptyBody(t *testing.T) {
	s, err := New(testSeedHex)
	require.NoError(t, err)

	_, err = s.Sign(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "nothing to sign"))

	_, err = s.Sign(context.Background(), &domain.BuiltTransaction{})
	assert.Error(t, err)
}
