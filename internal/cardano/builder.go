package cardano

import (
	"encoding/hex"
	"fmt"
	"sort"

	"github.com/CAR-dano/cardano-backend-sub000/internal/core/domain"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/crypto/blake2b"
)

// Transaction body keys per the ledger CDDL.
const (
	bodyKeyInputs     = 0
	bodyKeyOutputs    = 1
	bodyKeyFee        = 2
	bodyKeyAuxHash    = 7
	bodyKeyMint       = 9
	bodyKeyCollateral = 13
	bodyKeyReference  = 18
)

// witnessOverhead approximates the vkey witness and framing bytes that are
// not part of the body but do count toward the fee-relevant size.
const witnessOverhead = 180

// ProtocolParams are the fee and minimum-value parameters the builder
// balances against.
type ProtocolParams struct {
	MinFeeA   uint64 // fee per byte
	MinFeeB   uint64 // flat fee
	MinChange uint64 // minimum lovelace on the change output
}

// DefaultProtocolParams returns current mainnet fee parameters.
func DefaultProtocolParams() ProtocolParams {
	return ProtocolParams{MinFeeA: 44, MinFeeB: 155381, MinChange: 1_000_000}
}

// Builder assembles mint transactions from already-selected outputs. Pure
// composition: no I/O.
type Builder struct {
	params ProtocolParams
}

// NewBuilder creates a Builder.
func NewBuilder(params ProtocolParams) *Builder {
	return &Builder{params: params}
}

// MintParams is everything BuildMint needs: the request, the forging
// policy, the wallet address serving as both input source and change
// destination, and the candidate inputs the selector produced.
type MintParams struct {
	Request domain.MintRequest
	Address string
	Policy  domain.PolicyScript
	Outputs []domain.SpendableOutput
}

// BuildMint constructs an unsigned transaction minting exactly one unit of
// the request's asset under the given policy, consuming candidate inputs
// largest-first and returning change to the wallet address. Balancing can
// fail when the supplied outputs cannot cover the fee plus minimum change,
// which surfaces as a *domain.BuildError (a build-time failure, distinct
// from submission-time failures).
func (b *Builder) BuildMint(p MintParams) (*domain.BuiltTransaction, error) {
	return b.build(p, nil, nil, nil)
}

// BuildScriptMint is the contract-policy variant: the same pipeline
// parameterized by a reference input, plus a distinct collateral input and
// a redeemer.
func (b *Builder) BuildScriptMint(
	p MintParams,
	reference, collateral domain.SpendableOutput,
	redeemer []byte,
) (*domain.BuiltTransaction, error) {
	if redeemer == nil {
		return nil, &domain.BuildError{Msg: "script mint requires a redeemer"}
	}
	if reference.TxHash == collateral.TxHash && reference.Index == collateral.Index {
		return nil, &domain.BuildError{Msg: "reference and collateral must be distinct outputs"}
	}
	return b.build(p, &reference, &collateral, redeemer)
}

func (b *Builder) build(
	p MintParams,
	reference, collateral *domain.SpendableOutput,
	redeemer []byte,
) (*domain.BuiltTransaction, error) {
	if len(p.Outputs) == 0 {
		return nil, &domain.BuildError{Msg: "no candidate inputs"}
	}
	if p.Policy.PolicyID == "" {
		return nil, &domain.BuildError{Msg: "missing forging policy"}
	}

	assetName := p.Request.AssetName()
	metadata := NFTMetadata(p.Policy.PolicyID, assetName, p.Request)
	auxData, auxHash, err := EncodeAuxData(metadata)
	if err != nil {
		return nil, &domain.BuildError{Msg: "metadata", Err: err}
	}

	policyIDBytes, err := hex.DecodeString(p.Policy.PolicyID)
	if err != nil {
		return nil, &domain.BuildError{Msg: "decode policy id", Err: err}
	}

	changeAddr, err := DecodeAddress(p.Address)
	if err != nil {
		return nil, &domain.BuildError{Msg: "change address", Err: err}
	}

	candidates := make([]domain.SpendableOutput, 0, len(p.Outputs))
	for _, out := range p.Outputs {
		if !out.AmountKnown() {
			return nil, &domain.BuildError{
				Msg: fmt.Sprintf("candidate input %s#%d has unknown amount", out.TxHash, out.Index),
			}
		}
		candidates = append(candidates, out)
	}
	sort.Slice(candidates, func(i, j int) bool {
		return *candidates[i].Lovelace > *candidates[j].Lovelace
	})

	// Fee depends on size and size depends on the inputs chosen to cover
	// the fee; iterate to a fixpoint.
	fee := b.params.MinFeeB
	var (
		inputs []domain.SpendableOutput
		body   []byte
	)
	for iter := 0; iter < 4; iter++ {
		target := fee + b.params.MinChange
		var total uint64
		inputs = inputs[:0]
		for _, c := range candidates {
			inputs = append(inputs, c)
			total += *c.Lovelace
			if total >= target {
				break
			}
		}
		if total < target {
			return nil, &domain.BuildError{
				Msg: fmt.Sprintf("inputs total %d lovelace, need %d to cover fee and change floor", total, target),
			}
		}

		change := total - fee
		body, err = b.encodeBody(inputs, changeAddr, change, fee, policyIDBytes, assetName, auxHash, reference, collateral)
		if err != nil {
			return nil, &domain.BuildError{Msg: "encode body", Err: err}
		}

		size := uint64(len(body) + len(auxData) + len(p.Policy.Code) + witnessOverhead)
		newFee := b.params.MinFeeA*size + b.params.MinFeeB
		if newFee <= fee {
			break
		}
		fee = newFee
	}

	sum := blake2b.Sum256(body)
	return &domain.BuiltTransaction{
		Body:     body,
		BodyHash: sum[:],
		AuxData:  auxData,
		Script:   p.Policy,
		Inputs:   append([]domain.SpendableOutput(nil), inputs...),
		Redeemer: redeemer,
	}, nil
}

func (b *Builder) encodeBody(
	inputs []domain.SpendableOutput,
	changeAddr []byte,
	change, fee uint64,
	policyID []byte,
	assetName string,
	auxHash []byte,
	reference, collateral *domain.SpendableOutput,
) ([]byte, error) {
	ins, err := encodeInputs(inputs)
	if err != nil {
		return nil, err
	}

	minted := map[interface{}]interface{}{
		cbor.ByteString(policyID): map[interface{}]interface{}{
			cbor.ByteString(assetName): uint64(1),
		},
	}

	// The minted unit rides on the change output; produced value must
	// equal consumed plus minted minus fee.
	body := map[uint64]interface{}{
		bodyKeyInputs:  ins,
		bodyKeyOutputs: []interface{}{[]interface{}{changeAddr, []interface{}{change, minted}}},
		bodyKeyFee:     fee,
		bodyKeyAuxHash: auxHash,
		bodyKeyMint:    minted,
	}
	if collateral != nil {
		col, err := encodeInputs([]domain.SpendableOutput{*collateral})
		if err != nil {
			return nil, err
		}
		body[bodyKeyCollateral] = col
	}
	if reference != nil {
		ref, err := encodeInputs([]domain.SpendableOutput{*reference})
		if err != nil {
			return nil, err
		}
		body[bodyKeyReference] = ref
	}

	return cbor.Marshal(body)
}

func encodeInputs(inputs []domain.SpendableOutput) ([]interface{}, error) {
	encoded := make([]interface{}, 0, len(inputs))
	for _, in := range inputs {
		hash, err := hex.DecodeString(in.TxHash)
		if err != nil {
			return nil, fmt.Errorf("decode tx hash %q: %w", in.TxHash, err)
		}
		encoded = append(encoded, []interface{}{hash, in.Index})
	}
	return encoded, nil
}
