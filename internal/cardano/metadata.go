package cardano

import (
	"fmt"

	"github.com/CAR-dano/cardano-backend-sub000/internal/core/domain"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/crypto/blake2b"
)

// MetadataLabel is the CIP-25 NFT metadata label.
const MetadataLabel = 721

// reserved CIP-25 field names callers may not override via Extra.
var reservedMetadataFields = map[string]struct{}{
	"name":      {},
	"image":     {},
	"mediaType": {},
}

// NFTMetadata assembles the CIP-25 on-chain metadata object for a mint:
// keyed policyId -> assetName, carrying the display name, the report's IPFS
// image reference, its media type and the caller's domain fields.
func NFTMetadata(policyID, assetName string, req domain.MintRequest) map[string]interface{} {
	name := req.DisplayName
	if name == "" {
		name = assetName
	}

	fields := map[string]interface{}{
		"name":          name,
		"image":         "ipfs://" + req.PDFHash,
		"mediaType":     "application/pdf",
		"vehicleNumber": req.VehicleNumber,
		"pdfHash":       req.PDFHash,
	}
	for k, v := range req.Extra {
		if _, reserved := reservedMetadataFields[k]; reserved {
			continue
		}
		fields[k] = v
	}

	return map[string]interface{}{
		policyID: map[string]interface{}{
			assetName: fields,
		},
		"version": "1.0",
	}
}

// EncodeAuxData serializes the metadata under the CIP-25 label and returns
// the auxiliary data CBOR plus its blake2b-256 hash for the transaction
// body.
func EncodeAuxData(metadata map[string]interface{}) (auxData, auxHash []byte, err error) {
	auxData, err = cbor.Marshal(map[uint64]interface{}{
		MetadataLabel: metadata,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("encode auxiliary data: %w", err)
	}
	sum := blake2b.Sum256(auxData)
	return auxData, sum[:], nil
}
