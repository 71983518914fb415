package cardano

import (
	"testing"

	"github.com/CAR-dano/cardano-backend-sub000/internal/core/domain"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/blake2b"
)

func TestNFTMetadata_Shape(t *testing.T) {
	req := domain.MintRequest{
		VehicleNumber: "B 1234 XYZ",
		PDFHash:       "QmReportHash",
		DisplayName:   "Inspection B 1234 XYZ",
		Extra:         map[string]string{"inspector": "agus"},
	}
	assetName := req.AssetName()

	md := NFTMetadata("policy123", assetName, req)

	assert.Equal(t, "1.0", md["version"])
	byPolicy, ok := md["policy123"].(map[string]interface{})
	require.True(t, ok)
	fields, ok := byPolicy[assetName].(map[string]interface{})
	require.True(t, ok)

	assert.Equal(t, "Inspection B 1234 XYZ", fields["name"])
	assert.Equal(t, "ipfs://QmReportHash", fields["image"])
	assert.Equal(t, "application/pdf", fields["mediaType"])
	assert.Equal(t, "B 1234 XYZ", fields["vehicleNumber"])
	assert.Equal(t, "QmReportHash", fields["pdfHash"])
	assert.Equal(t, "agus", fields["inspector"])
}

func TestNFTMetadata_DisplayNameDefaultsToAssetName(t *testing.T) {
	req := domain.MintRequest{VehicleNumber: "D5678", PDFHash: "Qm"}
	assetName := req.AssetName()

	md := NFTMetadata("p", assetName, req)
	fields := md["p"].(map[string]interface{})[assetName].(map[string]interface{})

	assert.Equal(t, assetName, fields["name"])
}

func TestNFTMetadata_ExtraCannotShadowReservedFields(t *testing.T) {
	req := domain.MintRequest{
		VehicleNumber: "D5678",
		PDFHash:       "QmReal",
		Extra: map[string]string{
			"image": "ipfs://QmForged",
			"name":  "forged",
			"color": "red",
		},
	}
	assetName := req.AssetName()

	md := NFTMetadata("p", assetName, req)
	fields := md["p"].(map[string]interface{})[assetName].(map[string]interface{})

	assert.Equal(t, "ipfs://QmReal", fields["image"])
	assert.NotEqual(t, "forged", fields["name"])
	assert.Equal(t, "red", fields["color"])
}

func TestEncodeAuxData_LabelAndHash(t *testing.T) {
	md := NFTMetadata("p", "CARdanoD5678", domain.MintRequest{VehicleNumber: "D5678", PDFHash: "Qm"})

	auxData, auxHash, err := EncodeAuxData(md)
	require.NoError(t, err)
	require.NotEmpty(t, auxData)
	require.Len(t, auxHash, 32)

	sum := blake2b.Sum256(auxData)
	assert.Equal(t, sum[:], auxHash)

	// Metadata sits under the 721 label.
	var decoded map[uint64]interface{}
	require.NoError(t, cbor.Unmarshal(auxData, &decoded))
	_, ok := decoded[uint64(MetadataLabel)]
	assert.True(t, ok)
}
