package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInspection_Mintable(t *testing.T) {
	tests := []struct {
		name   string
		status InspectionStatus
		want   bool
	}{
		{"draft", InspectionStatusDraft, false},
		{"approved", InspectionStatusApproved, true},
		{"minted", InspectionStatusMinted, false},
		{"archived", InspectionStatusArchived, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i := &Inspection{Status: tt.status}
			assert.Equal(t, tt.want, i.Mintable())
		})
	}
}

func TestMintRequest_AssetName(t *testing.T) {
	tests := []struct {
		name          string
		vehicleNumber string
		want          string
	}{
		{"spaces stripped", "B 1234 XYZ", "CARdanoB1234XYZ"},
		{"dashes stripped", "B-1234-XYZ", "CARdanoB1234XYZ"},
		{"mixed separators", "B 1234-XYZ", "CARdanoB1234XYZ"},
		{"compact unchanged", "D5678AA", "CARdanoD5678AA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := MintRequest{VehicleNumber: tt.vehicleNumber}
			assert.Equal(t, tt.want, req.AssetName())
		})
	}
}

func TestMintRequest_AssetName_Truncated(t *testing.T) {
	req := MintRequest{VehicleNumber: strings.Repeat("X", 64)}

	name := req.AssetName()
	assert.Len(t, name, 32)
	assert.True(t, strings.HasPrefix(name, AssetNamePrefix))
}

func TestAssetID(t *testing.T) {
	policyID := strings.Repeat("ab", 28)

	got := AssetID(policyID, "CARdanoB1234XYZ")

	assert.True(t, strings.HasPrefix(got, policyID))
	// The suffix is the hex encoding of the asset name.
	assert.Equal(t, "43415264616e6f423132333458595a", got[len(policyID):])
}

func TestParseLovelace(t *testing.T) {
	tests := []struct {
		in     string
		want   uint64
		wantOK bool
	}{
		{"1500000", 1_500_000, true},
		{"0", 0, true},
		{"", 0, false},
		{"-5", 0, false},
		{"12.5", 0, false},
		{"lovelace", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseLovelace(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
