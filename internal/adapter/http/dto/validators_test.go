package dto

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
)

// bindCreate runs the full binding + validation pipeline the handlers use.
func bindCreate(t *testing.T, body string) error {
	t.Helper()
	var req CreateInspectionRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		return err
	}
	return binding.Validator.ValidateStruct(&req)
}

func createBody(vehicleNumber, pdfHash string) string {
	raw, _ := json.Marshal(map[string]string{
		"vehicle_number": vehicleNumber,
		"pdf_hash":       pdfHash,
		"inspector_name": "Budi Santoso",
	})
	return string(raw)
}

func TestVehicleNumberValidation(t *testing.T) {
	tests := []struct {
		name          string
		vehicleNumber string
		wantErr       bool
	}{
		{"plate with spaces", "B 1234 XYZ", false},
		{"plate with dashes", "B-1234-XYZ", false},
		{"compact plate", "D5678AA", false},
		{"lowercase rejected", "b 1234 xyz", true},
		{"leading space rejected", " B 1234 XYZ", true},
		{"double separator rejected", "B  1234", true},
		{"symbols rejected", "B_1234!", true},
		{"too short", "B1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := bindCreate(t, createBody(tt.vehicleNumber, "QmReportHash"))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestContentHashValidation(t *testing.T) {
	hexDigest := ""
	for i := 0; i < 32; i++ {
		hexDigest += fmt.Sprintf("%02x", i)
	}

	tests := []struct {
		name    string
		pdfHash string
		wantErr bool
	}{
		{"hex digest", hexDigest, false},
		{"ipfs cid", "QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG", false},
		{"path traversal rejected", "../etc/passwd", true},
		{"whitespace rejected", "Qm Report Hash", true},
		{"too short", "QmShort", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := bindCreate(t, createBody("B 1234 XYZ", tt.pdfHash))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTrimStrings(t *testing.T) {
	rating := "  A  "
	type nested struct {
		Inner string
	}
	type payload struct {
		Name   string
		Rating *string
		Child  nested
	}

	p := payload{Name: "  Budi Santoso  ", Rating: &rating, Child: nested{Inner: " x "}}
	TrimStrings(&p)

	assert.Equal(t, "Budi Santoso", p.Name)
	assert.Equal(t, "A", *p.Rating)
	assert.Equal(t, "x", p.Child.Inner)
}

func TestTrimStrings_IgnoresNonStructPointer(t *testing.T) {
	s := "  untouched  "
	TrimStrings(s)  // not a pointer
	TrimStrings(&s) // not a struct
	assert.Equal(t, "  untouched  ", s)
}
