package dto

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// vehicleNumberRe matches Indonesian-style plate numbers: uppercase
// letters and digits, optionally separated by single spaces or dashes.
var vehicleNumberRe = regexp.MustCompile(`^[A-Z0-9]+(?:[ -][A-Z0-9]+)*$`)

// contentHashRe matches a hex digest or an IPFS CID.
var contentHashRe = regexp.MustCompile(`^[A-Za-z0-9]+$`)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("vehicle_number", validateVehicleNumber)
		_ = v.RegisterValidation("content_hash", validateContentHash)
	}
}

func validateVehicleNumber(fl validator.FieldLevel) bool {
	return vehicleNumberRe.MatchString(fl.Field().String())
}

func validateContentHash(fl validator.FieldLevel) bool {
	return contentHashRe.MatchString(fl.Field().String())
}

// TrimStrings trims leading and trailing whitespace from every exported
// string field (including *string) of a struct pointer. Run after binding,
// before the values reach asset naming or on-chain metadata.
func TrimStrings(v interface{}) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return
	}
	trimFields(rv.Elem())
}

func trimFields(rv reflect.Value) {
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanSet() {
			continue
		}
		switch f.Kind() {
		case reflect.String:
			f.SetString(strings.TrimSpace(f.String()))
		case reflect.Ptr:
			if !f.IsNil() && f.Elem().Kind() == reflect.String {
				f.Elem().SetString(strings.TrimSpace(f.Elem().String()))
			}
		case reflect.Struct:
			trimFields(f)
		}
	}
}
