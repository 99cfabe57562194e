package kernel

import (
	"fmt"
	"regexp"
	"strings"

	"foodorder/internal/pkg/errs"
)

// cepPattern accepts the canonical "01310-100" form and the bare
// eight-digit form "01310100".
var cepPattern = regexp.MustCompile(`^\d{5}-?\d{3}$`)

// PrefixLength is the number of leading CEP digits used as the key into
// the delivery zone table.
const PrefixLength = 3

// CEP is a value object for a Brazilian postal code. Within this system it
// is used only as a string prefix key into the delivery zone table, so the
// value object normalizes input to digits and exposes the zone prefix.
//
// The zero value is invalid; construct via NewCEP.
//
// Example usage:
//
//	cep, err := kernel.NewCEP("01310-100")
//	if err != nil {
//	    // malformed postal code, rejected before any lookup
//	}
//	zone := table.Lookup(cep.Prefix())
type CEP struct {
	digits string
}

// NewCEP validates and normalizes a postal code string.
// Returns a validation error for anything that is not eight digits with an
// optional hyphen after the fifth. Malformed input is a validation failure,
// distinct from a well-formed CEP outside every delivery zone.
func NewCEP(s string) (CEP, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return CEP{}, errs.NewValueIsRequiredError("cep")
	}
	if !cepPattern.MatchString(trimmed) {
		return CEP{}, errs.NewValueIsInvalidErrorWithCause("cep",
			fmt.Errorf("%q is not a valid CEP", trimmed))
	}
	return CEP{digits: strings.ReplaceAll(trimmed, "-", "")}, nil
}

// Prefix returns the leading digits used for delivery zone lookup.
func (c CEP) Prefix() string {
	return c.digits[:PrefixLength]
}

// String returns the canonical "01310-100" representation.
func (c CEP) String() string {
	return c.digits[:5] + "-" + c.digits[5:]
}

// Validate reports whether the CEP was created through NewCEP.
func (c CEP) Validate() error {
	if c.digits == "" {
		return errs.NewValueIsRequiredError("CEP must be created via NewCEP")
	}
	return nil
}
