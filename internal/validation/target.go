package validation

import (
	"strings"

	"github.com/allsafeASM/assetspec/internal/models"
)

// ValidateTarget detects the kind of an untyped target and validates it.
// Checks run in a fixed order and the first match wins: anything containing
// '/' is a CIDR, then IP literals, then domains.
func (v *Validator) ValidateTarget(input string) models.ValidationResult {
	target := strings.TrimSpace(input)
	switch {
	case target == "":
		return models.Invalid(models.ErrorKindEmptyInput, "target cannot be empty")
	case strings.Contains(target, "/"):
		return v.ValidateCIDR(target)
	case isIP(target):
		return v.ValidateIP(target)
	default:
		return v.ValidateDomain(target)
	}
}

func isIP(s string) bool {
	_, ok := parseIP(s)
	return ok
}
