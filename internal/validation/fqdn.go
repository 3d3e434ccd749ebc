package validation

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/asaskevich/govalidator"
)

const (
	maxDomainLength = 253
	maxLabelLength  = 63
)

var (
	fqdnLabelRegex = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`)
	fqdnTLDRegex   = regexp.MustCompile(`^([a-z]{2,63}|xn--[a-z0-9-]{1,59})$`)
)

// isFQDN checks the strict hostname grammar: letter/digit/hyphen labels of at
// most 63 characters, no hyphen at either end of a label, an alphabetic (or
// punycode) top-level label, and no underscores, wildcards or trailing dot.
// host must already be lower-cased.
func isFQDN(host string) bool {
	if host == "" || len(host) > maxDomainLength {
		return false
	}
	if strings.HasSuffix(host, ".") || strings.ContainsAny(host, "_*") {
		return false
	}
	if !govalidator.IsDNSName(host) {
		return false
	}

	labels := strings.Split(host, ".")
	if len(labels) < 2 {
		return false
	}
	if !fqdnTLDRegex.MatchString(labels[len(labels)-1]) {
		return false
	}
	for _, label := range labels {
		if len(label) > maxLabelLength || !fqdnLabelRegex.MatchString(label) {
			return false
		}
	}
	return true
}

func containsWhitespace(s string) bool {
	return strings.IndexFunc(s, unicode.IsSpace) >= 0
}
