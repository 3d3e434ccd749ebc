package validation

import (
	"strings"

	"github.com/allsafeASM/assetspec/internal/models"
)

const minSubdomainLabels = 3

// ParseDomain exposes the public-suffix-aware split of input.
func (v *Validator) ParseDomain(input string) models.ParsedDomain {
	return v.parser.ParseRoot(input)
}

// ValidateDomain checks that input is a registrable domain or a name under
// one. Leading and trailing whitespace is ignored; the result Value is the
// lower-cased domain.
func (v *Validator) ValidateDomain(input string) models.ValidationResult {
	domain := strings.TrimSpace(input)
	if domain == "" {
		return models.Invalid(models.ErrorKindEmptyInput, "domain cannot be empty")
	}

	if containsWhitespace(domain) {
		return models.Invalid(models.ErrorKindContainsWhitespace, "domain cannot contain whitespace: %q", domain)
	}

	if len(domain) > maxDomainLength {
		return models.Invalid(models.ErrorKindTooLong, "domain too long: %d characters (max %d)", len(domain), maxDomainLength)
	}

	parsed := v.parser.ParseRoot(domain)
	if parsed.IsIPLiteral {
		return models.Invalid(models.ErrorKindInvalidDomainShape, "IP address is not a domain: %s", domain)
	}
	if !parsed.HasRoot() {
		if parsed.IsPublicSuffixOnly {
			return models.Invalid(models.ErrorKindInvalidDomainShape, "%s is a public suffix, not a registrable domain", domain)
		}
		return models.Invalid(models.ErrorKindInvalidDomainShape, "invalid domain format: %s", domain)
	}

	normalized := strings.ToLower(domain)
	if !isFQDN(normalized) {
		return models.Invalid(models.ErrorKindInvalidDomainShape, "invalid domain format: %s", domain)
	}

	return models.Valid(models.TargetKindDomain, normalized)
}

// ValidateSubdomain checks that input is a valid domain with at least three
// labels.
func (v *Validator) ValidateSubdomain(input string) models.ValidationResult {
	result := v.ValidateDomain(input)
	if !result.Valid {
		return result
	}

	if labels := strings.Count(result.Value, ".") + 1; labels < minSubdomainLabels {
		return models.Invalid(models.ErrorKindNotASubdomain,
			"%s is not a subdomain: expected at least %d labels, got %d", result.Value, minSubdomainLabels, labels)
	}

	return result
}

// NormalizeDomain returns the trimmed, lower-cased domain, or false when the
// input does not validate.
func (v *Validator) NormalizeDomain(input string) (string, bool) {
	result := v.ValidateDomain(input)
	if !result.Valid {
		return "", false
	}
	return result.Value, true
}

// ExtractRootDomain returns the registrable root domain of input.
func (v *Validator) ExtractRootDomain(input string) (string, bool) {
	parsed := v.parser.ParseRoot(input)
	if !parsed.HasRoot() {
		return "", false
	}
	return parsed.RootDomain, true
}

// IsSubdomainOf reports whether subdomain is owned by rootDomain. Ownership is
// decided by comparing extracted roots, never by string suffix matching, so
// "evilexample.com" is not under "example.com".
func (v *Validator) IsSubdomainOf(subdomain, rootDomain string) bool {
	root, ok := v.ExtractRootDomain(subdomain)
	if !ok {
		return false
	}
	return root == strings.ToLower(strings.TrimSpace(rootDomain))
}
