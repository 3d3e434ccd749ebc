package suffix

import (
	"net/netip"
	"regexp"
	"strings"

	"github.com/allsafeASM/assetspec/internal/models"
	"github.com/asaskevich/govalidator"
)

// Labels accepted while splitting. Underscores are tolerated here (service
// labels such as _dmarc) and rejected later by the FQDN grammar.
var labelRegex = regexp.MustCompile(`^[a-z0-9_]([a-z0-9_-]{0,61}[a-z0-9_])?$`)

// Parser splits hostnames using a public suffix Lookup.
type Parser struct {
	lookup Lookup
}

// NewParser creates a parser backed by lookup. A nil lookup uses Default().
func NewParser(lookup Lookup) *Parser {
	if lookup == nil {
		lookup = Default()
	}
	return &Parser{lookup: lookup}
}

// ParseRoot trims and lower-cases input and splits it into suffix, root
// domain and subdomain labels. Inputs without a registrable domain come back
// with an empty RootDomain.
func (p *Parser) ParseRoot(input string) models.ParsedDomain {
	host := strings.ToLower(strings.TrimSpace(input))
	parsed := models.ParsedDomain{Input: host}
	if host == "" {
		return parsed
	}

	if IsIPLiteral(host) {
		parsed.IsIPLiteral = true
		return parsed
	}

	labels := strings.Split(host, ".")
	for _, label := range labels {
		if !labelRegex.MatchString(label) {
			return parsed
		}
	}
	// No top-level domain is numeric. Hosts such as 10.0.0.256 are
	// malformed addresses, not names under the default rule.
	if isNumeric(labels[len(labels)-1]) {
		return parsed
	}

	match := p.lookup.PublicSuffix(host)
	parsed.Suffix = match.Suffix
	if match.Suffix == "" || match.Suffix == host {
		parsed.IsPublicSuffixOnly = match.Suffix == host
		return parsed
	}

	rest, ok := strings.CutSuffix(host, "."+match.Suffix)
	if !ok || rest == "" {
		return parsed
	}

	registrable := rest
	if i := strings.LastIndexByte(rest, '.'); i >= 0 {
		registrable = rest[i+1:]
		parsed.Subdomain = rest[:i]
	}
	parsed.RootDomain = registrable + "." + match.Suffix
	return parsed
}

func isNumeric(label string) bool {
	return strings.Trim(label, "0123456789") == ""
}

// IsIPLiteral reports whether s is an IPv4 or IPv6 address literal.
// Zoned IPv6 addresses are not literals.
func IsIPLiteral(s string) bool {
	if !govalidator.IsIP(s) {
		return false
	}
	addr, err := netip.ParseAddr(s)
	return err == nil && addr.Zone() == ""
}
