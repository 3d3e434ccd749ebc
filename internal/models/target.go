package models

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// TargetKind records which target variant a validated string matched.
type TargetKind string

const (
	TargetKindDomain TargetKind = "domain"
	TargetKindIPv4   TargetKind = "ipv4"
	TargetKindIPv6   TargetKind = "ipv6"
	TargetKindCIDR   TargetKind = "cidr"
	TargetKindURL    TargetKind = "url"
)

// ErrorKind is a stable identifier for a validation failure.
type ErrorKind string

// Shared
const (
	ErrorKindEmptyInput         ErrorKind = "empty_input"
	ErrorKindContainsWhitespace ErrorKind = "contains_whitespace"
)

// Domain validator
const (
	ErrorKindTooLong            ErrorKind = "too_long"
	ErrorKindInvalidDomainShape ErrorKind = "invalid_domain_shape"
	ErrorKindNotASubdomain      ErrorKind = "not_a_subdomain"
)

// IP/CIDR validator
const (
	ErrorKindInvalidIPv4         ErrorKind = "invalid_ipv4"
	ErrorKindInvalidIPv6         ErrorKind = "invalid_ipv6"
	ErrorKindInvalidIP           ErrorKind = "invalid_ip"
	ErrorKindMissingPrefix       ErrorKind = "missing_prefix"
	ErrorKindInvalidPrefixLength ErrorKind = "invalid_prefix_length"
	ErrorKindInvalidCIDR         ErrorKind = "invalid_cidr"
)

// Endpoint validator
const (
	ErrorKindInvalidURLShape     ErrorKind = "invalid_url_shape"
	ErrorKindUnparsableURL       ErrorKind = "unparsable_url"
	ErrorKindUnsupportedProtocol ErrorKind = "unsupported_protocol"
	ErrorKindInvalidHostname     ErrorKind = "invalid_hostname"
	ErrorKindInvalidPort         ErrorKind = "invalid_port"
	ErrorKindPathTraversal       ErrorKind = "path_traversal"
	ErrorKindDangerousContent    ErrorKind = "dangerous_content"
)

// ValidationError describes why an input was rejected.
type ValidationError struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// ValidationResult is the outcome of every validation operation. Exactly one
// of Valid or Error is meaningful: a failed result carries Error, a successful
// one carries the normalized Value and, depending on the validator, Type,
// Network or Endpoint.
type ValidationResult struct {
	Valid    bool             `json:"valid"`
	Type     TargetKind       `json:"type,omitempty"`
	Value    string           `json:"value,omitempty"`
	Network  *NetworkRange    `json:"network,omitempty"`
	Endpoint *ParsedEndpoint  `json:"endpoint,omitempty"`
	Error    *ValidationError `json:"error,omitempty"`
}

// Valid builds a successful result.
func Valid(kind TargetKind, value string) ValidationResult {
	return ValidationResult{Valid: true, Type: kind, Value: value}
}

// Invalid builds a failed result.
func Invalid(kind ErrorKind, format string, args ...any) ValidationResult {
	return ValidationResult{
		Error: &ValidationError{Kind: kind, Message: fmt.Sprintf(format, args...)},
	}
}

// Err returns the validation error, or nil for a successful result.
func (r ValidationResult) Err() error {
	if r.Valid || r.Error == nil {
		return nil
	}
	return r.Error
}

// ErrorKind returns the failure kind, or "" for a successful result.
func (r ValidationResult) ErrorKind() ErrorKind {
	if r.Error == nil {
		return ""
	}
	return r.Error.Kind
}

// ParsedDomain is the public-suffix-aware split of a hostname.
// RootDomain is empty when the input has no registrable domain.
type ParsedDomain struct {
	Input              string `json:"input"`
	RootDomain         string `json:"root_domain,omitempty"`
	Suffix             string `json:"suffix,omitempty"`
	Subdomain          string `json:"subdomain,omitempty"`
	IsPublicSuffixOnly bool   `json:"is_public_suffix_only"`
	IsIPLiteral        bool   `json:"is_ip_literal"`
}

// HasRoot reports whether a registrable root domain was found.
func (p ParsedDomain) HasRoot() bool {
	return p.RootDomain != ""
}

// ParsedEndpoint holds the components of a validated HTTP(S) URL.
type ParsedEndpoint struct {
	Scheme   string     `json:"scheme"`
	Hostname string     `json:"hostname"`
	HostKind TargetKind `json:"host_kind"`
	Port     int        `json:"port,omitempty"`
	Path     string     `json:"path"`
	Query    string     `json:"query,omitempty"`
	Fragment string     `json:"fragment,omitempty"`
}

// NetworkRange describes the address block covered by a CIDR.
type NetworkRange struct {
	Network      string `json:"network"`
	Prefix       int    `json:"prefix"`
	First        string `json:"first"`
	Last         string `json:"last"`
	AddressCount string `json:"address_count"`
}

// BatchItem is a ValidationResult tagged with its position in the batch.
type BatchItem struct {
	Index         int    `json:"index"`
	OriginalInput string `json:"original_input"`
	ValidationResult
}

// RootDomainGroup lists the subdomains owned by one root domain, in the order
// they were seen.
type RootDomainGroup struct {
	RootDomain string   `json:"root_domain"`
	Subdomains []string `json:"subdomains"`
}

// RootDomainGroups is the result of grouping subdomains under their root
// domain. Groups keep first-seen order.
type RootDomainGroups struct {
	Groups  []RootDomainGroup `json:"groups"`
	Invalid []string          `json:"invalid"`

	index map[string]int
}

// NewRootDomainGroups creates an empty grouping.
func NewRootDomainGroups() *RootDomainGroups {
	return &RootDomainGroups{
		Groups:  []RootDomainGroup{},
		Invalid: []string{},
		index:   make(map[string]int),
	}
}

// Add appends subdomain to the group for rootDomain, creating it if absent.
func (g *RootDomainGroups) Add(rootDomain, subdomain string) {
	if g.index == nil {
		g.index = make(map[string]int, len(g.Groups))
		for i, group := range g.Groups {
			g.index[group.RootDomain] = i
		}
	}
	i, ok := g.index[rootDomain]
	if !ok {
		i = len(g.Groups)
		g.index[rootDomain] = i
		g.Groups = append(g.Groups, RootDomainGroup{RootDomain: rootDomain})
	}
	g.Groups[i].Subdomains = append(g.Groups[i].Subdomains, subdomain)
}

// AddInvalid records an input whose root domain could not be extracted.
func (g *RootDomainGroups) AddInvalid(input string) {
	g.Invalid = append(g.Invalid, input)
}

// Get returns the subdomains grouped under rootDomain.
func (g *RootDomainGroups) Get(rootDomain string) ([]string, bool) {
	i := slices.IndexFunc(g.Groups, func(group RootDomainGroup) bool {
		return group.RootDomain == rootDomain
	})
	if i < 0 {
		return nil, false
	}
	return g.Groups[i].Subdomains, true
}

// RootDomains returns the group keys in first-seen order.
func (g *RootDomainGroups) RootDomains() []string {
	roots := make([]string, len(g.Groups))
	for i, group := range g.Groups {
		roots[i] = group.RootDomain
	}
	return roots
}

// AsMap flattens the grouping into a map. Key order is lost.
func (g *RootDomainGroups) AsMap() map[string][]string {
	m := make(map[string][]string, len(g.Groups))
	for _, group := range g.Groups {
		m[group.RootDomain] = group.Subdomains
	}
	return m
}
