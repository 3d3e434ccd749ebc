package validation

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/allsafeASM/assetspec/internal/models"
	"github.com/asaskevich/govalidator"
)

const (
	minPort = 1
	maxPort = 65535
)

// endpointShapeRegex requires an explicit http(s) scheme and a non-empty
// authority. govalidator.IsURL alone would accept "example.com".
var endpointShapeRegex = regexp.MustCompile(`(?i)^https?://[^/?#]+`)

var dangerousSchemes = []string{"javascript:", "data:"}

var defaultPorts = map[string]string{
	"http":  "80",
	"https": "443",
}

// ValidateEndpoint checks that input is an absolute http or https URL with a
// valid host, port and path. Value is the normalized URL and Endpoint holds
// its components.
func (v *Validator) ValidateEndpoint(input string) models.ValidationResult {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return models.Invalid(models.ErrorKindEmptyInput, "URL cannot be empty")
	}
	if containsWhitespace(raw) {
		return models.Invalid(models.ErrorKindContainsWhitespace, "URL cannot contain whitespace")
	}

	if !endpointShapeRegex.MatchString(raw) {
		return models.Invalid(models.ErrorKindInvalidURLShape, "invalid URL format, expected http:// or https:// followed by a host")
	}
	if !govalidator.IsURL(lowerScheme(raw)) {
		// The URL grammar caps ports at five digits; report longer ones as
		// a bad port rather than a bad shape.
		if u, err := url.Parse(raw); err == nil && u.Port() != "" && !validPort(u.Port()) {
			return models.Invalid(models.ErrorKindInvalidPort, "port %s out of range [%d,%d]", u.Port(), minPort, maxPort)
		}
		return models.Invalid(models.ErrorKindInvalidURLShape, "invalid URL format, expected http:// or https:// followed by a host")
	}

	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return models.Invalid(models.ErrorKindUnparsableURL, "URL could not be parsed")
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return models.Invalid(models.ErrorKindUnsupportedProtocol, "unsupported protocol %q, only http and https are allowed", u.Scheme)
	}

	hostname := strings.ToLower(u.Hostname())
	if hostname == "" {
		return models.Invalid(models.ErrorKindInvalidHostname, "URL hostname cannot be empty")
	}
	hostKind := models.TargetKindDomain
	if addr, ok := parseIP(hostname); ok {
		hostKind = ipKind(addr)
		hostname = addr.String()
	} else if !isFQDN(hostname) {
		return models.Invalid(models.ErrorKindInvalidHostname, "invalid hostname: %s", u.Hostname())
	}

	port := 0
	if p := u.Port(); p != "" {
		if !validPort(p) {
			return models.Invalid(models.ErrorKindInvalidPort, "port %s out of range [%d,%d]", p, minPort, maxPort)
		}
		port, _ = strconv.Atoi(p)
	}

	if hasTraversalSegment(u.Path) {
		return models.Invalid(models.ErrorKindPathTraversal, "URL path contains a '..' segment")
	}

	if containsDangerousContent(raw) {
		return models.Invalid(models.ErrorKindDangerousContent, "URL contains control characters or a dangerous scheme")
	}

	endpoint := &models.ParsedEndpoint{
		Scheme:   scheme,
		Hostname: hostname,
		HostKind: hostKind,
		Port:     port,
		Path:     u.Path,
		Query:    u.RawQuery,
		Fragment: u.Fragment,
	}
	if endpoint.Path == "" {
		endpoint.Path = "/"
	}

	result := models.Valid(models.TargetKindURL, normalizeURL(u, scheme, hostKind, endpoint))
	result.Endpoint = endpoint
	return result
}

// NormalizeEndpoint returns the normalized URL, or false when input does not
// validate.
func (v *Validator) NormalizeEndpoint(input string) (string, bool) {
	result := v.ValidateEndpoint(input)
	if !result.Valid {
		return "", false
	}
	return result.Value, true
}

// ParseEndpoint returns the URL components, or false when input does not
// validate.
func (v *Validator) ParseEndpoint(input string) (*models.ParsedEndpoint, bool) {
	result := v.ValidateEndpoint(input)
	if !result.Valid {
		return nil, false
	}
	return result.Endpoint, true
}

// normalizeURL renders scheme and host in lower case, drops the scheme's
// default port and writes an empty path as "/".
func normalizeURL(u *url.URL, scheme string, hostKind models.TargetKind, endpoint *models.ParsedEndpoint) string {
	host := endpoint.Hostname
	if hostKind == models.TargetKindIPv6 {
		host = "[" + host + "]"
	}
	if p := u.Port(); p != "" && defaultPorts[scheme] != strconv.Itoa(endpoint.Port) {
		host += ":" + strconv.Itoa(endpoint.Port)
	}

	normalized := &url.URL{
		Scheme:   scheme,
		User:     u.User,
		Host:     host,
		Path:     endpoint.Path,
		RawPath:  u.RawPath,
		RawQuery: u.RawQuery,
		Fragment: u.Fragment,
	}
	if normalized.RawPath != "" && normalized.Path != u.Path {
		normalized.RawPath = ""
	}
	return normalized.String()
}

// lowerScheme lower-cases the scheme only; the URL grammar is case-sensitive
// there.
func lowerScheme(raw string) string {
	if i := strings.Index(raw, "://"); i > 0 {
		return strings.ToLower(raw[:i]) + raw[i:]
	}
	return raw
}

func validPort(p string) bool {
	n, err := strconv.Atoi(p)
	return err == nil && n >= minPort && n <= maxPort
}

func hasTraversalSegment(path string) bool {
	for _, segment := range strings.Split(path, "/") {
		if segment == ".." {
			return true
		}
	}
	return false
}

func containsDangerousContent(raw string) bool {
	for _, r := range raw {
		if r <= 0x1F || r == 0x7F {
			return true
		}
	}
	lower := strings.ToLower(raw)
	for _, scheme := range dangerousSchemes {
		if strings.Contains(lower, scheme) {
			return true
		}
	}
	return false
}
