package validation

import (
	"testing"

	"github.com/allsafeASM/assetspec/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEndpointAccepts(t *testing.T) {
	v := Default()

	tests := []struct {
		input      string
		normalized string
		endpoint   models.ParsedEndpoint
	}{
		{
			input:      "https://example.com",
			normalized: "https://example.com/",
			endpoint:   models.ParsedEndpoint{Scheme: "https", Hostname: "example.com", HostKind: models.TargetKindDomain, Path: "/"},
		},
		{
			input:      "HTTP://WWW.Example.COM:8080/Admin?x=1#top",
			normalized: "http://www.example.com:8080/Admin?x=1#top",
			endpoint: models.ParsedEndpoint{
				Scheme: "http", Hostname: "www.example.com", HostKind: models.TargetKindDomain,
				Port: 8080, Path: "/Admin", Query: "x=1", Fragment: "top",
			},
		},
		{
			input:      "https://api.example.com:443/v1/users",
			normalized: "https://api.example.com/v1/users",
			endpoint: models.ParsedEndpoint{
				Scheme: "https", Hostname: "api.example.com", HostKind: models.TargetKindDomain,
				Port: 443, Path: "/v1/users",
			},
		},
		{
			input:      "http://192.168.1.1:8080/status",
			normalized: "http://192.168.1.1:8080/status",
			endpoint: models.ParsedEndpoint{
				Scheme: "http", Hostname: "192.168.1.1", HostKind: models.TargetKindIPv4,
				Port: 8080, Path: "/status",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := v.ValidateEndpoint(tt.input)
			require.True(t, result.Valid, "unexpected error: %v", result.Err())
			assert.Equal(t, models.TargetKindURL, result.Type)
			assert.Equal(t, tt.normalized, result.Value)
			require.NotNil(t, result.Endpoint)
			assert.Equal(t, tt.endpoint, *result.Endpoint)

			again, ok := v.NormalizeEndpoint(result.Value)
			require.True(t, ok)
			assert.Equal(t, result.Value, again)
		})
	}
}

func TestValidateEndpointRejects(t *testing.T) {
	v := Default()

	tests := []struct {
		name  string
		input string
		kind  models.ErrorKind
	}{
		{name: "empty", input: "", kind: models.ErrorKindEmptyInput},
		{name: "blank", input: " \t ", kind: models.ErrorKindEmptyInput},
		{name: "space", input: "https://exa mple.com", kind: models.ErrorKindContainsWhitespace},
		{name: "javascript scheme", input: "javascript:alert(1)", kind: models.ErrorKindInvalidURLShape},
		{name: "no scheme", input: "example.com", kind: models.ErrorKindInvalidURLShape},
		{name: "ftp", input: "ftp://example.com/file", kind: models.ErrorKindInvalidURLShape},
		{name: "no host", input: "https://", kind: models.ErrorKindInvalidURLShape},
		{name: "single label host", input: "http://localhost:3000/", kind: models.ErrorKindInvalidHostname},
		{name: "port too large", input: "http://example.com:99999/", kind: models.ErrorKindInvalidPort},
		{name: "six digit port", input: "http://example.com:123456/", kind: models.ErrorKindInvalidPort},
		{name: "port zero", input: "http://example.com:0/", kind: models.ErrorKindInvalidPort},
		{name: "path traversal", input: "https://example.com/../etc", kind: models.ErrorKindPathTraversal},
		{name: "nested traversal", input: "https://example.com/static/../../etc/passwd", kind: models.ErrorKindPathTraversal},
		{name: "javascript in query", input: "https://example.com/?next=javascript:alert(1)", kind: models.ErrorKindDangerousContent},
		{name: "data in query", input: "https://example.com/?src=DATA:text/html", kind: models.ErrorKindDangerousContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := v.ValidateEndpoint(tt.input)
			assert.False(t, result.Valid)
			assert.Equal(t, tt.kind, result.ErrorKind())
			assert.Nil(t, result.Endpoint)
		})
	}
}

func TestParseEndpoint(t *testing.T) {
	v := Default()

	endpoint, ok := v.ParseEndpoint("https://example.com:8443/login?next=%2Fhome")
	require.True(t, ok)
	assert.Equal(t, "https", endpoint.Scheme)
	assert.Equal(t, "example.com", endpoint.Hostname)
	assert.Equal(t, 8443, endpoint.Port)
	assert.Equal(t, "/login", endpoint.Path)
	assert.Equal(t, "next=%2Fhome", endpoint.Query)

	_, ok = v.ParseEndpoint("https://example.com/../x")
	assert.False(t, ok)
}

func TestHasTraversalSegment(t *testing.T) {
	assert.True(t, hasTraversalSegment("/../etc"))
	assert.True(t, hasTraversalSegment("/a/.."))
	assert.False(t, hasTraversalSegment("/a..b/c"))
	assert.False(t, hasTraversalSegment("/"))
}

func TestContainsDangerousContent(t *testing.T) {
	assert.True(t, containsDangerousContent("http://example.com/\x00"))
	assert.True(t, containsDangerousContent("http://example.com/\x7f"))
	assert.True(t, containsDangerousContent("JavaScript:alert(1)"))
	assert.False(t, containsDangerousContent("https://example.com/data/info"))
}
