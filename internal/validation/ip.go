package validation

import (
	"net"
	"net/netip"
	"strconv"
	"strings"

	"github.com/allsafeASM/assetspec/internal/models"
	"github.com/allsafeASM/assetspec/internal/suffix"
	"github.com/projectdiscovery/mapcidr"
)

const (
	maxIPv4Prefix = 32
	maxIPv6Prefix = 128

	// ::ffff:0:0/96 holds the IPv4-mapped addresses
	mappedPrefixBits = 96
)

// parseIP returns the canonical address for an IPv4 or IPv6 literal.
func parseIP(s string) (netip.Addr, bool) {
	if !suffix.IsIPLiteral(s) {
		return netip.Addr{}, false
	}
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Addr{}, false
	}
	return addr, true
}

func ipKind(addr netip.Addr) models.TargetKind {
	if addr.Is4() {
		return models.TargetKindIPv4
	}
	return models.TargetKindIPv6
}

// ValidateIPv4 accepts dotted-quad literals only. Octets with leading zeros
// are rejected.
func (v *Validator) ValidateIPv4(input string) models.ValidationResult {
	s := strings.TrimSpace(input)
	if s == "" {
		return models.Invalid(models.ErrorKindEmptyInput, "IP address cannot be empty")
	}
	addr, ok := parseIP(s)
	if !ok || !addr.Is4() {
		return models.Invalid(models.ErrorKindInvalidIPv4, "invalid IPv4 address: %s", s)
	}
	return models.Valid(models.TargetKindIPv4, addr.String())
}

// ValidateIPv6 accepts full and compressed colon-hex literals, including
// IPv4-mapped forms. Zoned addresses are rejected.
func (v *Validator) ValidateIPv6(input string) models.ValidationResult {
	s := strings.TrimSpace(input)
	if s == "" {
		return models.Invalid(models.ErrorKindEmptyInput, "IP address cannot be empty")
	}
	addr, ok := parseIP(s)
	if !ok || addr.Is4() {
		return models.Invalid(models.ErrorKindInvalidIPv6, "invalid IPv6 address: %s", s)
	}
	return models.Valid(models.TargetKindIPv6, addr.String())
}

// ValidateIP accepts either address family.
func (v *Validator) ValidateIP(input string) models.ValidationResult {
	s := strings.TrimSpace(input)
	if s == "" {
		return models.Invalid(models.ErrorKindEmptyInput, "IP address cannot be empty")
	}
	addr, ok := parseIP(s)
	if !ok {
		return models.Invalid(models.ErrorKindInvalidIP, "invalid IP address: %s", s)
	}
	return models.Valid(ipKind(addr), addr.String())
}

// ValidateCIDR checks address/prefix notation. The prefix is bounded by the
// address family: [0,32] for IPv4 and [0,128] for IPv6.
func (v *Validator) ValidateCIDR(input string) models.ValidationResult {
	s := strings.TrimSpace(input)
	if s == "" {
		return models.Invalid(models.ErrorKindEmptyInput, "CIDR cannot be empty")
	}

	switch strings.Count(s, "/") {
	case 0:
		return models.Invalid(models.ErrorKindMissingPrefix, "CIDR is missing a prefix length: %s", s)
	case 1:
	default:
		return models.Invalid(models.ErrorKindInvalidCIDR, "CIDR must contain exactly one '/': %s", s)
	}

	address, prefixText, _ := strings.Cut(s, "/")
	ip := v.ValidateIP(address)
	if !ip.Valid {
		return models.Invalid(models.ErrorKindInvalidCIDR, "invalid network address in CIDR %s: %s", s, ip.Error.Message)
	}
	addr, _ := parseIP(ip.Value)

	maxPrefix := maxIPv6Prefix
	if addr.Is4() {
		maxPrefix = maxIPv4Prefix
	}
	prefix, ok := parsePrefixLength(prefixText)
	if !ok {
		return models.Invalid(models.ErrorKindInvalidPrefixLength, "prefix length must be an integer: %q", prefixText)
	}
	if prefix > maxPrefix {
		return models.Invalid(models.ErrorKindInvalidPrefixLength,
			"prefix length %d out of range [0,%d] for %s", prefix, maxPrefix, ipKind(addr))
	}
	if addr.Is4In6() && prefix < mappedPrefixBits {
		return models.Invalid(models.ErrorKindInvalidCIDR,
			"IPv4-mapped CIDR %s must have a prefix of at least %d", s, mappedPrefixBits)
	}

	result := models.Valid(models.TargetKindCIDR, ip.Value+"/"+strconv.Itoa(prefix))
	result.Network = networkRange(netip.PrefixFrom(addr, prefix))
	return result
}

// parsePrefixLength accepts plain decimal digits only; signs and spaces are
// refused.
func parsePrefixLength(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	return n, err == nil
}

func networkRange(prefix netip.Prefix) *models.NetworkRange {
	masked := prefix.Masked()
	network := &models.NetworkRange{
		Network: masked.String(),
		Prefix:  masked.Bits(),
		First:   masked.Addr().String(),
		Last:    masked.Addr().String(),
	}

	ipNet, mapped := toIPNet(masked)
	if first, last, err := mapcidr.AddressRange(ipNet); err == nil {
		network.First = formatRangeAddr(first, mapped)
		network.Last = formatRangeAddr(last, mapped)
	}
	network.AddressCount = mapcidr.CountIPsInCIDR(true, true, ipNet).String()
	return network
}

// toIPNet converts a masked prefix for mapcidr. IPv4-mapped prefixes are
// unmapped to their IPv4 network so the address and mask lengths agree.
func toIPNet(prefix netip.Prefix) (*net.IPNet, bool) {
	addr := prefix.Addr()
	if addr.Is4In6() {
		v4 := addr.Unmap()
		return &net.IPNet{
			IP:   net.IP(v4.AsSlice()),
			Mask: net.CIDRMask(prefix.Bits()-mappedPrefixBits, maxIPv4Prefix),
		}, true
	}
	return &net.IPNet{
		IP:   net.IP(addr.AsSlice()),
		Mask: net.CIDRMask(prefix.Bits(), addr.BitLen()),
	}, false
}

func formatRangeAddr(ip net.IP, mapped bool) string {
	addr, ok := netip.AddrFromSlice(ip)
	if !ok {
		return ip.String()
	}
	addr = addr.Unmap()
	if mapped {
		addr = netip.AddrFrom16(addr.As16())
	}
	return addr.String()
}
