// Package suffix splits hostnames into public suffix, registrable root
// domain and subdomain labels.
package suffix

import (
	"fmt"
	"strings"

	"github.com/weppos/publicsuffix-go/publicsuffix"
	xpublicsuffix "golang.org/x/net/publicsuffix"
)

// Match is the public suffix found for a host. Suffix equals the host itself
// when the whole host is a suffix (or a single unknown label).
type Match struct {
	Suffix  string
	Private bool
}

// Lookup finds the longest public suffix of a lower-cased host.
// Implementations must be safe for concurrent use and must not do I/O.
type Lookup interface {
	PublicSuffix(host string) Match
}

// ListLookup resolves suffixes against a publicsuffix-go rule list.
type ListLookup struct {
	list    *publicsuffix.List
	options *publicsuffix.FindOptions
}

// NewListLookup wraps list. When ignorePrivate is set, rules from the
// private section of the list (github.io, herokuapp.com) are skipped.
func NewListLookup(list *publicsuffix.List, ignorePrivate bool) *ListLookup {
	return &ListLookup{
		list: list,
		options: &publicsuffix.FindOptions{
			IgnorePrivate: ignorePrivate,
			DefaultRule:   publicsuffix.DefaultRule,
		},
	}
}

// Default returns a lookup over the list embedded in publicsuffix-go.
func Default() *ListLookup {
	return NewListLookup(publicsuffix.DefaultList, false)
}

// LoadListFile builds a lookup from a public_suffix_list.dat file.
func LoadListFile(path string, ignorePrivate bool) (*ListLookup, error) {
	list, err := publicsuffix.NewListFromFile(path, &publicsuffix.ParserOption{PrivateDomains: true})
	if err != nil {
		return nil, fmt.Errorf("failed to load suffix list %s: %w", path, err)
	}
	return NewListLookup(list, ignorePrivate), nil
}

// NewStaticLookup builds a lookup from fixed rule sets written in list
// syntax.
func NewStaticLookup(icann, private []string) (*ListLookup, error) {
	list := publicsuffix.NewList()
	add := func(rules []string, isPrivate bool) error {
		for _, value := range rules {
			value = strings.ToLower(strings.TrimSpace(value))
			if value == "" {
				return fmt.Errorf("empty suffix rule")
			}
			rule, err := publicsuffix.NewRule(value)
			if err != nil {
				return fmt.Errorf("invalid suffix rule %q: %w", value, err)
			}
			rule.Private = isPrivate
			if err := list.AddRule(rule); err != nil {
				return fmt.Errorf("failed to add suffix rule %q: %w", value, err)
			}
		}
		return nil
	}
	if err := add(icann, false); err != nil {
		return nil, err
	}
	if err := add(private, true); err != nil {
		return nil, err
	}
	return NewListLookup(list, false), nil
}

// List returns the underlying rule list.
func (l *ListLookup) List() *publicsuffix.List {
	return l.list
}

func (l *ListLookup) PublicSuffix(host string) Match {
	rule := l.list.Find(host, l.options)
	if rule == nil {
		return Match{Suffix: lastLabel(host)}
	}
	parts := rule.Decompose(host)
	if parts[1] == "" {
		return Match{Suffix: host, Private: rule.Private}
	}
	return Match{Suffix: parts[1], Private: rule.Private}
}

// XNetLookup resolves suffixes with the table compiled into
// golang.org/x/net/publicsuffix. It always includes private rules.
type XNetLookup struct{}

func (XNetLookup) PublicSuffix(host string) Match {
	s, icann := xpublicsuffix.PublicSuffix(host)
	return Match{Suffix: s, Private: !icann && strings.Contains(s, ".")}
}

func lastLabel(host string) string {
	if i := strings.LastIndexByte(host, '.'); i >= 0 {
		return host[i+1:]
	}
	return host
}
