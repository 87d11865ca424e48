package query

import (
	"sort"
	"strings"
)

// FieldKind identifies the logical column category a term is scoped to.
type FieldKind int

const (
	// FieldNone marks an unscoped term; the compiler routes it by the
	// caller-supplied default.
	FieldNone FieldKind = iota
	// FieldDomain is the normalized hostname column.
	FieldDomain
	// FieldIdentity is the username/email column.
	FieldIdentity
	// FieldURL is the raw URL column.
	FieldURL
	// FieldBrowser is the capturing browser column.
	FieldBrowser
	// FieldSecret is the password column.
	FieldSecret
)

// String returns the string representation of FieldKind.
func (k FieldKind) String() string {
	switch k {
	case FieldDomain:
		return "domain"
	case FieldIdentity:
		return "identity"
	case FieldURL:
		return "url"
	case FieldBrowser:
		return "browser"
	case FieldSecret:
		return "secret"
	default:
		return "none"
	}
}

// Column returns the physical column identifier for the field.
func (k FieldKind) Column() string {
	switch k {
	case FieldDomain:
		return "domain"
	case FieldIdentity:
		return "username"
	case FieldURL:
		return "url"
	case FieldBrowser:
		return "browser"
	case FieldSecret:
		return "password"
	default:
		return ""
	}
}

// fieldAliases maps user-facing aliases to field kinds. The table is
// read-only after package init; ResolveField lowercases before lookup.
var fieldAliases = map[string]FieldKind{
	"domain":   FieldDomain,
	"d":        FieldDomain,
	"user":     FieldIdentity,
	"username": FieldIdentity,
	"email":    FieldIdentity,
	"u":        FieldIdentity,
	"url":      FieldURL,
	"browser":  FieldBrowser,
	"b":        FieldBrowser,
	"password": FieldSecret,
	"pass":     FieldSecret,
	"p":        FieldSecret,
}

// ResolveField resolves a field alias (case-insensitive) to its kind.
func ResolveField(name string) (FieldKind, bool) {
	k, ok := fieldAliases[strings.ToLower(name)]
	return k, ok
}

// Aliases returns the recognized field aliases, sorted. Used by tooling
// to print the alias table.
func Aliases() []string {
	names := make([]string, 0, len(fieldAliases))
	for name := range fieldAliases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
