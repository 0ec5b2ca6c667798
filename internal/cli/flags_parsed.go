package cli

import (
	"strings"
)

// ParsedFlags provides typed access to command-line flags.
type ParsedFlags struct {
	raw []string
}

// NewParsedFlags creates a ParsedFlags from a slice of flag strings.
func NewParsedFlags(flags []string) *ParsedFlags {
	return &ParsedFlags{raw: flags}
}

// Has returns true if any of names is present as a boolean flag.
func (f *ParsedFlags) Has(names ...string) bool {
	for _, flag := range f.raw {
		for _, name := range names {
			if flag == name {
				return true
			}
		}
	}
	return false
}

// Lookup returns the value of a --flag=value flag and whether it was given.
// The first occurrence wins.
func (f *ParsedFlags) Lookup(name string) (string, bool) {
	prefix := name + "="
	for _, flag := range f.raw {
		if strings.HasPrefix(flag, prefix) {
			return strings.TrimPrefix(flag, prefix), true
		}
	}
	return "", false
}

// List splits a comma-separated flag value, dropping blank items. It returns
// nil when the flag is absent.
func (f *ParsedFlags) List(name string) []string {
	v, ok := f.Lookup(name)
	if !ok {
		return nil
	}

	items := []string{}
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// Unknown returns the flags that match none of the descriptors.
func (f *ParsedFlags) Unknown(known []FlagDescriptor) []string {
	var unknown []string
	for _, flag := range f.raw {
		name, _, _ := strings.Cut(flag, "=")
		if !isKnown(name, known) {
			unknown = append(unknown, flag)
		}
	}
	return unknown
}

func isKnown(name string, known []FlagDescriptor) bool {
	for _, d := range known {
		for _, n := range d.Names {
			if n == name {
				return true
			}
		}
	}
	return false
}
