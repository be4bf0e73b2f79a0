package domain

import (
	_ "embed"
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	m "bladegen.dev/pkg/bladegen/internal/model"
)

//go:embed rules.yaml
var defaultRulesYAML []byte

// Rules holds the literal tables used while inferring dependencies.
// They are data rather than behavior and must match what the build
// tool expects byte for byte.
type Rules struct {
	Ignore     []string            `yaml:"ignore"`
	Pseudo     map[string]string   `yaml:"pseudo"`
	Aggregates map[string][]string `yaml:"aggregates"`
	Folders    map[string][]string `yaml:"folders"`
	Vendor     VendorRules         `yaml:"vendor"`
}

// VendorRules tunes how vendored headers are resolved.
type VendorRules struct {
	ExcludePrefixes []string          `yaml:"exclude_prefixes"`
	Targets         map[string]string `yaml:"targets"`
}

// DefaultRules returns the built-in rule tables.
func DefaultRules() (*Rules, error) {
	return ParseRules(defaultRulesYAML)
}

// ParseRules decodes rule tables from YAML.
func ParseRules(data []byte) (*Rules, error) {
	var rules Rules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("decode rules: %w", err)
	}

	for header, dep := range rules.Pseudo {
		if !strings.HasPrefix(dep, "#") {
			return nil, fmt.Errorf("pseudo reference %q for %q must start with '#'", dep, header)
		}
	}

	return &rules, nil
}

// IsIgnored reports whether include never yields a dependency.
func (r *Rules) IsIgnored(include string) bool {
	return slices.Contains(r.Ignore, include)
}

// PseudoFor returns the pseudo-reference of a system library header.
func (r *Rules) PseudoFor(include string) (m.Dep, bool) {
	dep, ok := r.Pseudo[include]
	return m.Dep(dep), ok
}

// AggregateFor returns the references implied by an aggregate header.
func (r *Rules) AggregateFor(include string) ([]m.Dep, bool) {
	return toDeps(r.Aggregates[include])
}

// FolderFor returns the references implied by any header in folder.
func (r *Rules) FolderFor(folder string) ([]m.Dep, bool) {
	return toDeps(r.Folders[folder])
}

// VendorTarget names the target exported by a vendored folder.
func (r *Rules) VendorTarget(folder string) string {
	if target, ok := r.Vendor.Targets[folder]; ok {
		return target
	}

	return folder
}

// VendorExcluded reports whether a vendored folder is skipped by the search.
func (r *Rules) VendorExcluded(folder string) bool {
	for _, prefix := range r.Vendor.ExcludePrefixes {
		if strings.HasPrefix(folder, prefix) {
			return true
		}
	}

	return false
}

func toDeps(values []string) ([]m.Dep, bool) {
	if len(values) == 0 {
		return nil, false
	}

	deps := make([]m.Dep, 0, len(values))
	for _, v := range values {
		deps = append(deps, m.Dep(v))
	}

	return deps, true
}
