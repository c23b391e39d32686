// Package normalize maps the field names and status/category vocabularies of
// both schema generations onto one canonical shape. Every function is pure
// and total: unknown input degrades to a literal code, it never fails.
package normalize

import (
	"slices"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Pair is a canonical code with its display label.
type Pair struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// Canonical program status codes.
const (
	StatusPlanned  = "planned"
	StatusRunning  = "running"
	StatusFinished = "finished"
	StatusRejected = "rejected"
)

// Canonical category codes.
const (
	CategoryChildren    = "children"
	CategoryEnvironment = "environment"
	CategoryEducation   = "education"
	CategoryAnimal      = "animal"
	CategoryHealth      = "health"
	CategoryOthers      = "others"
)

// vocabulary is one closed code set plus the alias tables that feed into it.
// Lookup goes codes, enumAliases, labels, legacyAliases, in that order.
type vocabulary struct {
	codes         map[string]string // code -> label
	order         []string
	enumAliases   map[string]string
	labels        map[string]string // key(label) -> code
	legacyAliases map[string]string
	empty         string
}

func newVocabulary(order []string, codes, enumAliases, extraLabels, legacy map[string]string, empty string) *vocabulary {
	v := &vocabulary{
		codes:         codes,
		order:         order,
		enumAliases:   enumAliases,
		labels:        make(map[string]string),
		legacyAliases: legacy,
		empty:         empty,
	}
	for code, label := range codes {
		v.labels[key(label)] = code
	}
	for label, code := range extraLabels {
		v.labels[key(label)] = code
	}
	return v
}

func (v *vocabulary) resolve(raw string) Pair {
	k := key(raw)
	if k == "" {
		return Pair{Code: v.empty, Label: v.codes[v.empty]}
	}
	if label, ok := v.codes[k]; ok {
		return Pair{Code: k, Label: label}
	}
	if code, ok := v.enumAliases[k]; ok {
		return Pair{Code: code, Label: v.codes[code]}
	}
	if code, ok := v.labels[k]; ok {
		return Pair{Code: code, Label: v.codes[code]}
	}
	if code, ok := v.legacyAliases[k]; ok {
		return Pair{Code: code, Label: v.codes[code]}
	}
	return Pair{Code: k, Label: strings.TrimSpace(norm.NFC.String(raw))}
}

func (v *vocabulary) known(code string) bool {
	_, ok := v.codes[code]
	return ok
}

// variants lists every lowercased spelling that resolves to code, in both
// the underscored and the spaced form. Callers compare them against the
// lowercased, trimmed column value.
func (v *vocabulary) variants(code string) []string {
	if !v.known(code) {
		return nil
	}
	seen := map[string]bool{}
	var out []string
	add := func(k string) {
		for _, s := range []string{k, strings.ReplaceAll(k, "_", " ")} {
			if !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
	}
	add(code)
	for _, table := range []map[string]string{v.enumAliases, v.legacyAliases, v.labels} {
		for alias, target := range table {
			if target == code {
				add(alias)
			}
		}
	}
	slices.Sort(out)
	return out
}

// key is the lookup form of a raw value: NFC, trimmed, lowercased, inner
// whitespace collapsed to underscores.
func key(raw string) string {
	s := strings.ToLower(strings.TrimSpace(norm.NFC.String(raw)))
	return strings.Join(strings.Fields(s), "_")
}
