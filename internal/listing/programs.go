// Package listing filters, sorts and groups canonical records. It never
// touches a store and never mutates its input.
package listing

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"golang.org/x/text/cases"

	"github.com/donationDB/Donation-Web/internal/models"
	"github.com/donationDB/Donation-Web/internal/normalize"
)

// ProgramSort is one of the program list orderings.
type ProgramSort string

const (
	DeadlineAsc  ProgramSort = "deadline_asc"
	DeadlineDesc ProgramSort = "deadline_desc"
	StartAsc     ProgramSort = "start_asc"
	StartDesc    ProgramSort = "start_desc"
	AmountAsc    ProgramSort = "amount_asc"
	AmountDesc   ProgramSort = "amount_desc"
)

// ParseProgramSort maps a query value onto a ProgramSort. Anything unknown
// becomes DeadlineAsc.
func ParseProgramSort(raw string) ProgramSort {
	switch s := ProgramSort(strings.ToLower(strings.TrimSpace(raw))); s {
	case DeadlineAsc, DeadlineDesc, StartAsc, StartDesc, AmountAsc, AmountDesc:
		return s
	default:
		return DeadlineAsc
	}
}

// ProgramQuery is the admin program list query. Empty fields and "all"
// match everything.
type ProgramQuery struct {
	Keyword  string
	Category string
	Status   string
	Sort     ProgramSort
}

// Programs applies q's filters and ordering.
func Programs(programs []models.Program, q ProgramQuery) []models.Program {
	return SortPrograms(FilterPrograms(programs, q), q.Sort)
}

// FilterPrograms keeps the programs matching every filter of q.
func FilterPrograms(programs []models.Program, q ProgramQuery) []models.Program {
	keyword := fold(q.Keyword)
	category := categoryFilter(q.Category)
	status := statusFilter(q.Status)

	out := make([]models.Program, 0, len(programs))
	for _, p := range programs {
		if keyword != "" && !strings.Contains(fold(p.ProgramID), keyword) && !strings.Contains(fold(p.ProgramName), keyword) {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		if status != "" && p.Status != status {
			continue
		}
		out = append(out, p)
	}
	return out
}

// SortPrograms returns a sorted copy. Programs without the sorted date go
// last in either direction, a missing amount counts as zero, and ties are
// broken by program id.
func SortPrograms(programs []models.Program, sort ProgramSort) []models.Program {
	out := slices.Clone(programs)
	if out == nil {
		out = []models.Program{}
	}

	var byKey func(a, b models.Program) int
	switch ParseProgramSort(string(sort)) {
	case DeadlineDesc:
		byKey = byDate(models.Program.Deadline, true)
	case StartAsc:
		byKey = byDate(models.Program.Start, false)
	case StartDesc:
		byKey = byDate(models.Program.Start, true)
	case AmountAsc:
		byKey = func(a, b models.Program) int { return a.Amount().Cmp(b.Amount()) }
	case AmountDesc:
		byKey = func(a, b models.Program) int { return b.Amount().Cmp(a.Amount()) }
	default:
		byKey = byDate(models.Program.Deadline, false)
	}

	slices.SortStableFunc(out, func(a, b models.Program) int {
		if c := byKey(a, b); c != 0 {
			return c
		}
		return cmp.Compare(a.ProgramID, b.ProgramID)
	})
	return out
}

func byDate(get func(models.Program) (time.Time, bool), desc bool) func(a, b models.Program) int {
	return func(a, b models.Program) int {
		ta, okA := get(a)
		tb, okB := get(b)
		switch {
		case !okA && !okB:
			return 0
		case !okA:
			return 1
		case !okB:
			return -1
		}
		if desc {
			return tb.Compare(ta)
		}
		return ta.Compare(tb)
	}
}

func categoryFilter(raw string) string {
	if isAll(raw) {
		return ""
	}
	code := normalize.Category(raw).Code
	if !normalize.IsCategory(code) {
		return ""
	}
	return code
}

func statusFilter(raw string) string {
	if isAll(raw) {
		return ""
	}
	code := normalize.Status(raw).Code
	if !normalize.IsStatus(code) {
		return ""
	}
	return code
}

func isAll(raw string) bool {
	s := strings.TrimSpace(raw)
	return s == "" || strings.EqualFold(s, "all")
}

// fold is the case-insensitive comparison form of s. A Caser keeps state, so
// one is built per call.
func fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}
