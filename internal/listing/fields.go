package listing

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"github.com/donationDB/Donation-Web/internal/models"
)

// FieldQuery is the keyword/searchField/sortField query of the category and
// donor lists.
type FieldQuery struct {
	Keyword     string
	SearchField string
	SortField   string
}

var categorySearchFields = map[string]string{
	"all":           "all",
	"category_id":   "category_id",
	"id":            "category_id",
	"category_name": "category_name",
	"name":          "category_name",
}

var categorySortFields = map[string]bool{
	"category_id":   true,
	"category_name": true,
}

// Categories filters and orders categories. The default order is by id,
// comparing numeric ids by value.
func Categories(categories []models.Category, q FieldQuery) []models.Category {
	field := allowed(categorySearchFields, q.SearchField, "all")
	keyword := fold(q.Keyword)

	out := make([]models.Category, 0, len(categories))
	for _, c := range categories {
		if keyword != "" {
			id := strings.Contains(fold(c.CategoryID), keyword)
			name := strings.Contains(fold(c.CategoryName), keyword)
			switch field {
			case "category_id":
				if !id {
					continue
				}
			case "category_name":
				if !name {
					continue
				}
			default:
				if !id && !name {
					continue
				}
			}
		}
		out = append(out, c)
	}

	sortField := strings.TrimSpace(q.SortField)
	if !categorySortFields[sortField] {
		sortField = "category_id"
	}
	slices.SortStableFunc(out, func(a, b models.Category) int {
		if sortField == "category_name" {
			if c := cmp.Compare(fold(a.CategoryName), fold(b.CategoryName)); c != 0 {
				return c
			}
		}
		return compareIDs(a.CategoryID, b.CategoryID)
	})
	return out
}

var donorSearchFields = map[string]string{
	"all":      "all",
	"donor_id": "donor_id",
	"id":       "donor_id",
	"name":     "name",
	"email":    "email",
	"phone":    "phone",
}

var donorSortFields = map[string]bool{
	"donor_id":   true,
	"name":       true,
	"email":      true,
	"phone":      true,
	"created_at": true,
}

// Donors filters and orders donors. donor_id sorts newest first; the text
// columns and created_at sort ascending.
func Donors(donors []models.Donor, q FieldQuery) []models.Donor {
	field := allowed(donorSearchFields, q.SearchField, "all")
	keyword := fold(q.Keyword)

	out := make([]models.Donor, 0, len(donors))
	for _, d := range donors {
		if keyword != "" && !donorMatches(d, field, keyword) {
			continue
		}
		out = append(out, d)
	}

	sortField := strings.TrimSpace(q.SortField)
	if !donorSortFields[sortField] {
		sortField = "donor_id"
	}
	slices.SortStableFunc(out, func(a, b models.Donor) int {
		var c int
		switch sortField {
		case "name":
			c = cmp.Compare(fold(a.Name), fold(b.Name))
		case "email":
			c = cmp.Compare(fold(deref(a.Email)), fold(deref(b.Email)))
		case "phone":
			c = cmp.Compare(deref(a.Phone), deref(b.Phone))
		case "created_at":
			c = a.CreatedAt.Compare(b.CreatedAt)
		}
		if c != 0 {
			return c
		}
		return cmp.Compare(b.DonorID, a.DonorID)
	})
	return out
}

func donorMatches(d models.Donor, field, keyword string) bool {
	values := map[string]string{
		"donor_id": strconv.FormatInt(d.DonorID, 10),
		"name":     fold(d.Name),
		"email":    fold(deref(d.Email)),
		"phone":    fold(deref(d.Phone)),
	}
	if field != "all" {
		return strings.Contains(values[field], keyword)
	}
	for _, v := range values {
		if strings.Contains(v, keyword) {
			return true
		}
	}
	return false
}

func allowed(fields map[string]string, raw, fallback string) string {
	if f, ok := fields[strings.TrimSpace(raw)]; ok {
		return f
	}
	return fallback
}

// compareIDs orders numeric ids by value and everything else as text;
// numeric ids sort before textual ones.
func compareIDs(a, b string) int {
	na, errA := strconv.ParseInt(a, 10, 64)
	nb, errB := strconv.ParseInt(b, 10, 64)
	switch {
	case errA == nil && errB == nil:
		return cmp.Compare(na, nb)
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	}
	return cmp.Compare(a, b)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
