package normalize

import (
	"github.com/donationDB/Donation-Web/internal/models"
)

// CategoryLookup resolves a numeric category id to the category's name.
type CategoryLookup func(id string) (name string, ok bool)

// LookupFromCategories builds a CategoryLookup over the given categories.
func LookupFromCategories(categories []models.Category) CategoryLookup {
	byID := make(map[string]string, len(categories))
	for _, c := range categories {
		byID[c.CategoryID] = c.CategoryName
	}
	return func(id string) (string, bool) {
		name, ok := byID[id]
		return name, ok
	}
}

// Program builds the canonical program from a raw record. lookup may be nil.
func Program(raw map[string]any, lookup CategoryLookup) models.Program {
	p := models.Program{
		ProgramID:    pickString(raw, idAliases),
		ProgramName:  pickString(raw, nameAliases),
		Location:     pickString(raw, locationAliases),
		Description:  pickString(raw, descriptionAliases),
		Organization: pickString(raw, organizationAliases),
		Contact:      pickString(raw, contactAliases),
	}

	rawCategory := pickString(raw, categoryAliases)
	lookedUp := ""
	if lookup != nil && isNumeric(rawCategory) {
		if name, ok := lookup(rawCategory); ok {
			rawCategory, lookedUp = name, name
		}
	}
	category := Category(rawCategory)
	if !IsCategory(category.Code) {
		switch label := pickString(raw, categoryLabelAlias); {
		case lookedUp != "":
			category.Label = lookedUp
		case label != "":
			category.Label = label
		}
	}
	p.Category, p.CategoryLabel = category.Code, category.Label

	status := Status(pickString(raw, statusAliases))
	if !IsStatus(status.Code) {
		if label := pickString(raw, statusLabelAliases); label != "" {
			status.Label = label
		}
	}
	p.Status, p.StatusLabel = status.Code, status.Label

	if v, ok := pick(raw, startAliases); ok {
		p.StartDate = toDate(v)
	}
	if v, ok := pick(raw, endAliases); ok {
		p.EndDate = toDate(v)
	}
	if v, ok := pick(raw, amountAliases); ok {
		p.TotalAmount = toAmount(v)
	}
	if id := pickString(raw, companyAliases); id != "" {
		p.CompanyID = &id
	}
	if v, ok := pick(raw, createdAliases); ok {
		p.CreatedAt = toTime(v)
	}
	if v, ok := pick(raw, updatedAliases); ok {
		p.UpdatedAt = toTime(v)
	}
	return p
}

// Fields flattens a canonical program back into a raw record keyed by the
// canonical field names.
func Fields(p models.Program) map[string]any {
	raw := map[string]any{
		"program_id":     p.ProgramID,
		"program_name":   p.ProgramName,
		"category":       p.Category,
		"category_label": p.CategoryLabel,
		"status":         p.Status,
		"status_label":   p.StatusLabel,
		"total_amount":   p.TotalAmount,
		"location":       p.Location,
		"description":    p.Description,
		"organization":   p.Organization,
		"contact":        p.Contact,
	}
	if p.StartDate != nil {
		raw["start_date"] = *p.StartDate
	}
	if p.EndDate != nil {
		raw["end_date"] = *p.EndDate
	}
	if p.CompanyID != nil {
		raw["company_id"] = *p.CompanyID
	}
	if p.CreatedAt != nil {
		raw["created_at"] = *p.CreatedAt
	}
	if p.UpdatedAt != nil {
		raw["updated_at"] = *p.UpdatedAt
	}
	return raw
}

// Renormalize runs an already canonical program through Program again. It is
// the identity on canonical input and is applied to sample-store reads.
func Renormalize(p models.Program) models.Program {
	return Program(Fields(p), nil)
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
