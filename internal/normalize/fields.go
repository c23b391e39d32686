package normalize

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Accepted source names per canonical program field, in priority order.
var (
	idAliases           = []string{"program_id", "id", "programId"}
	nameAliases         = []string{"program_name", "name", "programName", "title"}
	categoryAliases     = []string{"category", "category_code", "category_id", "categoryId", "category_name", "categoryName"}
	categoryLabelAlias  = []string{"category_label", "categoryLabel"}
	statusAliases       = []string{"status", "status_code", "status_name", "statusName", "state"}
	statusLabelAliases  = []string{"status_label", "statusLabel"}
	startAliases        = []string{"start_date", "startDate", "start_at", "starts_on"}
	endAliases          = []string{"end_date", "endDate", "end_at", "ends_on", "deadline"}
	amountAliases       = []string{"total_amount", "totalAmount", "goal_amount", "goalAmount", "target_amount"}
	locationAliases     = []string{"location", "place", "address"}
	descriptionAliases  = []string{"description", "goal_description", "goal_text", "purpose"}
	organizationAliases = []string{"organization", "organization_name", "company_name"}
	contactAliases      = []string{"contact", "company_phone", "phone"}
	companyAliases      = []string{"company_id", "companyId", "organization_id"}
	createdAliases      = []string{"created_at", "createdAt"}
	updatedAliases      = []string{"updated_at", "updatedAt"}
)

// FieldAliases returns the accepted source names of a canonical program
// field, in priority order, or nil for a field with no aliases.
func FieldAliases(field string) []string {
	var aliases []string
	switch field {
	case "program_id":
		aliases = idAliases
	case "status":
		aliases = statusAliases
	case "start_date":
		aliases = startAliases
	case "end_date":
		aliases = endAliases
	case "updated_at":
		aliases = updatedAliases
	}
	return append([]string(nil), aliases...)
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006/01/02",
}

// pick returns the first alias present with a non-nil value.
func pick(raw map[string]any, aliases []string) (any, bool) {
	for _, name := range aliases {
		if v, ok := raw[name]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func pickString(raw map[string]any, aliases []string) string {
	for _, name := range aliases {
		if s := text(raw[name]); s != "" {
			return s
		}
	}
	return ""
}

func text(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case *string:
		if t == nil {
			return ""
		}
		return strings.TrimSpace(*t)
	case []byte:
		return strings.TrimSpace(string(t))
	case json.Number:
		return t.String()
	case int:
		return strconv.Itoa(t)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint:
		return strconv.FormatUint(uint64(t), 10)
	case uint32:
		return strconv.FormatUint(uint64(t), 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case fmt.Stringer:
		return strings.TrimSpace(t.String())
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}

func toDate(v any) *datatypes.Date {
	var t time.Time
	switch d := v.(type) {
	case time.Time:
		t = d
	case *time.Time:
		if d == nil {
			return nil
		}
		t = *d
	case datatypes.Date:
		t = time.Time(d)
	case *datatypes.Date:
		if d == nil {
			return nil
		}
		t = time.Time(*d)
	default:
		s := text(v)
		if s == "" {
			return nil
		}
		parsed, ok := parseDate(s)
		if !ok {
			return nil
		}
		t = parsed
	}
	if t.IsZero() {
		return nil
	}
	y, m, day := t.Date()
	date := datatypes.Date(time.Date(y, m, day, 0, 0, 0, 0, time.UTC))
	return &date
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func toAmount(v any) decimal.NullDecimal {
	switch a := v.(type) {
	case nil:
		return decimal.NullDecimal{}
	case decimal.Decimal:
		return decimal.NewNullDecimal(a)
	case decimal.NullDecimal:
		return a
	case float64:
		return decimal.NewNullDecimal(decimal.NewFromFloat(a))
	case float32:
		return decimal.NewNullDecimal(decimal.NewFromFloat32(a))
	case int:
		return decimal.NewNullDecimal(decimal.NewFromInt(int64(a)))
	case int64:
		return decimal.NewNullDecimal(decimal.NewFromInt(a))
	}
	s := text(v)
	if s == "" {
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(s, ",", ""))
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}

func toTime(v any) *time.Time {
	switch t := v.(type) {
	case time.Time:
		if t.IsZero() {
			return nil
		}
		return &t
	case *time.Time:
		if t == nil || t.IsZero() {
			return nil
		}
		c := *t
		return &c
	}
	s := text(v)
	if s == "" {
		return nil
	}
	parsed, ok := parseDate(s)
	if !ok {
		return nil
	}
	return &parsed
}
