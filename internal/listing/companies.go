package listing

import (
	"strings"

	"github.com/donationDB/Donation-Web/internal/models"
)

// Companies attaches each company's programs, keeping only companies whose
// name, contact or address contains keyword. Programs are de-duplicated by
// id (the later entry wins) and ordered by deadline. Company order is kept.
func Companies(companies []models.Company, programs []models.Program, keyword string) []models.Company {
	owned := make(map[string][]models.Program)
	index := make(map[string]map[string]int)
	for _, p := range programs {
		if p.CompanyID == nil || *p.CompanyID == "" {
			continue
		}
		id := *p.CompanyID
		if index[id] == nil {
			index[id] = make(map[string]int)
		}
		if i, dup := index[id][p.ProgramID]; dup {
			owned[id][i] = p
			continue
		}
		index[id][p.ProgramID] = len(owned[id])
		owned[id] = append(owned[id], p)
	}

	kw := fold(keyword)
	out := make([]models.Company, 0, len(companies))
	for _, c := range companies {
		if kw != "" &&
			!strings.Contains(fold(c.CompanyName), kw) &&
			!strings.Contains(fold(c.Contact), kw) &&
			!strings.Contains(fold(c.Address), kw) {
			continue
		}
		c.Programs = SortPrograms(owned[c.CompanyID], DeadlineAsc)
		out = append(out, c)
	}
	return out
}
