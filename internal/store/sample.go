package store

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/donationDB/Donation-Web/internal/models"
	"github.com/donationDB/Donation-Web/internal/normalize"
)

//go:embed seed/sample.yaml
var sampleSeed []byte

type seedFile struct {
	Donors     []models.Donor    `yaml:"donors"`
	Categories []models.Category `yaml:"categories"`
	Companies  []models.Company  `yaml:"companies"`
	Programs   []map[string]any  `yaml:"programs"`
}

// Sample is the in-memory fallback dataset. Build it once per process and
// share the pointer.
type Sample struct {
	Donors     *MemDonors
	Programs   *MemTable[models.Program]
	Companies  *MemTable[models.Company]
	Categories *MemTable[models.Category]
}

// LoadSample builds the sample store from the embedded seed.
func LoadSample() (*Sample, error) {
	return ParseSample(sampleSeed)
}

// ParseSample builds a sample store from a YAML seed. Program entries are raw
// records in either schema generation and are normalized on load.
func ParseSample(data []byte) (*Sample, error) {
	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("parse sample seed: %w", err)
	}

	lookup := normalize.LookupFromCategories(seed.Categories)
	programs := make([]models.Program, 0, len(seed.Programs))
	for _, raw := range seed.Programs {
		p := normalize.Program(raw, lookup)
		if p.ProgramID == "" {
			return nil, fmt.Errorf("parse sample seed: program without id: %v", raw)
		}
		programs = append(programs, p)
	}

	return newSample(seed.Donors, programs, seed.Companies, seed.Categories), nil
}

// EmptySample returns a sample store with no rows.
func EmptySample() *Sample {
	return newSample(nil, nil, nil, nil)
}

func newSample(donors []models.Donor, programs []models.Program, companies []models.Company, categories []models.Category) *Sample {
	return &Sample{
		Donors:     NewMemDonors(donors),
		Programs:   NewMemTable(programs, programKey, nil),
		Companies:  NewMemTable(companies, companyKey, nil),
		Categories: NewMemTable(categories, categoryKey, nil),
	}
}
