package store

import (
	"cmp"
	"context"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/donationDB/Donation-Web/internal/models"
)

// MemTable is an in-memory Repository. A mutex guards each call, but a
// read-modify-write spread over several calls can still lose an update.
type MemTable[T any] struct {
	mu      sync.Mutex
	rows    []T
	key     func(T) string
	prepare func(rows []T, v *T) error
}

// NewMemTable returns a table keyed by key. prepare, when set, runs under the
// lock before each insert and may assign ids or reject the row.
func NewMemTable[T any](rows []T, key func(T) string, prepare func(rows []T, v *T) error) *MemTable[T] {
	return &MemTable[T]{rows: slices.Clone(rows), key: key, prepare: prepare}
}

func (t *MemTable[T]) List(context.Context) ([]T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := slices.Clone(t.rows)
	if out == nil {
		out = []T{}
	}
	return out, nil
}

func (t *MemTable[T]) Get(_ context.Context, id string) (*T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	i := t.index(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	v := t.rows[i]
	return &v, nil
}

func (t *MemTable[T]) Insert(_ context.Context, v *T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.prepare != nil {
		if err := t.prepare(t.rows, v); err != nil {
			return err
		}
	}
	if t.index(t.key(*v)) >= 0 {
		return ErrDuplicate
	}
	t.rows = append(t.rows, *v)
	return nil
}

func (t *MemTable[T]) Update(_ context.Context, v *T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	i := t.index(t.key(*v))
	if i < 0 {
		return ErrNotFound
	}
	t.rows[i] = *v
	return nil
}

func (t *MemTable[T]) Delete(_ context.Context, id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	i := t.index(id)
	if i < 0 {
		return ErrNotFound
	}
	t.rows = slices.Delete(t.rows, i, i+1)
	return nil
}

func (t *MemTable[T]) index(id string) int {
	return slices.IndexFunc(t.rows, func(v T) bool { return t.key(v) == id })
}

// MemDonors is the sample donor table. Ids are assigned on insert and emails
// are unique, matching the primary schema.
type MemDonors struct {
	*MemTable[models.Donor]
}

func NewMemDonors(rows []models.Donor) *MemDonors {
	return &MemDonors{MemTable: NewMemTable(rows, donorKey, prepareDonor)}
}

func (d *MemDonors) FindByEmail(_ context.Context, email string) (*models.Donor, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, donor := range d.rows {
		if donor.Email != nil && *donor.Email == email {
			found := donor
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

// List returns donors newest first, like the primary store.
func (d *MemDonors) List(ctx context.Context) ([]models.Donor, error) {
	out, err := d.MemTable.List(ctx)
	if err != nil {
		return nil, err
	}
	slices.SortFunc(out, func(a, b models.Donor) int { return cmp.Compare(b.DonorID, a.DonorID) })
	return out, nil
}

func (d *MemDonors) Update(context.Context, *models.Donor) error {
	return ErrNotSupported
}

func donorKey(d models.Donor) string {
	return strconv.FormatInt(d.DonorID, 10)
}

func prepareDonor(rows []models.Donor, d *models.Donor) error {
	var maxID int64
	for _, r := range rows {
		if d.Email != nil && r.Email != nil && strings.EqualFold(*r.Email, *d.Email) {
			return ErrDuplicate
		}
		maxID = max(maxID, r.DonorID)
	}
	if d.DonorID == 0 {
		d.DonorID = maxID + 1
	}
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now()
	}
	return nil
}

func programKey(p models.Program) string   { return p.ProgramID }
func companyKey(c models.Company) string   { return c.CompanyID }
func categoryKey(c models.Category) string { return c.CategoryID }
