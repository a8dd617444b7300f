package ledger_test

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/labtrack/labstock-api/internal/domain"
	"github.com/labtrack/labstock-api/internal/domain/entity"
	"github.com/labtrack/labstock-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Almacén en memoria para los tests del motor: implementa los puertos de
// persistencia con un mapa protegido por mutex y transacciones con snapshot.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	mu            sync.Mutex
	components    map[string]*entity.Component
	entries       []*entity.LedgerEntry
	notifications []*entity.Notification
}

func newMemStore() *memStore {
	return &memStore{components: map[string]*entity.Component{}}
}

func cloneComponent(c *entity.Component) *entity.Component {
	cp := *c
	if c.DeletedAt != nil {
		t := *c.DeletedAt
		cp.DeletedAt = &t
	}
	return &cp
}

// ── ComponentRepository ───────────────────────────────────────────────────────

type memComponentRepo struct{ s *memStore }

func (r *memComponentRepo) Create(c *entity.Component) error {
	for _, ex := range r.s.components {
		if ex.PartNumber == c.PartNumber && ex.DeletedAt == nil {
			return domain.ErrDuplicate
		}
	}
	r.s.components[c.ID] = cloneComponent(c)
	return nil
}

func (r *memComponentRepo) GetByID(id string) (*entity.Component, error) {
	c, ok := r.s.components[id]
	if !ok {
		return nil, nil
	}
	return cloneComponent(c), nil
}

func (r *memComponentRepo) GetForUpdate(id string) (*entity.Component, error) {
	// El lock de fila lo emula el mutex del memTxRunner.
	return r.GetByID(id)
}

func (r *memComponentRepo) UpdateStock(c *entity.Component) error {
	ex, ok := r.s.components[c.ID]
	if !ok {
		return domain.ErrNotFound
	}
	ex.Quantity = c.Quantity
	ex.LastOutwardAt = c.LastOutwardAt
	ex.IsLowStock = c.IsLowStock
	ex.IsStale = c.IsStale
	ex.UpdatedAt = c.UpdatedAt
	return nil
}

func (r *memComponentRepo) UpdateDetails(c *entity.Component) error {
	ex, ok := r.s.components[c.ID]
	if !ok {
		return domain.ErrNotFound
	}
	ex.ComponentName = c.ComponentName
	ex.PartNumber = c.PartNumber
	ex.ManufacturerSupplier = c.ManufacturerSupplier
	ex.Category = c.Category
	ex.LocationBin = c.LocationBin
	ex.CriticalLowThreshold = c.CriticalLowThreshold
	ex.UnitPrice = c.UnitPrice
	ex.DatasheetLink = c.DatasheetLink
	ex.ImageURL = c.ImageURL
	ex.UpdatedAt = c.UpdatedAt
	return nil
}

func (r *memComponentRepo) UpdateFlags(id string, isLowStock, isStale bool) error {
	ex, ok := r.s.components[id]
	if !ok {
		return domain.ErrNotFound
	}
	ex.IsLowStock = isLowStock
	ex.IsStale = isStale
	return nil
}

func (r *memComponentRepo) SoftDelete(id string) error {
	ex, ok := r.s.components[id]
	if !ok || ex.DeletedAt != nil {
		return domain.ErrNotFound
	}
	now := ex.UpdatedAt
	ex.DeletedAt = &now
	return nil
}

func (r *memComponentRepo) List(f repository.ComponentFilters) ([]*entity.Component, int, error) {
	all, err := r.ListActive()
	if err != nil {
		return nil, 0, err
	}
	out := make([]*entity.Component, 0, len(all))
	for _, c := range all {
		if f.Search != "" &&
			!strings.Contains(strings.ToLower(c.ComponentName), strings.ToLower(f.Search)) &&
			!strings.Contains(strings.ToLower(c.PartNumber), strings.ToLower(f.Search)) {
			continue
		}
		if f.Category != "" && c.Category != f.Category {
			continue
		}
		if f.LocationBin != "" && c.LocationBin != f.LocationBin {
			continue
		}
		out = append(out, c)
	}
	return out, len(out), nil
}

func (r *memComponentRepo) ListActive() ([]*entity.Component, error) {
	out := make([]*entity.Component, 0, len(r.s.components))
	for _, c := range r.s.components {
		if c.DeletedAt == nil {
			out = append(out, cloneComponent(c))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memComponentRepo) Categories() ([]string, error) {
	seen := map[string]struct{}{}
	var out []string
	for _, c := range r.s.components {
		if c.DeletedAt == nil && c.Category != "" {
			if _, ok := seen[c.Category]; !ok {
				seen[c.Category] = struct{}{}
				out = append(out, c.Category)
			}
		}
	}
	sort.Strings(out)
	return out, nil
}

func (r *memComponentRepo) Locations() ([]string, error) {
	seen := map[string]struct{}{}
	var out []string
	for _, c := range r.s.components {
		if c.DeletedAt == nil && c.LocationBin != "" {
			if _, ok := seen[c.LocationBin]; !ok {
				seen[c.LocationBin] = struct{}{}
				out = append(out, c.LocationBin)
			}
		}
	}
	sort.Strings(out)
	return out, nil
}

// ── LedgerRepository ──────────────────────────────────────────────────────────

type memLedgerRepo struct{ s *memStore }

func (r *memLedgerRepo) Append(e *entity.LedgerEntry) error {
	cp := *e
	r.s.entries = append(r.s.entries, &cp)
	return nil
}

func (r *memLedgerRepo) ListByComponent(componentID string, f repository.LedgerFilters) (*repository.LedgerPage, error) {
	var matched []*entity.LedgerEntry
	for _, e := range r.s.entries {
		if e.ComponentID != componentID {
			continue
		}
		if f.Action != "" && e.Action != f.Action {
			continue
		}
		if f.From != nil && e.CreatedAt.Before(*f.From) {
			continue
		}
		if f.To != nil && e.CreatedAt.After(*f.To) {
			continue
		}
		matched = append(matched, e)
	}
	// Más reciente primero: el slice se llena en orden de inserción.
	for i, j := 0, len(matched)-1; i < j; i, j = i+1, j-1 {
		matched[i], matched[j] = matched[j], matched[i]
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 20
	}
	start := 0
	if f.Cursor != "" {
		n, err := strconv.Atoi(f.Cursor)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		start = n
	}
	if start > len(matched) {
		start = len(matched)
	}
	end := start + limit
	next := ""
	if end < len(matched) {
		next = strconv.Itoa(end)
	} else {
		end = len(matched)
	}
	return &repository.LedgerPage{Entries: matched[start:end], NextCursor: next}, nil
}

func (r *memLedgerRepo) ReplayByComponent(componentID string) ([]*entity.LedgerEntry, error) {
	var out []*entity.LedgerEntry
	for _, e := range r.s.entries {
		if e.ComponentID == componentID {
			out = append(out, e)
		}
	}
	return out, nil
}

// ── NotificationRepository ────────────────────────────────────────────────────

type memNotificationRepo struct{ s *memStore }

func (r *memNotificationRepo) Create(n *entity.Notification) error {
	cp := *n
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.notifications = append(r.s.notifications, &cp)
	return nil
}

func (r *memNotificationRepo) GetByID(id string) (*entity.Notification, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, n := range r.s.notifications {
		if n.ID == id {
			cp := *n
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memNotificationRepo) List(limit, offset int) ([]*entity.Notification, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Notification, 0, len(r.s.notifications))
	for i := len(r.s.notifications) - 1; i >= 0; i-- {
		cp := *r.s.notifications[i]
		out = append(out, &cp)
	}
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *memNotificationRepo) UnreadCount(userID string) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	count := 0
	for _, n := range r.s.notifications {
		if !n.IsReadBy(userID) {
			count++
		}
	}
	return count, nil
}

func (r *memNotificationRepo) HasOpenForComponent(componentID, notificationType string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, n := range r.s.notifications {
		if n.RelatedComponentID == componentID && n.Type == notificationType && len(n.ReadBy) == 0 {
			return true, nil
		}
	}
	return false, nil
}

func (r *memNotificationRepo) MarkRead(id, userID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, n := range r.s.notifications {
		if n.ID == id {
			if !n.IsReadBy(userID) {
				n.ReadBy = append(n.ReadBy, userID)
			}
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *memNotificationRepo) MarkAllRead(userID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, n := range r.s.notifications {
		if !n.IsReadBy(userID) {
			n.ReadBy = append(n.ReadBy, userID)
		}
	}
	return nil
}

func (r *memNotificationRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, n := range r.s.notifications {
		if n.ID == id {
			r.s.notifications = append(r.s.notifications[:i], r.s.notifications[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// ── TxRunner ──────────────────────────────────────────────────────────────────

// memTxRunner serializa las transacciones con un mutex (equivalente al lock
// de fila) y hace rollback restaurando un snapshot si fn retorna error.
type memTxRunner struct{ s *memStore }

func (tx *memTxRunner) Run(ctx context.Context, fn func(repository.ComponentRepository, repository.LedgerRepository) error) error {
	tx.s.mu.Lock()
	defer tx.s.mu.Unlock()

	snapshot := make(map[string]*entity.Component, len(tx.s.components))
	for id, c := range tx.s.components {
		snapshot[id] = cloneComponent(c)
	}
	entriesLen := len(tx.s.entries)

	if err := fn(&memComponentRepo{s: tx.s}, &memLedgerRepo{s: tx.s}); err != nil {
		tx.s.components = snapshot
		tx.s.entries = tx.s.entries[:entriesLen]
		return err
	}
	return nil
}
