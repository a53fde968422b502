// Package memory is an in-process implementation of the store ports. It backs
// the service and handler tests so they run without a database.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/mitchellh/mapstructure"

	"github.com/Kunal-1408/deployed-portfolio-sub001/internal/models"
	"github.com/Kunal-1408/deployed-portfolio-sub001/internal/schema"
	"github.com/Kunal-1408/deployed-portfolio-sub001/internal/store"
)

type Store struct {
	mu       sync.RWMutex
	entities map[schema.Kind][]models.Entity
	queries  []models.Query
	settings *models.Settings
	users    map[string]models.User
}

func New() *Store {
	return &Store{
		entities: make(map[schema.Kind][]models.Entity),
		users:    make(map[string]models.User),
	}
}

// matches applies the search predicate: empty term matches everything, text
// fields match by case-insensitive substring, tags by exact element.
func matches(desc schema.Descriptor, rec models.Entity, search string) bool {
	if search == "" {
		return true
	}
	var fields map[string]any
	if err := mapstructure.Decode(rec, &fields); err != nil {
		return false
	}
	term := strings.ToLower(search)
	for _, f := range desc.SearchFields {
		if s, ok := fields[f].(string); ok && strings.Contains(strings.ToLower(s), term) {
			return true
		}
	}
	if tags, ok := fields[desc.TagsField()].([]string); ok {
		for _, t := range tags {
			if t == search {
				return true
			}
		}
	}
	return false
}

func (s *Store) ListHighlighted(ctx context.Context, kind schema.Kind, search string) ([]models.Entity, error) {
	desc, err := schema.Lookup(string(kind))
	if err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Entity
	rows := s.entities[kind]
	for i := len(rows) - 1; i >= 0; i-- {
		if rows[i].IsHighlighted() && matches(desc, rows[i], search) {
			out = append(out, rows[i].Clone())
		}
	}
	return out, nil
}

func (s *Store) ListPage(ctx context.Context, kind schema.Kind, search string, offset, limit int) ([]models.Entity, error) {
	desc, err := schema.Lookup(string(kind))
	if err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Entity
	skipped := 0
	rows := s.entities[kind]
	for i := len(rows) - 1; i >= 0; i-- {
		if rows[i].IsHighlighted() || !matches(desc, rows[i], search) {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		out = append(out, rows[i].Clone())
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (s *Store) CountMatches(ctx context.Context, kind schema.Kind, search string) (int64, int64, error) {
	desc, err := schema.Lookup(string(kind))
	if err != nil {
		return 0, 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total, highlighted int64
	for _, rec := range s.entities[kind] {
		if !matches(desc, rec, search) {
			continue
		}
		total++
		if rec.IsHighlighted() {
			highlighted++
		}
	}
	return total, highlighted, nil
}

func (s *Store) GetByID(ctx context.Context, kind schema.Kind, id string, policy store.ArchivePolicy) (models.Entity, error) {
	if _, err := schema.Lookup(string(kind)); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, rec := range s.entities[kind] {
		if rec.GetID() != id {
			continue
		}
		if policy == store.ExcludeArchived && rec.IsArchived() {
			return nil, store.ErrNotFound
		}
		return rec.Clone(), nil
	}
	return nil, store.ErrNotFound
}

func (s *Store) Create(ctx context.Context, kind schema.Kind, record models.Entity) error {
	if _, err := schema.Lookup(string(kind)); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entities[kind] = append(s.entities[kind], record.Clone())
	return nil
}

func (s *Store) Update(ctx context.Context, kind schema.Kind, record models.Entity) error {
	if _, err := schema.Lookup(string(kind)); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := s.entities[kind]
	for i, rec := range rows {
		if rec.GetID() == record.GetID() {
			rows[i] = record.Clone()
			return nil
		}
	}
	return store.ErrNotFound
}

// Query store.

func (s *Store) CreateQuery(ctx context.Context, q *models.Query) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queries = append(s.queries, *q)
	return nil
}

func queryMatches(q models.Query, search string) bool {
	if search == "" {
		return true
	}
	term := strings.ToLower(search)
	for _, f := range []string{q.FirstName, q.LastName, q.Email, q.Phone, q.Query} {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

func (s *Store) ListQueries(ctx context.Context, opts store.ListOptions) ([]models.Query, int64, error) {
	opts = opts.Normalize()
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Query
	var total int64
	skipped := 0
	for i := len(s.queries) - 1; i >= 0; i-- {
		if !queryMatches(s.queries[i], opts.Search) {
			continue
		}
		total++
		if skipped < opts.Offset() {
			skipped++
			continue
		}
		if len(out) < opts.Limit {
			out = append(out, s.queries[i])
		}
	}
	return out, total, nil
}

func (s *Store) DeleteQuery(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, q := range s.queries {
		if q.ID == id {
			s.queries = append(s.queries[:i], s.queries[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

// Settings store.

func (s *Store) GetSettings(ctx context.Context) (*models.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.settings == nil {
		return nil, store.ErrNotFound
	}
	cp := *s.settings
	return &cp, nil
}

func (s *Store) SaveSettings(ctx context.Context, settings *models.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *settings
	if cp.ID == 0 {
		cp.ID = 1
	}
	s.settings = &cp
	return nil
}

// User store.

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[email]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := u
	return &cp, nil
}

func (s *Store) CreateUser(ctx context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.Email] = *u
	return nil
}
