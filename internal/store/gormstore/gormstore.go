// Package gormstore implements the store ports on top of GORM. MySQL in
// production, SQLite in the tests; the generated SQL stays portable across
// both.
package gormstore

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/Kunal-1408/deployed-portfolio-sub001/internal/models"
	"github.com/Kunal-1408/deployed-portfolio-sub001/internal/schema"
	"github.com/Kunal-1408/deployed-portfolio-sub001/internal/store"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// applySearch adds the search predicate for a kind: case-insensitive
// substring match over the kind's text columns OR exact-element containment
// in the JSON-serialized tag list. An empty term leaves the query unfiltered.
func applySearch(q *gorm.DB, desc schema.Descriptor, search string) *gorm.DB {
	if search == "" {
		return q
	}
	term := "%" + strings.ToLower(search) + "%"
	conds := make([]string, 0, len(desc.SearchColumns)+1)
	args := make([]any, 0, len(desc.SearchColumns)+1)
	for _, col := range desc.SearchColumns {
		conds = append(conds, "LOWER("+col+") LIKE ?")
		args = append(args, term)
	}
	// Tags are stored as a JSON array of strings, so an exact element always
	// appears quoted.
	conds = append(conds, "tags LIKE ?")
	args = append(args, `%"`+search+`"%`)
	return q.Where(strings.Join(conds, " OR "), args...)
}

func (s *Store) ListHighlighted(ctx context.Context, kind schema.Kind, search string) ([]models.Entity, error) {
	desc, err := schema.Lookup(string(kind))
	if err != nil {
		return nil, err
	}
	q := s.db.WithContext(ctx).Model(desc.New()).Where("highlighted = ?", true)
	q = applySearch(q, desc, search)
	slicePtr := desc.NewSlice()
	if err := q.Order("created_at DESC, id DESC").Find(slicePtr).Error; err != nil {
		return nil, err
	}
	return desc.Elems(slicePtr), nil
}

func (s *Store) ListPage(ctx context.Context, kind schema.Kind, search string, offset, limit int) ([]models.Entity, error) {
	desc, err := schema.Lookup(string(kind))
	if err != nil {
		return nil, err
	}
	q := s.db.WithContext(ctx).Model(desc.New()).Where("highlighted = ?", false)
	q = applySearch(q, desc, search)
	slicePtr := desc.NewSlice()
	if err := q.Order("created_at DESC, id DESC").Offset(offset).Limit(limit).Find(slicePtr).Error; err != nil {
		return nil, err
	}
	return desc.Elems(slicePtr), nil
}

func (s *Store) CountMatches(ctx context.Context, kind schema.Kind, search string) (int64, int64, error) {
	desc, err := schema.Lookup(string(kind))
	if err != nil {
		return 0, 0, err
	}
	var total, highlighted int64
	q := applySearch(s.db.WithContext(ctx).Model(desc.New()), desc, search)
	if err := q.Count(&total).Error; err != nil {
		return 0, 0, err
	}
	q = applySearch(s.db.WithContext(ctx).Model(desc.New()), desc, search).Where("highlighted = ?", true)
	if err := q.Count(&highlighted).Error; err != nil {
		return 0, 0, err
	}
	return total, highlighted, nil
}

func (s *Store) GetByID(ctx context.Context, kind schema.Kind, id string, policy store.ArchivePolicy) (models.Entity, error) {
	desc, err := schema.Lookup(string(kind))
	if err != nil {
		return nil, err
	}
	rec := desc.New()
	q := s.db.WithContext(ctx).Where("id = ?", id)
	if policy == store.ExcludeArchived && desc.HasArchive {
		q = q.Where("archive = ?", false)
	}
	if err := q.First(rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return rec, nil
}

func (s *Store) Create(ctx context.Context, kind schema.Kind, record models.Entity) error {
	if _, err := schema.Lookup(string(kind)); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Create(record).Error
}

func (s *Store) Update(ctx context.Context, kind schema.Kind, record models.Entity) error {
	if _, err := schema.Lookup(string(kind)); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Save(record).Error
}

// Query store.

func (s *Store) CreateQuery(ctx context.Context, q *models.Query) error {
	return s.db.WithContext(ctx).Create(q).Error
}

func (s *Store) ListQueries(ctx context.Context, opts store.ListOptions) ([]models.Query, int64, error) {
	opts = opts.Normalize()
	q := s.db.WithContext(ctx).Model(&models.Query{})
	if opts.Search != "" {
		term := "%" + strings.ToLower(opts.Search) + "%"
		q = q.Where(
			"LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(phone) LIKE ? OR LOWER(query) LIKE ?",
			term, term, term, term, term,
		)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var queries []models.Query
	if err := q.Order("created_at DESC, id DESC").Offset(opts.Offset()).Limit(opts.Limit).Find(&queries).Error; err != nil {
		return nil, 0, err
	}
	return queries, total, nil
}

func (s *Store) DeleteQuery(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Query{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// Settings store.

func (s *Store) GetSettings(ctx context.Context) (*models.Settings, error) {
	var settings models.Settings
	if err := s.db.WithContext(ctx).First(&settings).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return &settings, nil
}

func (s *Store) SaveSettings(ctx context.Context, settings *models.Settings) error {
	if settings.ID == 0 {
		var existing models.Settings
		err := s.db.WithContext(ctx).First(&existing).Error
		switch {
		case err == nil:
			settings.ID = existing.ID
		case errors.Is(err, gorm.ErrRecordNotFound):
			// first write creates the singleton
		default:
			return err
		}
	}
	return s.db.WithContext(ctx).Save(settings).Error
}

// User store.

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *Store) CreateUser(ctx context.Context, u *models.User) error {
	return s.db.WithContext(ctx).Create(u).Error
}
