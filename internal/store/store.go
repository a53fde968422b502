// Package store declares the persistence ports the services depend on. Two
// implementations exist: gormstore (MySQL/SQLite through GORM) and memory
// (in-process fake used by the tests).
package store

import (
	"context"
	"errors"

	"github.com/Kunal-1408/deployed-portfolio-sub001/internal/models"
	"github.com/Kunal-1408/deployed-portfolio-sub001/internal/schema"
)

var (
	// ErrNotFound means the addressed record does not exist.
	ErrNotFound = errors.New("record not found")
)

// ArchivePolicy controls whether archived records are visible to a lookup.
// Listings never filter on the archive flag while the brand detail lookup
// does; both behaviors stay addressable by name instead of being unified.
type ArchivePolicy int

const (
	IncludeArchived ArchivePolicy = iota
	ExcludeArchived
)

// ListOptions carries pagination and search input. Page is 1-based.
type ListOptions struct {
	Page   int
	Limit  int
	Search string
}

// Offset is the number of records skipped before the requested page.
func (o ListOptions) Offset() int {
	return (o.Page - 1) * o.Limit
}

// Normalize applies the listing defaults: page 1, ten records per page.
func (o ListOptions) Normalize() ListOptions {
	if o.Page < 1 {
		o.Page = 1
	}
	if o.Limit < 1 {
		o.Limit = 10
	}
	return o
}

// ContentStore is the persistence port for the four content entity kinds.
// The search term follows the predicate contract: empty matches everything,
// text fields match by case-insensitive substring, tags by exact element.
type ContentStore interface {
	// ListHighlighted returns every highlighted record matching the search
	// term, unpaginated.
	ListHighlighted(ctx context.Context, kind schema.Kind, search string) ([]models.Entity, error)

	// ListPage returns one page of non-highlighted records matching the
	// search term, most recent first.
	ListPage(ctx context.Context, kind schema.Kind, search string, offset, limit int) ([]models.Entity, error)

	// CountMatches returns the total and highlighted counts for the term.
	CountMatches(ctx context.Context, kind schema.Kind, search string) (total, highlighted int64, err error)

	GetByID(ctx context.Context, kind schema.Kind, id string, policy ArchivePolicy) (models.Entity, error)
	Create(ctx context.Context, kind schema.Kind, record models.Entity) error
	Update(ctx context.Context, kind schema.Kind, record models.Entity) error
}

// QueryStore persists contact-form submissions.
type QueryStore interface {
	CreateQuery(ctx context.Context, q *models.Query) error
	// ListQueries returns one page of queries, most recent first, plus the
	// total match count.
	ListQueries(ctx context.Context, opts ListOptions) ([]models.Query, int64, error)
	DeleteQuery(ctx context.Context, id string) error
}

// SettingsStore persists the site-wide singleton.
type SettingsStore interface {
	GetSettings(ctx context.Context) (*models.Settings, error)
	SaveSettings(ctx context.Context, s *models.Settings) error
}

// UserStore looks up and seeds admin accounts.
type UserStore interface {
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, u *models.User) error
}
