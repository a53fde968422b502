package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/Kunal-1408/deployed-portfolio-sub001/internal/models"
	"github.com/Kunal-1408/deployed-portfolio-sub001/internal/store"
)

// QueryInput is a contact-form submission. Every field is required; the
// handler enforces that through request binding.
type QueryInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Query     string
}

type QueryService struct {
	store store.QueryStore
}

func NewQueryService(s store.QueryStore) *QueryService {
	return &QueryService{store: s}
}

// Create always inserts; contact-form submissions are never upserted.
func (s *QueryService) Create(ctx context.Context, in QueryInput) (*models.Query, error) {
	q := &models.Query{
		ID:        uuid.NewString(),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Phone:     in.Phone,
		Query:     in.Query,
	}
	if err := s.store.CreateQuery(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}

// List returns one page of queries, most recent first. Queries have no
// highlight concept, so there is no pinned subset.
func (s *QueryService) List(ctx context.Context, opts store.ListOptions) ([]models.Query, int64, error) {
	return s.store.ListQueries(ctx, opts.Normalize())
}

// Delete removes a query by id. A missing record surfaces as an error rather
// than silent success.
func (s *QueryService) Delete(ctx context.Context, id string) error {
	return s.store.DeleteQuery(ctx, id)
}
