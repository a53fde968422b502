// Package service holds the business rules between the HTTP handlers and the
// store ports.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"

	"github.com/Kunal-1408/deployed-portfolio-sub001/internal/models"
	"github.com/Kunal-1408/deployed-portfolio-sub001/internal/schema"
	"github.com/Kunal-1408/deployed-portfolio-sub001/internal/store"
)

// ErrInvalidPayload marks upsert payloads whose field values cannot be
// applied to the kind's record shape.
var ErrInvalidPayload = errors.New("invalid field payload")

// HighlightPolicy names the two behaviors for highlighted records in a
// listing. The deployed site repeats the full highlighted set on every page,
// so that stays the default; PinnedOnce is the corrected variant that shows
// the set on the first page only.
type HighlightPolicy int

const (
	HighlightRepeat HighlightPolicy = iota
	HighlightPinnedOnce
)

// ListResult is the listing payload: the highlighted records followed by one
// page of non-highlighted ones, plus the counts over the whole match set.
type ListResult struct {
	Items            []models.Entity `json:"items"`
	Total            int64           `json:"total"`
	HighlightedCount int64           `json:"highlightedCount"`
}

type ContentService struct {
	store     store.ContentStore
	highlight HighlightPolicy
}

func NewContentService(s store.ContentStore, policy HighlightPolicy) *ContentService {
	return &ContentService{store: s, highlight: policy}
}

// List returns highlighted matches first, then one page of non-highlighted
// matches. Total counts the whole match set, not the returned page.
func (s *ContentService) List(ctx context.Context, kind string, opts store.ListOptions) (ListResult, error) {
	desc, err := schema.Lookup(kind)
	if err != nil {
		return ListResult{}, err
	}
	opts = opts.Normalize()

	items := []models.Entity{}
	if s.highlight == HighlightRepeat || opts.Page == 1 {
		highlighted, err := s.store.ListHighlighted(ctx, desc.Kind, opts.Search)
		if err != nil {
			return ListResult{}, err
		}
		items = append(items, highlighted...)
	}

	page, err := s.store.ListPage(ctx, desc.Kind, opts.Search, opts.Offset(), opts.Limit)
	if err != nil {
		return ListResult{}, err
	}
	items = append(items, page...)

	total, highlightedCount, err := s.store.CountMatches(ctx, desc.Kind, opts.Search)
	if err != nil {
		return ListResult{}, err
	}
	return ListResult{Items: items, Total: total, HighlightedCount: highlightedCount}, nil
}

// DefaultArchivePolicy returns the archive visibility the deployed site uses
// for a detail lookup: brands hide archived records, every other kind does
// not. Listings never filter on the flag at all.
func DefaultArchivePolicy(kind schema.Kind) store.ArchivePolicy {
	if kind == schema.KindBrand {
		return store.ExcludeArchived
	}
	return store.IncludeArchived
}

// Get looks up a single record by kind and id under the given archive policy.
func (s *ContentService) Get(ctx context.Context, kind, id string, policy store.ArchivePolicy) (models.Entity, error) {
	desc, err := schema.Lookup(kind)
	if err != nil {
		return nil, err
	}
	return s.store.GetByID(ctx, desc.Kind, id, policy)
}

// GetDefault is Get under the kind's default archive policy.
func (s *ContentService) GetDefault(ctx context.Context, kind, id string) (models.Entity, error) {
	desc, err := schema.Lookup(kind)
	if err != nil {
		return nil, err
	}
	return s.store.GetByID(ctx, desc.Kind, id, DefaultArchivePolicy(desc.Kind))
}

// Upsert creates a record when the payload carries no id and updates the
// addressed record otherwise. Only fields on the kind's allow-list are
// applied; an update leaves unsubmitted fields untouched. The returned bool
// is true when a record was created.
func (s *ContentService) Upsert(ctx context.Context, kind string, payload map[string]any) (models.Entity, bool, error) {
	desc, err := schema.Lookup(kind)
	if err != nil {
		return nil, false, err
	}
	fields := desc.AllowFields(payload)
	id, _ := payload["id"].(string)

	if id == "" {
		rec := desc.New()
		if err := decodeFields(fields, rec); err != nil {
			return nil, false, err
		}
		rec.SetID(uuid.NewString())
		if err := s.store.Create(ctx, desc.Kind, rec); err != nil {
			return nil, false, err
		}
		return rec, true, nil
	}

	rec, err := s.store.GetByID(ctx, desc.Kind, id, store.IncludeArchived)
	if err != nil {
		return nil, false, err
	}
	if err := decodeFields(fields, rec); err != nil {
		return nil, false, err
	}
	if err := s.store.Update(ctx, desc.Kind, rec); err != nil {
		return nil, false, err
	}
	return rec, false, nil
}

// decodeFields applies a JSON-shaped field map onto a typed record. Absent
// keys leave the target fields alone, which is what gives updates their
// partial semantics.
func decodeFields(fields map[string]any, rec models.Entity) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           rec,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(fields); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return nil
}
