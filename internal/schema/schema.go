// Package schema describes the content entity kinds: which table each kind
// lives in, which text fields its search predicate spans, and which payload
// fields its upsert accepts. Both the stores and the upsert service consult
// these descriptors instead of switching on the kind by hand.
package schema

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Kunal-1408/deployed-portfolio-sub001/internal/models"
)

// ErrUnknownKind is returned when a wire name resolves to no registered kind.
var ErrUnknownKind = errors.New("unknown entity kind")

type Kind string

const (
	KindWebsite Kind = "websites"
	KindBrand   Kind = "brand"
	KindDesign  Kind = "design"
	KindSocial  Kind = "social"
)

// Descriptor is the per-kind schema consulted by the upsert service and the
// search predicate builders.
type Descriptor struct {
	Kind  Kind
	Table string

	// SearchFields are the payload names of the text fields matched by
	// case-insensitive substring search. Tag containment is separate and
	// applies to every kind.
	SearchFields []string

	// SearchColumns are the database columns backing SearchFields, in the
	// same order.
	SearchColumns []string

	// Allowed is the upsert field allow-list: payload keys outside this set
	// are dropped, never persisted.
	Allowed []string

	// HasArchive marks kinds that carry the soft-delete flag.
	HasArchive bool

	New      func() models.Entity
	NewSlice func() any
	Elems    func(slicePtr any) []models.Entity
}

var descriptors = map[Kind]Descriptor{
	KindWebsite: {
		Kind:          KindWebsite,
		Table:         "websites",
		SearchFields:  []string{"Title", "Description"},
		SearchColumns: []string{"title", "description"},
		Allowed:       []string{"Title", "Status", "Tags", "Description", "archive", "highlighted"},
		HasArchive:    true,
		New:           func() models.Entity { return &models.Website{} },
		NewSlice:      func() any { return new([]models.Website) },
		Elems: func(p any) []models.Entity {
			rows := *p.(*[]models.Website)
			out := make([]models.Entity, len(rows))
			for i := range rows {
				out[i] = &rows[i]
			}
			return out
		},
	},
	KindBrand: {
		Kind:          KindBrand,
		Table:         "brands",
		SearchFields:  []string{"Brand", "Description"},
		SearchColumns: []string{"brand", "description"},
		Allowed:       []string{"Brand", "Description", "Logo", "Stats", "banner", "highlighted", "tags"},
		HasArchive:    true,
		New:           func() models.Entity { return &models.Brand{} },
		NewSlice:      func() any { return new([]models.Brand) },
		Elems: func(p any) []models.Entity {
			rows := *p.(*[]models.Brand)
			out := make([]models.Entity, len(rows))
			for i := range rows {
				out[i] = &rows[i]
			}
			return out
		},
	},
	KindDesign: {
		Kind:          KindDesign,
		Table:         "designs",
		SearchFields:  []string{"Brands", "Description", "Type"},
		SearchColumns: []string{"brands", "description", "type"},
		Allowed:       []string{"Banner", "Brands", "Description", "Logo", "Type", "highlighted", "tags"},
		New:           func() models.Entity { return &models.Design{} },
		NewSlice:      func() any { return new([]models.Design) },
		Elems: func(p any) []models.Entity {
			rows := *p.(*[]models.Design)
			out := make([]models.Entity, len(rows))
			for i := range rows {
				out[i] = &rows[i]
			}
			return out
		},
	},
	KindSocial: {
		Kind:          KindSocial,
		Table:         "socials",
		SearchFields:  []string{"Brand", "Description"},
		SearchColumns: []string{"brand", "description"},
		Allowed:       []string{"Brand", "Description", "Logo", "Stats", "banner", "highlighted", "tags"},
		New:           func() models.Entity { return &models.Social{} },
		NewSlice:      func() any { return new([]models.Social) },
		Elems: func(p any) []models.Entity {
			rows := *p.(*[]models.Social)
			out := make([]models.Entity, len(rows))
			for i := range rows {
				out[i] = &rows[i]
			}
			return out
		},
	},
}

// Lookup resolves an entity kind from its wire name.
func Lookup(kind string) (Descriptor, error) {
	d, ok := descriptors[Kind(strings.ToLower(strings.TrimSpace(kind)))]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return d, nil
}

// Kinds returns every registered kind name.
func Kinds() []string {
	out := make([]string, 0, len(descriptors))
	for k := range descriptors {
		out = append(out, string(k))
	}
	return out
}

// AllowFields filters an upsert payload down to the kind's allow-list. The id
// is handled by the caller and is never part of the writable set.
func (d Descriptor) AllowFields(payload map[string]any) map[string]any {
	out := make(map[string]any, len(d.Allowed))
	for _, field := range d.Allowed {
		if v, ok := payload[field]; ok {
			out[field] = v
		}
	}
	return out
}

// TagsField is the payload name of the tag list for a kind.
func (d Descriptor) TagsField() string {
	if d.Kind == KindWebsite {
		return "Tags"
	}
	return "tags"
}
