package models

import "time"

// Entity is implemented by every content record kind so the stores and
// services can handle them uniformly.
type Entity interface {
	GetID() string
	SetID(id string)
	IsHighlighted() bool
	IsArchived() bool
	Clone() Entity
}

// Stat is a display-only key/value pair attached to brand and social records.
type Stat struct {
	Label string `json:"label" mapstructure:"label"`
	Value string `json:"value" mapstructure:"value"`
}

type Website struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id" mapstructure:"id"`
	Title       string    `gorm:"size:255" json:"Title" mapstructure:"Title"`
	Status      string    `gorm:"size:50" json:"Status" mapstructure:"Status"`
	Description string    `gorm:"type:text" json:"Description" mapstructure:"Description"`
	Tags        []string  `gorm:"serializer:json" json:"Tags" mapstructure:"Tags"`
	Highlighted bool      `gorm:"default:false" json:"highlighted" mapstructure:"highlighted"`
	Archive     bool      `gorm:"default:false" json:"archive" mapstructure:"archive"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Brand struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id" mapstructure:"id"`
	Brand       string    `gorm:"size:255" json:"Brand" mapstructure:"Brand"`
	Description string    `gorm:"type:text" json:"Description" mapstructure:"Description"`
	Logo        string    `gorm:"size:512" json:"Logo" mapstructure:"Logo"`
	Banner      string    `gorm:"size:512" json:"banner" mapstructure:"banner"`
	Stats       []Stat    `gorm:"serializer:json" json:"Stats" mapstructure:"Stats"`
	Tags        []string  `gorm:"serializer:json" json:"tags" mapstructure:"tags"`
	Highlighted bool      `gorm:"default:false" json:"highlighted" mapstructure:"highlighted"`
	Archive     bool      `gorm:"default:false" json:"archive" mapstructure:"archive"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Design struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id" mapstructure:"id"`
	Banner      string    `gorm:"size:512" json:"Banner" mapstructure:"Banner"`
	Brands      string    `gorm:"size:255" json:"Brands" mapstructure:"Brands"`
	Description string    `gorm:"type:text" json:"Description" mapstructure:"Description"`
	Logo        string    `gorm:"size:512" json:"Logo" mapstructure:"Logo"`
	Type        string    `gorm:"size:100" json:"Type" mapstructure:"Type"`
	Tags        []string  `gorm:"serializer:json" json:"tags" mapstructure:"tags"`
	Highlighted bool      `gorm:"default:false" json:"highlighted" mapstructure:"highlighted"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Social carries the same field shape as Brand.
type Social struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id" mapstructure:"id"`
	Brand       string    `gorm:"size:255" json:"Brand" mapstructure:"Brand"`
	Description string    `gorm:"type:text" json:"Description" mapstructure:"Description"`
	Logo        string    `gorm:"size:512" json:"Logo" mapstructure:"Logo"`
	Banner      string    `gorm:"size:512" json:"banner" mapstructure:"banner"`
	Stats       []Stat    `gorm:"serializer:json" json:"Stats" mapstructure:"Stats"`
	Tags        []string  `gorm:"serializer:json" json:"tags" mapstructure:"tags"`
	Highlighted bool      `gorm:"default:false" json:"highlighted" mapstructure:"highlighted"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (w *Website) GetID() string       { return w.ID }
func (w *Website) SetID(id string)     { w.ID = id }
func (w *Website) IsHighlighted() bool { return w.Highlighted }
func (w *Website) IsArchived() bool    { return w.Archive }
func (w *Website) Clone() Entity {
	cp := *w
	cp.Tags = append([]string(nil), w.Tags...)
	return &cp
}

func (b *Brand) GetID() string       { return b.ID }
func (b *Brand) SetID(id string)     { b.ID = id }
func (b *Brand) IsHighlighted() bool { return b.Highlighted }
func (b *Brand) IsArchived() bool    { return b.Archive }
func (b *Brand) Clone() Entity {
	cp := *b
	cp.Tags = append([]string(nil), b.Tags...)
	cp.Stats = append([]Stat(nil), b.Stats...)
	return &cp
}

func (d *Design) GetID() string       { return d.ID }
func (d *Design) SetID(id string)     { d.ID = id }
func (d *Design) IsHighlighted() bool { return d.Highlighted }
func (d *Design) IsArchived() bool    { return false }
func (d *Design) Clone() Entity {
	cp := *d
	cp.Tags = append([]string(nil), d.Tags...)
	return &cp
}

func (s *Social) GetID() string       { return s.ID }
func (s *Social) SetID(id string)     { s.ID = id }
func (s *Social) IsHighlighted() bool { return s.Highlighted }
func (s *Social) IsArchived() bool    { return false }
func (s *Social) Clone() Entity {
	cp := *s
	cp.Tags = append([]string(nil), s.Tags...)
	cp.Stats = append([]Stat(nil), s.Stats...)
	return &cp
}
