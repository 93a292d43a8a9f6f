package catalog

import (
	"errors"
	"fmt"
)

// DatasetType is the curation flag that constrains the selectable variants.
type DatasetType string

const (
	Uncurated DatasetType = "No Curated"
	Curated   DatasetType = "Curated"
)

// DefaultTrendingFile is the trending table shipped with the datasets.
const DefaultTrendingFile = "df_BB_to_app.csv"

// Variant is one selectable main dataset.
type Variant struct {
	Description string
	File        string
	Curated     bool
}

// Type returns the dataset type the variant is listed under.
func (v Variant) Type() DatasetType {
	if v.Curated {
		return Curated
	}
	return Uncurated
}

// DefaultVariants are the clusterings produced by the dataset build.
var DefaultVariants = []Variant{
	{Description: "6 Clusters, 9 Columns", File: "dataset_with_categories_k6_9cols.csv"},
	{Description: "10 Clusters, 12 Columns", File: "dataset_with_categories_k10_12cols.csv"},
	{Description: "12 Clusters, 10 Columns", File: "dataset_with_categories_k12_10cols.csv"},
	{Description: "12 Clusters, 12 Columns", File: "dataset_with_categories_k12_12cols.csv"},
	{Description: "Curated: 10 Clusters, 12 Columns", File: "curated_dataset_with_categories_k10_12cols.csv", Curated: true},
}

var (
	// ErrNoVariants is returned when a registry is built from an empty list.
	ErrNoVariants = errors.New("no dataset variants configured")
	// ErrDuplicateVariant is returned when two variants share a description.
	ErrDuplicateVariant = errors.New("duplicate dataset variant")
)

// Registry maps variant descriptions to dataset files.
type Registry struct {
	variants []Variant
	byDesc   map[string]int
}

// NewRegistry builds a registry. Variant order is kept for display.
func NewRegistry(variants []Variant) (*Registry, error) {
	if len(variants) == 0 {
		return nil, ErrNoVariants
	}
	r := &Registry{byDesc: make(map[string]int, len(variants))}
	for _, v := range variants {
		if _, dup := r.byDesc[v.Description]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateVariant, v.Description)
		}
		r.byDesc[v.Description] = len(r.variants)
		r.variants = append(r.variants, v)
	}
	return r, nil
}

// Types returns the dataset types that have at least one variant,
// uncurated first.
func (r *Registry) Types() []DatasetType {
	var types []DatasetType
	for _, t := range []DatasetType{Uncurated, Curated} {
		if len(r.Variants(t)) > 0 {
			types = append(types, t)
		}
	}
	return types
}

// Variants returns the variants listed under a dataset type.
func (r *Registry) Variants(t DatasetType) []Variant {
	var out []Variant
	for _, v := range r.variants {
		if v.Type() == t {
			out = append(out, v)
		}
	}
	return out
}

// All returns every variant in registration order.
func (r *Registry) All() []Variant {
	return append([]Variant(nil), r.variants...)
}

// Lookup finds a variant by description.
func (r *Registry) Lookup(description string) (Variant, bool) {
	i, ok := r.byDesc[description]
	if !ok {
		return Variant{}, false
	}
	return r.variants[i], true
}
