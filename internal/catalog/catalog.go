// Package catalog provides the static registry of evaluation categories and
// criteria. The catalog is defined in an embedded JSON file, validated against
// a JSON Schema at load time, and read-only afterwards.
package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/kmatsu/story-checker/internal/schemas"
	"github.com/kmatsu/story-checker/internal/types"
)

//go:embed catalog.json catalog_schema.json
var catalogFiles embed.FS

// ConfigError indicates a structural problem in the catalog definition.
type ConfigError struct {
	Message string
	Cause   error
}

func (e *ConfigError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("catalog configuration error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("catalog configuration error: %s", e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Catalog holds the loaded categories and criteria. Categories are kept in
// priority order (1 = highest, evaluated first).
type Catalog struct {
	categories []types.Category
	criteria   map[string]types.Criterion
}

// catalogFile mirrors the embedded JSON layout.
type catalogFile struct {
	Categories []types.Category `json:"categories"`
	Criteria   []types.Criterion `json:"criteria"`
}

var (
	defaultCatalog *Catalog
	defaultErr     error
	loadOnce       sync.Once
)

// Default returns the process-wide catalog, loading it on first use.
func Default() (*Catalog, error) {
	loadOnce.Do(func() {
		defaultCatalog, defaultErr = Load()
	})
	return defaultCatalog, defaultErr
}

// Load reads, validates, and cross-checks the embedded catalog definition.
func Load() (*Catalog, error) {
	schemaData, err := catalogFiles.ReadFile("catalog_schema.json")
	if err != nil {
		return nil, &ConfigError{Message: "failed to read embedded schema", Cause: err}
	}
	catalogData, err := catalogFiles.ReadFile("catalog.json")
	if err != nil {
		return nil, &ConfigError{Message: "failed to read embedded catalog", Cause: err}
	}

	if err := schemas.Validate(string(schemaData), string(catalogData)); err != nil {
		return nil, &ConfigError{Message: "catalog does not match schema", Cause: err}
	}

	var file catalogFile
	if err := json.Unmarshal(catalogData, &file); err != nil {
		return nil, &ConfigError{Message: "failed to parse catalog JSON", Cause: err}
	}

	return New(file.Categories, file.Criteria)
}

// New builds a catalog from explicit categories and criteria, running the
// same cross-reference checks applied to the embedded definition.
func New(cats []types.Category, crits []types.Criterion) (*Catalog, error) {
	criteria := make(map[string]types.Criterion, len(crits))
	for _, crit := range crits {
		if _, exists := criteria[crit.ID]; exists {
			return nil, &ConfigError{Message: fmt.Sprintf("duplicate criterion id %q", crit.ID)}
		}
		criteria[crit.ID] = crit
	}

	seen := make(map[string]bool, len(cats))
	for _, cat := range cats {
		if seen[cat.ID] {
			return nil, &ConfigError{Message: fmt.Sprintf("duplicate category id %q", cat.ID)}
		}
		seen[cat.ID] = true

		for _, critID := range cat.CriteriaIDs {
			crit, ok := criteria[critID]
			if !ok {
				return nil, &ConfigError{Message: fmt.Sprintf("category %q references unknown criterion %q", cat.ID, critID)}
			}
			if crit.CategoryID != cat.ID {
				return nil, &ConfigError{Message: fmt.Sprintf("criterion %q belongs to %q, not %q", critID, crit.CategoryID, cat.ID)}
			}
		}
		for weighted := range cat.CriteriaWeights {
			if _, ok := criteria[weighted]; !ok {
				return nil, &ConfigError{Message: fmt.Sprintf("category %q weights unknown criterion %q", cat.ID, weighted)}
			}
		}
	}

	categories := make([]types.Category, len(cats))
	copy(categories, cats)
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Priority < categories[j].Priority
	})

	return &Catalog{categories: categories, criteria: criteria}, nil
}

// Categories returns all categories in priority order.
func (c *Catalog) Categories() []types.Category {
	out := make([]types.Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// Category returns a category by id.
func (c *Catalog) Category(id string) (types.Category, bool) {
	for _, cat := range c.categories {
		if cat.ID == id {
			return cat, true
		}
	}
	return types.Category{}, false
}

// Criterion returns a criterion by id.
func (c *Catalog) Criterion(id string) (types.Criterion, bool) {
	crit, ok := c.criteria[id]
	return crit, ok
}

// Criteria returns the criteria of a category in their declared order.
func (c *Catalog) Criteria(cat types.Category) []types.Criterion {
	out := make([]types.Criterion, 0, len(cat.CriteriaIDs))
	for _, id := range cat.CriteriaIDs {
		if crit, ok := c.criteria[id]; ok {
			out = append(out, crit)
		}
	}
	return out
}
