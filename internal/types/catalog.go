package types

// Criterion is a single atomic evaluation instruction. Criteria are created
// once at process start from the embedded catalog and never mutated.
type Criterion struct {
	ID          string `json:"id"`
	CategoryID  string `json:"category_id"`
	Description string `json:"description"`
}

// Category is a named, prioritized grouping of related criteria. Priority 1 is
// the highest. CriteriaWeights may be sparse; unset weights default to uniform
// and the aggregator renormalizes by the total weight actually used.
type Category struct {
	ID              string             `json:"id"`
	DisplayName     string             `json:"display_name"`
	Priority        int                `json:"priority"`
	CriteriaIDs     []string           `json:"criteria_ids"`
	CriteriaWeights map[string]float64 `json:"criteria_weights,omitempty"`
	Scope           Scope              `json:"scope"`
}

// Weight returns the aggregation weight for a criterion in this category,
// defaulting to uniform when no explicit weight is configured.
func (c *Category) Weight(criterionID string) float64 {
	if w, ok := c.CriteriaWeights[criterionID]; ok {
		return w
	}
	if len(c.CriteriaIDs) == 0 {
		return 0
	}
	return 1.0 / float64(len(c.CriteriaIDs))
}
