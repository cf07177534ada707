package recommendations

// Priorities order recommendations for display.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Recommendation is a clinical suggestion sourced entirely from the static
// mapping tables. Instances are never mutated after construction.
type Recommendation struct {
	Title    string   `json:"title"`
	Actions  []string `json:"actions"`
	Priority string   `json:"priority"`
}

// clone returns a defensive copy so callers cannot mutate table entries
// through a returned slice.
func (r Recommendation) clone() Recommendation {
	out := r
	out.Actions = append([]string(nil), r.Actions...)
	return out
}
