package rules

import (
	"errors"

	"github.com/katalvlaran/basket/apriori"
)

var (
	// ErrBadConfidence indicates MinConfidence is outside [0, 1].
	ErrBadConfidence = errors.New("rules: MinConfidence must be in [0, 1]")
	// ErrBadLift indicates MinLift is negative.
	ErrBadLift = errors.New("rules: MinLift must be >= 0")
	// ErrBadSortKey indicates SortBy is not a known metric.
	ErrBadSortKey = errors.New("rules: unknown sort key")
	// ErrInconsistent indicates the frequent-itemset list is missing the
	// support of a subset it must contain (input was not produced by a
	// complete Apriori run).
	ErrInconsistent = errors.New("rules: frequent list missing a subset support")
)

// Rule is one scored association rule A → C.
type Rule struct {
	Antecedent apriori.Itemset
	Consequent apriori.Itemset

	Count int // transactions containing A∪C

	Support    float64 // supp(A∪C)
	AntSupport float64 // supp(A)
	ConSupport float64 // supp(C)

	Confidence float64
	Lift       float64
	Cosine     float64
	Jaccard    float64
	RPF        float64 // rule power factor
}

// SortKey selects the metric rules are ordered by.
type SortKey int

const (
	// ByConfidence orders rules by confidence (default).
	ByConfidence SortKey = iota
	// BySupport orders rules by joint support.
	BySupport
	// ByLift orders rules by lift.
	ByLift
	// ByCosine orders rules by cosine.
	ByCosine
	// ByJaccard orders rules by the Jaccard coefficient.
	ByJaccard
	// ByRPF orders rules by rule power factor.
	ByRPF
)

// String returns the lower-case metric name (used by the CLI/config layer).
func (k SortKey) String() string {
	switch k {
	case ByConfidence:
		return "confidence"
	case BySupport:
		return "support"
	case ByLift:
		return "lift"
	case ByCosine:
		return "cosine"
	case ByJaccard:
		return "jaccard"
	case ByRPF:
		return "rpf"
	default:
		return "unknown"
	}
}

// ParseSortKey maps a metric name to its SortKey.
func ParseSortKey(name string) (SortKey, error) {
	switch name {
	case "confidence":
		return ByConfidence, nil
	case "support":
		return BySupport, nil
	case "lift":
		return ByLift, nil
	case "cosine":
		return ByCosine, nil
	case "jaccard":
		return ByJaccard, nil
	case "rpf":
		return ByRPF, nil
	default:
		return 0, ErrBadSortKey
	}
}

// Options configures Generate.
//
// Fields:
//   - MinConfidence — drop rules below this confidence, in [0, 1].
//   - MinLift       — drop rules below this lift (0 keeps everything).
//   - SortBy        — metric to order the output by.
//   - Ascending     — reverse the default descending order.
type Options struct {
	MinConfidence float64
	MinLift       float64
	SortBy        SortKey
	Ascending     bool
}

// DefaultOptions returns the documented defaults: no thresholds, rules
// ordered by descending confidence.
func DefaultOptions() Options {
	return Options{MinConfidence: 0, MinLift: 0, SortBy: ByConfidence}
}

// validate checks Options consistency; only sentinels are returned.
func (o Options) validate() error {
	if o.MinConfidence < 0 || o.MinConfidence > 1 {
		return ErrBadConfidence
	}
	if o.MinLift < 0 {
		return ErrBadLift
	}
	switch o.SortBy {
	case ByConfidence, BySupport, ByLift, ByCosine, ByJaccard, ByRPF:
		return nil
	default:
		return ErrBadSortKey
	}
}
