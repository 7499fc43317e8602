package learner

import (
	"fmt"

	"github.com/brobeson/struck/geometry"
	"github.com/brobeson/struck/kernel"
)

// processOldOptimizeIterations is K_OPT from spec.md §4.3.6 / §9: the
// number of optimize() calls run after process-old on every Update. The
// source doesn't explain why 10 rather than the paper's 1; kept as a
// tunable constant.
const processOldOptimizeIterations = 10

// Variant selects the SVM discriminant flavor.
type Variant int

const (
	// Standard applies no fuzziness scaling.
	Standard Variant = iota
	// Fuzzy attenuates the discriminant by translation magnitude.
	Fuzzy
)

// Config holds the knobs the core recognizes (spec.md §6.3).
type Config struct {
	C             float64
	BudgetSize    int
	ProcessOld    bool
	OptimizeAll   bool
	Variant       Variant
	ImageDiagonal float64 // required, > 0, when Variant == Fuzzy
	Seed          int64
}

// Learner is the online structured-output SVM: a support store, an
// optimizer, and a budget manager wired together per spec.md §2.
type Learner struct {
	store  *store
	scorer *scorer
	opt    *optimizer
	budget *budgetManager
	config Config
}

// New constructs a Learner. It fails with ErrInvalidGeometry when the
// fuzzy variant is requested with a non-positive image diagonal (spec.md
// §4.1, §7).
func New(config Config, k kernel.Function, loss Loss, manipulator Manipulator) (*Learner, error) {
	fuzzy := config.Variant == Fuzzy
	if fuzzy && config.ImageDiagonal <= 0 {
		return nil, fmt.Errorf("learner: fuzzy variant requires a positive image diagonal, got %v: %w", config.ImageDiagonal, ErrInvalidGeometry)
	}

	st := newStore(k, fuzzy, config.ImageDiagonal)
	sc := &scorer{store: st}

	l := &Learner{
		store:  st,
		scorer: sc,
		opt: &optimizer{
			store:       st,
			scorer:      sc,
			loss:        loss,
			manipulator: manipulator,
			c:           config.C,
			kOpt:        processOldOptimizeIterations,
			optimizeAll: config.OptimizeAll,
			rng:         newRNG(config.Seed),
		},
		budget: &budgetManager{store: st, size: config.BudgetSize},
		config: config,
	}
	return l, nil
}

// Eval scores every (feature, label) pair in batch against the current
// support vector set (spec.md §6.1, §4.1).
func (l *Learner) Eval(batch []Sample) []float64 {
	return l.scorer.scoreBatch(batch)
}

// Update ingests one new observation as a support pattern, runs
// process-new (and, if enabled, process-old plus K_OPT optimize passes),
// then enforces the budget (spec.md §4.3.6).
//
// Validation happens before any mutation: a call that returns an error
// leaves the learner's state unchanged (spec.md §7).
func (l *Learner) Update(images []any, features [][]float64, labels []geometry.Box, ground int) error {
	if len(features) != len(labels) {
		return fmt.Errorf("learner: update got %d feature vectors and %d labels: %w", len(features), len(labels), ErrInconsistentBatch)
	}
	if ground < 0 || ground >= len(labels) {
		return fmt.Errorf("learner: ground index %d out of range [0,%d): %w", ground, len(labels), ErrInvalidIndex)
	}

	p := l.store.addPattern(images, features, labels, ground)
	l.opt.processNew(p)

	if l.config.ProcessOld {
		l.opt.processOld()
		for i := 0; i < l.opt.kOpt; i++ {
			l.opt.optimize()
		}
	}

	return l.budget.maintain()
}

// Debug returns a diagnostic snapshot of the learner's internal state
// (spec.md §6.1, optional).
type Debug struct {
	Patterns          int
	Vectors           int
	Dual              float64
	IllConditionedSMO int
	Evictions         int
}

// Debug reports the learner's current support-set size and dual
// objective value.
func (l *Learner) Debug() Debug {
	return Debug{
		Patterns:          l.store.numPatterns(),
		Vectors:           l.store.numVectors(),
		Dual:              l.opt.computeDual(),
		IllConditionedSMO: l.opt.illConditioned,
		Evictions:         l.budget.evictions,
	}
}
