// Package dijkstra defines core types and configuration options
// for uniform-cost (Dijkstra) search over implicit weighted graphs.
//
// The graph is never materialized: a Space describes it by generating the
// outgoing edges of a node on demand and by recognising goal nodes. The
// search expands nodes in increasing order of cumulative cost and stops at
// the first goal node it pops, which is optimal because no edge cost is
// negative.
//
// Options:
//
//	– ReturnPath:    if true, Result.Path holds the nodes from start to goal.
//	– Memo:          if true (default), keep the best known cost per node and
//	                 never expand a node twice.
//	– MaxCost:       frontier entries whose cost exceeds this are never expanded.
//	– MaxExpansions: hard bound on expanded nodes (0 = unbounded).
//	– Logger:        structured logger for start/progress/finish records.
//	– ProgressEvery: log a progress record every N expansions.
//
// Errors (sentinel):
//
//	– ErrNilSpace         if the provided Space is nil.
//	– ErrUnsolvable       if the frontier empties before a goal is popped.
//	– ErrNegativeWeight   if a Space emits an edge with negative cost.
//	– ErrExpansionLimit   if MaxExpansions is reached before a goal.
//	– ErrBadMaxCost       if MaxCost < 0.
//	– ErrBadMaxExpansions if MaxExpansions < 0.
//	– ErrBadProgressEvery if ProgressEvery <= 0.
package dijkstra

import (
	"errors"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/constraints"
)

// Sentinel errors returned by Search.
var (
	// ErrNilSpace indicates that a nil Space was passed to Search.
	ErrNilSpace = errors.New("dijkstra: space is nil")

	// ErrUnsolvable indicates that every reachable node was explored and none
	// of them is a goal.
	ErrUnsolvable = errors.New("dijkstra: no goal reachable from start")

	// ErrNegativeWeight indicates that a Space produced an edge with negative cost.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrExpansionLimit indicates that the configured MaxExpansions was reached.
	ErrExpansionLimit = errors.New("dijkstra: expansion limit reached")

	// ErrBadMaxCost indicates that MaxCost was set to a negative value.
	ErrBadMaxCost = errors.New("dijkstra: MaxCost must be non-negative")

	// ErrBadMaxExpansions indicates that MaxExpansions was set to a negative value.
	ErrBadMaxExpansions = errors.New("dijkstra: MaxExpansions must be non-negative")

	// ErrBadProgressEvery indicates that ProgressEvery was set to zero or a negative value.
	ErrBadProgressEvery = errors.New("dijkstra: ProgressEvery must be positive")
)

// Edge is an outgoing transition to node To with incremental Cost.
type Edge[N comparable, C constraints.Integer] struct {
	To   N
	Cost C
}

// Space is an implicit weighted graph.
//
// Successors must be deterministic for a given node and must not retain or
// mutate n; IsGoal must be a pure predicate.
type Space[N comparable, C constraints.Integer] interface {
	Successors(n N) []Edge[N, C]
	IsGoal(n N) bool
}

// Stats counts the work done by one Search call.
type Stats struct {
	Expanded int // nodes popped and expanded
	Pushed   int // entries pushed onto the frontier (start included)
	Stale    int // popped entries skipped because a cheaper copy was already expanded
}

// Result is the outcome of a successful Search.
type Result[N comparable, C constraints.Integer] struct {
	Cost  C   // cumulative cost of the cheapest path to Goal
	Goal  N   // the goal node reached
	Path  []N // start … goal, only when ReturnPath is set
	Stats Stats
}

// Options configures the behavior of Search.
//
// MaxCost and MaxExpansions use -1 / 0 as "no limit" sentinels; they are
// stored as int64 so a single Options type serves every cost type.
type Options struct {
	ReturnPath    bool               // Whether to reconstruct Result.Path
	Memo          bool               // Whether to prune by best known cost per node
	MaxCost       int64              // Maximum cumulative cost to expand (-1 = no cap)
	MaxExpansions int                // Maximum number of expansions (0 = no cap)
	Logger        logrus.FieldLogger // Destination for search records
	ProgressEvery int                // Expansions between progress records
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// WithReturnPath enables reconstruction of the start→goal node sequence.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithoutMemo disables best-cost pruning. The answer is unchanged but every
// path to a node is expanded, which is exponential on most spaces.
func WithoutMemo() Option {
	return func(o *Options) {
		o.Memo = false
	}
}

// WithMaxCost caps the cumulative cost that will be expanded.
// Must pass a non-negative value; negative values panic with ErrBadMaxCost.
func WithMaxCost(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = max
	}
}

// WithMaxExpansions bounds the number of expanded nodes, and with it the
// memory held by the frontier and the memo. Zero means unbounded.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadMaxExpansions.Error())
		}
		o.MaxExpansions = n
	}
}

// WithLogger routes search records to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithProgressEvery sets how many expansions pass between progress records.
func WithProgressEvery(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadProgressEvery.Error())
		}
		o.ProgressEvery = n
	}
}

// log is the package logger used when no WithLogger option is given.
// Search only writes at Debug level, so it is silent by default.
var log = newDefaultLogger()

func newDefaultLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.WarnLevel)

	return l
}

// SetLogLevel adjusts the package default logger.
func SetLogLevel(level logrus.Level) {
	log.SetLevel(level)
}

// DefaultOptions returns an Options struct initialized with sensible defaults.
//
// Defaults:
//   - ReturnPath:    false.
//   - Memo:          true.
//   - MaxCost:       -1 (no cap).
//   - MaxExpansions: 0 (no cap).
//   - Logger:        package logger (Warn level).
//   - ProgressEvery: 100000.
func DefaultOptions() Options {
	return Options{
		ReturnPath:    false,
		Memo:          true,
		MaxCost:       -1,
		MaxExpansions: 0,
		Logger:        log,
		ProgressEvery: 100000,
	}
}
