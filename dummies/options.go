// SPDX-License-Identifier: MIT

// Package dummies: functional configuration for expansion.
//
// Design goals:
//   - Deterministic output regardless of worker count.
//   - Last writer wins: options are applied left to right.
//   - Panics only on nonsensical values (unknown enum, workers < 1).
package dummies

import "runtime"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultOrder keeps categories in first-seen order.
	DefaultOrder = FirstSeen

	// DefaultUnknown reports unseen categories as per-record failures.
	DefaultUnknown = Fail

	// DefaultTrimSpace keeps tokens byte-exact.
	DefaultTrimSpace = false

	// DefaultFailFast keeps batches running past per-record failures.
	DefaultFailFast = false

	// DefaultWorkers of 0 resolves to runtime.GOMAXPROCS(0) at call time.
	DefaultWorkers = 0
)

// minChunk is the smallest number of records handed to one worker.
const minChunk = 256

// ---------- Internal panic messages ----------

const (
	panicOrderInvalid   = "dummies: WithOrder: order must be FirstSeen or Sorted"
	panicUnknownInvalid = "dummies: WithUnknown: policy must be Fail or Drop"
	panicWorkersInvalid = "dummies: WithWorkers: n must be >= 1"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*options)

type options struct {
	order     Order
	unknown   UnknownPolicy
	trimSpace bool
	failFast  bool
	workers   int
}

func gatherOptions(opts ...Option) options {
	o := options{
		order:     DefaultOrder,
		unknown:   DefaultUnknown,
		trimSpace: DefaultTrimSpace,
		failFast:  DefaultFailFast,
		workers:   DefaultWorkers,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// effectiveWorkers resolves the worker count for a batch of n records.
func (o options) effectiveWorkers(n int) int {
	w := o.workers
	if w <= 0 {
		w = runtime.GOMAXPROCS(0)
	}
	if byChunk := (n + minChunk - 1) / minChunk; byChunk < w {
		w = byChunk
	}

	return max(w, 1)
}

// WithOrder selects first-seen or sorted vocabulary order.
// Ignored by Vocabulary.Expand, whose order is already frozen.
func WithOrder(order Order) Option {
	if order != FirstSeen && order != Sorted {
		panic(panicOrderInvalid)
	}

	return func(o *options) { o.order = order }
}

// WithUnknown selects the policy for tokens missing from a frozen vocabulary.
func WithUnknown(p UnknownPolicy) Option {
	if p != Fail && p != Drop {
		panic(panicUnknownInvalid)
	}

	return func(o *options) { o.unknown = p }
}

// WithTrimSpace trims leading and trailing white space from every token,
// so "Action | Comedy" yields "Action" and "Comedy".
func WithTrimSpace() Option {
	return func(o *options) { o.trimSpace = true }
}

// WithFailFast makes Vocabulary.Expand return the first failing record as
// *RecordError instead of tagging it in the results.
func WithFailFast() Option {
	return func(o *options) { o.failFast = true }
}

// WithWorkers bounds the number of goroutines populating rows.
// Panics when n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *options) { o.workers = n }
}
