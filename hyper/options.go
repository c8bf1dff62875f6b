// SPDX-License-Identifier: MIT

package hyper

import "github.com/katalvlaran/hyperarray/layout"

// Order is the storage order of an array; see layout.Order.
type Order = layout.Order

// Storage orders, re-exported so callers rarely need to import layout.
const (
	RowMajor    = layout.RowMajor
	ColumnMajor = layout.ColumnMajor
)

// DefaultOrder is the storage order used when no option selects one.
const DefaultOrder = RowMajor

const panicOrderInvalid = "hyper: WithOrder: unknown storage order"

// Option configures array construction.
type Option func(*Options)

// Options holds construction settings. Fields are unexported; use the
// With* helpers.
type Options struct {
	order Order
}

// Order reports the configured storage order.
func (o Options) Order() Order { return o.order }

// WithOrder selects the storage order. It panics on a value outside the
// known orders: that is a programming error, not a runtime condition.
func WithOrder(o Order) Option {
	if !o.Valid() {
		panic(panicOrderInvalid)
	}

	return func(opts *Options) { opts.order = o }
}

// WithRowMajor selects RowMajor storage (the default).
func WithRowMajor() Option { return WithOrder(RowMajor) }

// WithColumnMajor selects ColumnMajor storage.
func WithColumnMajor() Option { return WithOrder(ColumnMajor) }

// gatherOptions applies opts over the defaults, ignoring nil entries.
func gatherOptions(opts ...Option) Options {
	o := Options{order: DefaultOrder}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
