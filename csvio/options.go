// SPDX-License-Identifier: MIT
package csvio

import "unicode/utf8"

// DefaultDelimiter separates fields unless WithDelimiter overrides it.
const DefaultDelimiter = ','

// InterceptName labels the prepended constant column in Dataset.Features.
const InterceptName = "(intercept)"

// Option configures a reader (last-writer-wins).
type Option func(*options)

type options struct {
	comma     rune
	intercept bool
}

// WithDelimiter sets the field separator. Panics on '\n', '\r', '"' or
// utf8.RuneError, which encoding/csv cannot use.
func WithDelimiter(r rune) Option {
	if r == '\n' || r == '\r' || r == '"' || r == utf8.RuneError {
		panic("csvio: WithDelimiter: invalid delimiter")
	}

	return func(o *options) { o.comma = r }
}

// WithIntercept controls whether ParseWithTarget prepends a 1.0 column
// (default true).
func WithIntercept(on bool) Option {
	return func(o *options) { o.intercept = on }
}

func gatherOptions(user ...Option) options {
	o := options{comma: DefaultDelimiter, intercept: true}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
