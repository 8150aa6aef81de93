// Package builder generates small HTML markup fragments (images, links,
// form inputs, selects, date pickers) from primitive arguments plus option
// maps, mirroring a web framework's view-helper layer. Builders are pure:
// no hidden state, no I/O, identical inputs produce identical output, and
// caller-supplied option maps are never mutated. Construction collaborators
// (element serializer, clock, fragment sanitizer) are injected through
// functional options so tests can substitute them.
package builder

import (
	"time"

	"github.com/goliatone/go-taghelper/pkg/htmltag"
)

// ElementSerializer produces the serialized text for a single element. The
// default implementation delegates to htmltag.
type ElementSerializer interface {
	Serialize(tag htmltag.Tag, mode htmltag.EscapeMode) string
}

// SerializerFunc adapts a plain function to the ElementSerializer interface.
type SerializerFunc func(tag htmltag.Tag, mode htmltag.EscapeMode) string

// Serialize calls fn.
func (fn SerializerFunc) Serialize(tag htmltag.Tag, mode htmltag.EscapeMode) string {
	return fn(tag, mode)
}

// Clock supplies the current date for the date select builder.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a plain function to the Clock interface.
type ClockFunc func() time.Time

// Now calls fn.
func (fn ClockFunc) Now() time.Time {
	return fn()
}

// Builder assembles markup fragments. The zero value is not usable;
// construct instances with New.
type Builder struct {
	serializer ElementSerializer
	clock      Clock
	sanitizer  func(string) string
}

// Option configures a Builder during construction.
type Option func(*Builder)

// WithSerializer replaces the default element serializer.
func WithSerializer(serializer ElementSerializer) Option {
	return func(b *Builder) {
		if serializer != nil {
			b.serializer = serializer
		}
	}
}

// WithClock replaces the system clock, mostly useful in tests and snapshot
// generation.
func WithClock(clock Clock) Option {
	return func(b *Builder) {
		if clock != nil {
			b.clock = clock
		}
	}
}

// WithFragmentSanitizer runs every Fragment content part through fn before
// it is embedded in link markup. Text content is unaffected.
func WithFragmentSanitizer(fn func(string) string) Option {
	return func(b *Builder) {
		b.sanitizer = fn
	}
}

// New constructs a Builder with the default serializer and system clock.
func New(options ...Option) *Builder {
	b := &Builder{
		serializer: SerializerFunc(func(tag htmltag.Tag, mode htmltag.EscapeMode) string {
			return tag.Render(mode)
		}),
		clock: ClockFunc(time.Now),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(b)
	}
	return b
}
