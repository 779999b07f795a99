// Package card provides declarative Bootstrap card components. Each component
// is a pure function from a props struct to a markup node: props are consumed
// once, never mutated, and the computed class attribute is always the
// component's fixed token set composed with the caller's extra classes in a
// documented order.
package card
