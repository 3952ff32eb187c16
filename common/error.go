// Package common holds the small set of types every other liquesco
// package builds on: the error type, inclusive ranges, the normalized
// decimal, and schema identifiers.
package common

import (
	"errors"
	"fmt"
)

// Kind roughly buckets an Error for callers that want to branch on the
// conceptual failure category without parsing the message.
type Kind int

const (
	// KindCodec covers malformed headers, reserved descriptors, truncated
	// streams and varint overflow.
	KindCodec Kind = iota
	// KindConstraint covers values outside a declared range, length,
	// code set or sorting order.
	KindConstraint
	// KindStructure covers wrong ordinals, wrong field counts, map key
	// disorder, duplicate keys, start>end ranges, denormalized decimals.
	KindStructure
	// KindReference covers schema references to non-existent types and
	// key-refs with no active anchor frame or an out-of-range index.
	KindReference
	// KindInternal covers invariants violated by a buggy caller, e.g.
	// popping an empty key-ref stack.
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindCodec:
		return "codec"
	case KindConstraint:
		return "constraint"
	case KindStructure:
		return "structure"
	case KindReference:
		return "reference"
	case KindInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// Diagnostics is the opt-in extra context attached to an Error when a
// caller requests extended diagnostics (spec §4.3, §7). Populating it
// requires an extra reader clone, which is why it's opt-in.
type Diagnostics struct {
	Offset         uint64
	SelfLength     uint64
	Embedded       uint32
	Preview        []byte
	DecodedPreview string
}

// Error is liquesco's single error type. Every failure in validate,
// compare, the codec or the schema builder surfaces as an *Error so
// callers never need a type switch over half a dozen error kinds.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
	Diag    *Diagnostics
}

func (e *Error) Error() string {
	if e.Diag != nil {
		return fmt.Sprintf("%s: %s (offset=%d, self_length=%d, embedded=%d)",
			e.Kind, e.Message, e.Diag.Offset, e.Diag.SelfLength, e.Diag.Embedded)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// New builds an Error of the given kind with a formatted message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap builds an Error of the given kind, chaining cause so errors.Is/As
// keep working through it.
func Wrap(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// WithDiagnostics returns a copy of err enriched with diag. It never
// changes the error's Kind or Message, only attaches context, per the
// spec's "do not change the error kind" rule for extended diagnostics.
func WithDiagnostics(err error, diag Diagnostics) error {
	var lqErr *Error
	if errors.As(err, &lqErr) {
		cp := *lqErr
		cp.Diag = &diag
		return &cp
	}
	return err
}

// IsKind reports whether err is a *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var lqErr *Error
	if errors.As(err, &lqErr) {
		return lqErr.Kind == kind
	}
	return false
}
