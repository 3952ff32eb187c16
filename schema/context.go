package schema

import "github.com/cronosun/liquesco-go/codec"

// Config carries the per-call options that change validation behaviour
// without changing the schema itself (spec §3.4).
type Config struct {
	// NoExtension rejects struct/enum data that carries more
	// fields/values than the schema declares.
	NoExtension bool
	// Canonical rejects non-minimal encodings on read (spec §6.1,
	// §9 Open Question: default is lenient, i.e. Canonical=false).
	Canonical bool
	// ExtendedDiagnostics enriches errors with byte offset, a short
	// preview and a best-effort decode, at the cost of a reader clone
	// per failure (spec §4.3, §7).
	ExtendedDiagnostics bool
}

// KeyRefInfo is one frame of the key-ref stack, pushed when entering an
// anchored map/root-map and popped on exit (spec §3.4, §4.2 Map).
type KeyRefInfo struct {
	MapLen uint32
}

// Context is threaded through every recursive Validate/Compare call. It
// owns the reader used for validation, a reference to the schema being
// validated against, the active Config and the key-ref stack. Exactly
// one concrete implementation exists, in package validate; it lives here
// as an interface so the schema variants can depend on it without the
// schema package importing validate (spec §3.4, §9 "Context threaded
// through recursive calls").
type Context interface {
	// Reader returns the single reader used while validating.
	Reader() *codec.Reader
	// Config returns the active validation configuration.
	Config() Config
	// Resolve looks up the AnyType a TypeRef addresses.
	Resolve(ref TypeRef) (Type, error)
	// PushKeyRefFrame pushes a new anchored-map frame.
	PushKeyRefFrame(mapLen uint32)
	// PopKeyRefFrame pops the most recently pushed frame. It is an
	// internal-error (a buggy caller) to call this on an empty stack.
	PopKeyRefFrame() error
	// KeyRefFrame returns the level-th frame from the top of the stack
	// (0 = nearest enclosing anchored map), or ok=false if no such
	// frame exists.
	KeyRefFrame(level uint32) (KeyRefInfo, bool)
}
