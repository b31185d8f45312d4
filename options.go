package gui

// Option configures one control call.
type Option func(*options)

// options holds the per-call configuration, keyed by OptKey name.
type options struct {
	extensions map[string]any
}

// OptKey is a typed key for control options. Built-in and custom controls
// share it.
//
//	var OptGlow = gui.NewOptKey("glow", false)
//	ctx.Button(r, "Go", gui.WithOpt(OptGlow, true))
//	glow := gui.ApplyAndGet(opts, OptGlow)
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates a typed option key with a default value.
// The default is returned when the option is not set.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// Name returns the key name (useful for debugging).
func (k OptKey[T]) Name() string { return k.name }

// Default returns the default value for this key.
func (k OptKey[T]) Default() T { return k.def }

// WithOpt sets an option value using a typed key.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.extensions == nil {
			o.extensions = make(map[string]any)
		}
		o.extensions[key.name] = value
	}
}

// GetOpt retrieves an option value with type safety.
// Returns the key's default value if not set.
func GetOpt[T any](o options, key OptKey[T]) T {
	if o.extensions == nil {
		return key.def
	}
	v, ok := o.extensions[key.name]
	if !ok {
		return key.def
	}
	typed, ok := v.(T)
	if !ok {
		return key.def
	}
	return typed
}

// HasOpt returns true if the option was explicitly set.
func HasOpt[T any](o options, key OptKey[T]) bool {
	if o.extensions == nil {
		return false
	}
	_, ok := o.extensions[key.name]
	return ok
}

// applyOptions applies all options and returns the configuration.
func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ApplyAndGet applies options and returns a single value.
// Custom controls outside the package read their options with it.
func ApplyAndGet[T any](opts []Option, key OptKey[T]) T {
	return GetOpt(applyOptions(opts), key)
}

// ApplyAndCheck returns the option value and whether it was explicitly set.
func ApplyAndCheck[T any](opts []Option, key OptKey[T]) (T, bool) {
	o := applyOptions(opts)
	return GetOpt(o, key), HasOpt(o, key)
}

// =============================================================================
// Built-in Option Keys
// =============================================================================

// CharFilter decides whether a typed codepoint may be inserted into text at
// the cursor byte offset.
type CharFilter func(cp rune, text []byte, cursor int) bool

var (
	OptID        = NewOptKey[ID]("id", 0)
	OptTooltip   = NewOptKey("tooltip", "")
	OptMultiline = NewOptKey("multiline", false)
	OptReadOnly  = NewOptKey("readOnly", false)
	OptFilter    = NewOptKey[CharFilter]("filter", nil)
	OptFormat    = NewOptKey("format", "")
	OptStep      = NewOptKey("step", 1)
)

// WithID pins the control's identity. Use HashID for a name-based ID.
func WithID(id ID) Option { return WithOpt(OptID, id) }

// WithTooltip shows text near the pointer while the control is hovered.
// Tooltips are drawn only after EnableTooltip.
func WithTooltip(text string) Option { return WithOpt(OptTooltip, text) }

// WithMultiline lets Enter insert a newline instead of committing.
func WithMultiline() Option { return WithOpt(OptMultiline, true) }

// WithReadOnly shows the text box but ignores edits.
func WithReadOnly() Option { return WithOpt(OptReadOnly, true) }

// WithCharFilter restricts which codepoints a text box accepts.
func WithCharFilter(f CharFilter) Option { return WithOpt(OptFilter, f) }

// WithFormat sets the fmt verb used to display numeric values.
func WithFormat(format string) Option { return WithOpt(OptFormat, format) }

// WithStep sets the Spinner increment.
func WithStep(step int) Option { return WithOpt(OptStep, step) }
