package rules

// Func is a rule's transform. It receives the current pipeline text and the
// resolved arguments and returns the replacement text.
type Func func(text string, args []string) (string, error)

// Spec describes one registered rule: its identifier, argument contract and
// transform. The registry holds Specs as plain inspectable data; there is
// no runtime dispatch beyond the id lookup.
type Spec struct {
	ID          string
	MinArgs     int
	MaxArgs     int
	DefaultArgs []string
	Summary     string
	Fn          Func
}

// Registry is an immutable table of rule Specs, built once at startup.
type Registry struct {
	specs map[string]Spec
	order []string
}

// Option configures registry construction.
type Option func(*Registry)

// WithCrypto registers the enc and dec rules backed by the given provider.
// Without it the registry contains only the pure text rules and enc/dec are
// unknown identifiers.
func WithCrypto(provider CryptoProvider) Option {
	return func(r *Registry) {
		r.add(cryptoSpecs(provider)...)
	}
}

// NewRegistry builds the rule table with all builtin text rules.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{specs: make(map[string]Spec)}
	r.add(builtinSpecs()...)
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Registry) add(specs ...Spec) {
	for _, spec := range specs {
		if _, exists := r.specs[spec.ID]; !exists {
			r.order = append(r.order, spec.ID)
		}
		r.specs[spec.ID] = spec
	}
}

// Lookup returns the Spec registered under id.
func (r *Registry) Lookup(id string) (Spec, bool) {
	spec, ok := r.specs[id]
	return spec, ok
}

// Specs returns all registered Specs in registration order.
func (r *Registry) Specs() []Spec {
	out := make([]Spec, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.specs[id])
	}
	return out
}
