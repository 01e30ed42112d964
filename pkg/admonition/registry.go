package admonition

import "strings"

// Type is one registered admonition type. The token kinds are precomputed
// at registration so parse- and render-time dispatch never concatenates
// strings; the registry is immutable once built.
type Type struct {
	// Name is the lower-case type name matched in both syntaxes.
	Name string

	// Icon is the optional glyph emitted before the title.
	Icon string

	// OpenKind and CloseKind are the token kinds this type emits,
	// "admonition_<name>_open" and "admonition_<name>_close".
	OpenKind  string
	CloseKind string

	// Validate is the fence-opening predicate for this type.
	Validate Validator

	// Render is the custom renderer pair; a zero pair selects defaults.
	Render RenderPair
}

// Registry holds the ordered, immutable set of admonition types built from
// caller configuration merged with defaults.
type Registry struct {
	types  []*Type
	byName map[string]*Type
}

// newRegistry builds the dispatch table from validated options.
func newRegistry(opts Options, types []string) *Registry {
	reg := &Registry{byName: make(map[string]*Type, len(types))}

	for _, name := range types {
		typ := &Type{
			Name:      name,
			Icon:      opts.Icons[name],
			OpenKind:  "admonition_" + name + "_open",
			CloseKind: "admonition_" + name + "_close",
			Render:    opts.Renders[name],
		}
		if v, ok := opts.Validators[name]; ok {
			typ.Validate = v
		} else {
			typ.Validate = defaultValidator(name)
		}
		reg.types = append(reg.types, typ)
		reg.byName[name] = typ
	}

	return reg
}

// defaultValidator accepts fence parameters whose first word is exactly the
// type name.
func defaultValidator(name string) Validator {
	return func(params, _ string) bool {
		fields := strings.Fields(params)
		return len(fields) > 0 && fields[0] == name
	}
}

// Get returns the type registered under name, or nil.
func (r *Registry) Get(name string) *Type {
	return r.byName[name]
}

// Match returns the first type, in registration order, whose validator
// accepts (params, markup), or nil when none does.
func (r *Registry) Match(params, markup string) *Type {
	for _, typ := range r.types {
		if typ.Validate(params, markup) {
			return typ
		}
	}
	return nil
}

// Types returns the registered types in registration order.
func (r *Registry) Types() []*Type {
	return r.types
}
