package mdtok

import "fmt"

// BlockRule is a single block-recognition rule.
//
// The rule is offered the window [startLine, endLine) with the cursor at
// startLine. It answers whether it matched; on a non-silent match it must
// emit its tokens and advance s.Line past everything it consumed. In silent
// mode it must answer matchability without emitting tokens or mutating
// state; silent calls are used for lookahead (paragraph termination).
type BlockRule func(s *State, startLine, endLine int, silent bool) bool

type namedRule struct {
	name string
	fn   BlockRule
	alt  []string
}

// Ruler is an ordered chain of named block rules. Rules are tried in order;
// the first match wins. The alt list of a rule names the rule categories it
// may terminate when probed in silent mode (e.g. "paragraph").
type Ruler struct {
	rules []namedRule
}

// Has reports whether a rule with the given name is registered.
func (r *Ruler) Has(name string) bool {
	return r.index(name) >= 0
}

func (r *Ruler) index(name string) int {
	for i := range r.rules {
		if r.rules[i].name == name {
			return i
		}
	}
	return -1
}

// Push appends a rule to the end of the chain.
// Registering a name twice is an error.
func (r *Ruler) Push(name string, fn BlockRule, alt ...string) error {
	if r.Has(name) {
		return fmt.Errorf("block rule %q already registered", name)
	}
	r.rules = append(r.rules, namedRule{name: name, fn: fn, alt: alt})
	return nil
}

// Before inserts a rule immediately before the named anchor rule.
func (r *Ruler) Before(anchor, name string, fn BlockRule, alt ...string) error {
	if r.Has(name) {
		return fmt.Errorf("block rule %q already registered", name)
	}
	idx := r.index(anchor)
	if idx < 0 {
		return fmt.Errorf("block rule anchor %q not found", anchor)
	}
	r.rules = append(r.rules, namedRule{})
	copy(r.rules[idx+1:], r.rules[idx:])
	r.rules[idx] = namedRule{name: name, fn: fn, alt: alt}
	return nil
}

// Rules returns the rule functions in chain order.
func (r *Ruler) Rules() []BlockRule {
	out := make([]BlockRule, len(r.rules))
	for i := range r.rules {
		out[i] = r.rules[i].fn
	}
	return out
}

// RulesForAlt returns the rules whose alt list contains category.
// Paragraph continuation probes these in silent mode to decide where a
// paragraph ends.
func (r *Ruler) RulesForAlt(category string) []BlockRule {
	var out []BlockRule
	for i := range r.rules {
		for _, a := range r.rules[i].alt {
			if a == category {
				out = append(out, r.rules[i].fn)
				break
			}
		}
	}
	return out
}
