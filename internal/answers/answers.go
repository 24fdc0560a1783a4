// Package answers holds the answer set produced by the collector: a mapping
// of question id to the selected categorical value (or values, for
// multi-select questions).
//
// A Set is immutable. Every With* method returns a new Set and accessors
// return copies, so a Set handed to an evaluator can never change under it.
// Absent keys are not an error: Text returns "" and List returns nil.
package answers

import (
	"encoding/json"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// NoCloud is the cloud_usage option meaning "no cloud services".
const NoCloud = "None"

// value is one stored answer. multi marks answers captured from a
// multi-select question, even when only one option was picked.
type value struct {
	text  string
	list  []string
	multi bool
}

// Set is an immutable answer set keyed by question id.
type Set struct {
	vals map[string]value
}

// New returns an empty answer set.
func New() Set {
	return Set{}
}

// clone copies the backing map so the receiver stays untouched.
func (s Set) clone() Set {
	out := Set{vals: make(map[string]value, len(s.vals)+1)}
	for k, v := range s.vals {
		out.vals[k] = v
	}
	return out
}

// WithText returns a copy of s with id set to v.
func (s Set) WithText(id, v string) Set {
	out := s.clone()
	out.vals[id] = value{text: v}
	return out
}

// WithList returns a copy of s with id set to the option list vs.
func (s Set) WithList(id string, vs []string) Set {
	out := s.clone()
	cp := make([]string, len(vs))
	copy(cp, vs)
	out.vals[id] = value{list: cp, multi: true}
	return out
}

// Merge returns a copy of s overlaid with every answer in o.
func (s Set) Merge(o Set) Set {
	out := s.clone()
	for k, v := range o.vals {
		out.vals[k] = v
	}
	return out
}

// Has reports whether id was answered.
func (s Set) Has(id string) bool {
	_, ok := s.vals[id]
	return ok
}

// Len returns the number of answered questions.
func (s Set) Len() int {
	return len(s.vals)
}

// Text returns the answer for id, or "" when absent. List answers are
// joined with ", ".
func (s Set) Text(id string) string {
	v, ok := s.vals[id]
	if !ok {
		return ""
	}
	if v.multi {
		return strings.Join(v.list, ", ")
	}
	return v.text
}

// List returns a copy of the options selected for id. A single-valued
// answer is returned as a one-element list; an absent one as nil.
func (s Set) List(id string) []string {
	v, ok := s.vals[id]
	if !ok {
		return nil
	}
	if !v.multi {
		if v.text == "" {
			return nil
		}
		return []string{v.text}
	}
	out := make([]string, len(v.list))
	copy(out, v.list)
	return out
}

// IDs returns the answered question ids, sorted.
func (s Set) IDs() []string {
	ids := make([]string, 0, len(s.vals))
	for k := range s.vals {
		ids = append(ids, k)
	}
	sort.Strings(ids)
	return ids
}

// CloudServices returns the distinct cloud service categories in use, in
// the order they were selected. The "None" option is not a category.
func (s Set) CloudServices() []string {
	var out []string
	seen := make(map[string]bool)
	for _, c := range s.List(CloudUsage) {
		c = strings.TrimSpace(c)
		if c == "" || c == NoCloud || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

// UsesCloud reports whether at least one cloud service category is in use.
func (s Set) UsesCloud() bool {
	return len(s.CloudServices()) > 0
}

// Map returns a plain map representation (string or []string values)
// suitable for serialization.
func (s Set) Map() map[string]any {
	out := make(map[string]any, len(s.vals))
	for k, v := range s.vals {
		if v.multi {
			out[k] = s.List(k)
			continue
		}
		out[k] = v.text
	}
	return out
}

// Equal reports whether s and o hold identical answers.
func (s Set) Equal(o Set) bool {
	if len(s.vals) != len(o.vals) {
		return false
	}
	for k, v := range s.vals {
		w, ok := o.vals[k]
		if !ok || v.multi != w.multi || v.text != w.text || len(v.list) != len(w.list) {
			return false
		}
		for i := range v.list {
			if v.list[i] != w.list[i] {
				return false
			}
		}
	}
	return true
}

// MarshalYAML implements yaml.Marshaler.
func (s Set) MarshalYAML() (any, error) {
	return s.Map(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Input is validated the same
// way as FromMap.
func (s *Set) UnmarshalYAML(node *yaml.Node) error {
	var raw map[string]any
	if err := node.Decode(&raw); err != nil {
		return invalidf("decode yaml: %v", err)
	}
	parsed, err := FromMap(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalJSON implements json.Marshaler.
func (s Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Map())
}

// UnmarshalJSON implements json.Unmarshaler. Input is validated the same
// way as FromMap.
func (s *Set) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return invalidf("decode json: %v", err)
	}
	parsed, err := FromMap(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
