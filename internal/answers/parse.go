package answers

// parse.go — ingestion boundary. Raw decoded input (YAML or JSON) is
// checked here so the evaluators only ever see well-typed answers.

import (
	"errors"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every ingestion validation error.
var ErrInvalid = errors.New("invalid answers")

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// ParseYAML decodes a YAML mapping of question id to answer.
func ParseYAML(data []byte) (Set, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Set{}, invalidf("decode yaml: %v", err)
	}
	return FromMap(raw)
}

// FromMap validates raw decoded input and builds a Set.
//
// Single-choice questions take a string; a boolean is accepted and stored
// as "Yes"/"No". Multi-select questions take a list of strings or a single
// string. Null values are treated as unanswered. Unknown question ids and
// any other value type are rejected. Answer values themselves are not
// checked against the option list: an unrecognized value simply fails the
// corresponding check.
func FromMap(raw map[string]any) (Set, error) {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := New()
	for _, id := range keys {
		q, ok := Lookup(id)
		if !ok {
			return Set{}, invalidf("unknown question %q", id)
		}
		v := raw[id]
		if v == nil {
			continue
		}
		if q.Kind == Multi {
			list, err := stringList(id, v)
			if err != nil {
				return Set{}, err
			}
			s = s.WithList(id, list)
			continue
		}
		text, err := scalar(id, v)
		if err != nil {
			return Set{}, err
		}
		s = s.WithText(id, text)
	}
	return s, nil
}

func scalar(id string, v any) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case bool:
		if t {
			return "Yes", nil
		}
		return "No", nil
	default:
		return "", invalidf("question %q: expected string, got %T", id, v)
	}
}

func stringList(id string, v any) ([]string, error) {
	switch t := v.(type) {
	case string:
		if t == "" {
			return []string{}, nil
		}
		return []string{t}, nil
	case []string:
		return t, nil
	case []any:
		out := make([]string, 0, len(t))
		for i, item := range t {
			s, ok := item.(string)
			if !ok {
				return nil, invalidf("question %q: item %d: expected string, got %T", id, i, item)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, invalidf("question %q: expected list of strings, got %T", id, v)
	}
}
