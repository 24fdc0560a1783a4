// Package frontmatter reads and writes markdown documents that carry YAML
// frontmatter between --- delimiters.
package frontmatter

import (
	"bytes"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

const delim = "---\n"

// ErrMissing is returned when a document has no frontmatter block.
var ErrMissing = errors.New("frontmatter: missing --- delimiter")

// Parse splits a document into raw frontmatter YAML and body. The document
// must begin with "---\n"; the next line that is exactly "---" closes the
// block.
func Parse(data []byte) (fm []byte, body []byte, err error) {
	if !bytes.HasPrefix(data, []byte(delim)) {
		return nil, nil, fmt.Errorf("%w: no opening line", ErrMissing)
	}
	rest := data[len(delim):]
	idx := bytes.Index(rest, []byte("\n---"))
	if idx < 0 {
		return nil, nil, fmt.Errorf("%w: no closing line", ErrMissing)
	}
	fm = rest[:idx+1]
	body = rest[idx+len("\n---"):]
	if len(body) > 0 && body[0] == '\n' {
		body = body[1:]
	}
	return fm, body, nil
}

// Decode parses data, unmarshals its frontmatter into v and returns the
// body.
func Decode(data []byte, v any) ([]byte, error) {
	fm, body, err := Parse(data)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(fm, v); err != nil {
		return nil, fmt.Errorf("frontmatter: unmarshal: %w", err)
	}
	return body, nil
}

// Write marshals v as frontmatter followed by body.
func Write(v any, body string) ([]byte, error) {
	fm, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("frontmatter: marshal: %w", err)
	}
	var buf bytes.Buffer
	buf.WriteString(delim)
	buf.Write(fm)
	buf.WriteString(delim)
	buf.WriteString(body)
	return buf.Bytes(), nil
}
