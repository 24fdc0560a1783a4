package frontmatter_test

import (
	"errors"
	"testing"

	"resilience/internal/frontmatter"
)

type header struct {
	Total int      `yaml:"total_score"`
	Tier  string   `yaml:"risk_level"`
	Tags  []string `yaml:"tags"`
}

func TestDecodeRoundtrip(t *testing.T) {
	in := header{Total: 72, Tier: "MEDIUM", Tags: []string{"resilience/summary"}}
	body := "# Summary\n\n---\n\nafter a rule\n"

	data, err := frontmatter.Write(in, body)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}

	var out header
	got, err := frontmatter.Decode(data, &out)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if string(got) != body {
		t.Errorf("body = %q, want %q", got, body)
	}
	if out.Total != 72 || out.Tier != "MEDIUM" || len(out.Tags) != 1 {
		t.Errorf("header = %+v", out)
	}
}

func TestParseErrors(t *testing.T) {
	tests := map[string]string{
		"no opening": "no delimiter",
		"no closing": "---\ntotal_score: 1\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, _, err := frontmatter.Parse([]byte(doc))
			if !errors.Is(err, frontmatter.ErrMissing) {
				t.Fatalf("err = %v, want ErrMissing", err)
			}
		})
	}
}

func TestDecodeBadYAML(t *testing.T) {
	var h header
	_, err := frontmatter.Decode([]byte("---\ntotal_score: [\n---\n"), &h)
	if err == nil || errors.Is(err, frontmatter.ErrMissing) {
		t.Fatalf("err = %v, want unmarshal error", err)
	}
}

func TestWriteNoBody(t *testing.T) {
	data, err := frontmatter.Write(header{Total: 1}, "")
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	_, body, err := frontmatter.Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(body) != 0 {
		t.Errorf("body = %q, want empty", body)
	}
}
