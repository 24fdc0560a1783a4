package model

// model_test.go — Tests for domain naming and result accessors.

import (
	"encoding/json"
	"testing"
)

func TestDomainText(t *testing.T) {
	for _, d := range Domains {
		b, err := d.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Domain
		if err := back.UnmarshalText(b); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", b, err)
		}
		if back != d {
			t.Errorf("roundtrip %v: got %v", d, back)
		}
	}
	var d Domain
	if err := d.UnmarshalText([]byte("Security")); err == nil {
		t.Error("expected error for unknown domain")
	}
	if got := Domain(9).Name(); got != "Domain(9)" {
		t.Errorf("out of range name = %q", got)
	}
}

func TestResultAccessors(t *testing.T) {
	res := Result{
		Domains: []DomainResult{{Domain: Logging, Score: 19}},
		Gaps: []GapGroup{
			{Domain: Governance.Name(), Gaps: []string{"a"}},
			{Domain: Logging.Name(), Gaps: []string{"b", "c"}},
		},
	}
	if got := res.Score(Logging); got != 19 {
		t.Errorf("Score(Logging) = %d", got)
	}
	if got := res.Score(Incident); got != 0 {
		t.Errorf("Score(Incident) = %d, want 0", got)
	}
	if got := res.GapCount(); got != 3 {
		t.Errorf("GapCount = %d, want 3", got)
	}

	data, err := json.Marshal(res)
	if err != nil {
		t.Fatal(err)
	}
	var back Result
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back.Score(Logging) != 19 {
		t.Errorf("decoded score = %d", back.Score(Logging))
	}
}
