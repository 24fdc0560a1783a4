package export

// export.go — report bundle: renders one assessment into a directory of
// files.
//
// Bundle layout:
//   eu_resilience_assessment_<yyyymmdd>.txt  — text report
//   eu_resilience_assessment_<yyyymmdd>.csv  — tabular export
//   eu_resilience_assessment_<yyyymmdd>.pdf  — PDF report
//   summary.md                               — frontmatter + headline figures
//   domains/<slug>.md                        — one per assessment domain
//   answers.yaml                             — the answer set, reloadable
//
// Generate is pure; Write does the I/O.

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"resilience/internal/answers"
	"resilience/internal/assess"
	"resilience/internal/feedback"
	"resilience/internal/frontmatter"
	"resilience/internal/model"
	"resilience/internal/report"
)

// FilePrefix starts the name of the report files.
const FilePrefix = "eu_resilience_assessment_"

// Stem returns the report file name without extension for meta.
func Stem(meta report.Meta) string {
	return FilePrefix + meta.Generated.UTC().Format("20060102")
}

// Bundle holds pre-rendered file content (path → bytes). Paths are relative
// to the output directory, using forward slashes.
type Bundle struct {
	files map[string][]byte
}

// Paths returns the bundle paths in sorted order.
func (b *Bundle) Paths() []string {
	paths := make([]string, 0, len(b.files))
	for p := range b.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// File returns the content stored at path.
func (b *Bundle) File(path string) ([]byte, bool) {
	data, ok := b.files[path]
	return data, ok
}

// Summary is the frontmatter of summary.md.
type Summary struct {
	Generated string   `yaml:"generated"`
	Sector    string   `yaml:"sector"`
	Scope     string   `yaml:"scope"`
	Total     int      `yaml:"total_score"`
	Tier      string   `yaml:"risk_level"`
	Gaps      int      `yaml:"regulatory_gaps"`
	Tags      []string `yaml:"tags"`
}

// Generate renders every file of the bundle. No files are written.
func Generate(res model.Result, a answers.Set, meta report.Meta) (*Bundle, error) {
	files := make(map[string][]byte)
	stem := Stem(meta)

	files[stem+".txt"] = []byte(report.Text(res, meta))

	csvData, err := report.CSV(res, meta)
	if err != nil {
		return nil, err
	}
	files[stem+".csv"] = csvData

	pdfData, err := report.PDF(res, meta)
	if err != nil {
		return nil, err
	}
	files[stem+".pdf"] = pdfData

	summary, err := buildSummary(res, a, meta)
	if err != nil {
		return nil, err
	}
	files["summary.md"] = summary

	for _, dr := range res.Domains {
		page, err := buildDomainPage(dr)
		if err != nil {
			return nil, err
		}
		files["domains/"+slug(dr.Domain)+".md"] = page
	}

	ans, err := yaml.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("marshal answers: %w", err)
	}
	files["answers.yaml"] = ans

	return &Bundle{files: files}, nil
}

// Write writes every file in bundle under dir, in sorted path order, and
// returns the paths written. Writing the same bundle twice yields identical
// files.
func Write(bundle *Bundle, dir string) ([]string, error) {
	if err := os.MkdirAll(filepath.Join(dir, "domains"), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir domains: %w", err)
	}
	var written []string
	for _, p := range bundle.Paths() {
		abs := filepath.Join(dir, filepath.FromSlash(p))
		if err := writeFile(abs, bundle.files[p]); err != nil {
			return written, err
		}
		written = append(written, abs)
	}
	return written, nil
}

// ---------------------------------------------------------------------------
// Page builders
// ---------------------------------------------------------------------------

// buildSummary builds summary.md: headline figures, a domain table linking
// the domain pages, practical guidance and the answer review.
func buildSummary(res model.Result, a answers.Set, meta report.Meta) ([]byte, error) {
	stats := assess.Summarize(res)

	var b strings.Builder
	b.WriteString("# EU Digital Resilience Assessment\n\n")
	fmt.Fprintf(&b, "- **Total score**: %d/%d (%s)\n", res.Total, model.MaxTotalScore, res.Tier)
	fmt.Fprintf(&b, "- **Estimated compliance**: %d%%\n", stats.CompliancePct)
	fmt.Fprintf(&b, "- **Regulatory gaps**: %d\n", stats.Gaps)
	fmt.Fprintf(&b, "- **Findings**: %d\n", stats.Findings)
	fmt.Fprintf(&b, "- **High-priority actions**: %d of %d\n\n", stats.HighPriority, stats.Actions)

	b.WriteString("## Domains\n\n")
	b.WriteString("| Domain | Score | Percent | Band |\n")
	b.WriteString("|--------|-------|---------|------|\n")
	for _, d := range stats.Domains {
		fmt.Fprintf(&b, "| [[domains/%s|%s]] | %d/%d | %d%% | %s |\n",
			slug(d.Domain), d.Name, d.Score, model.MaxDomainScore, d.Percent, d.Band)
	}

	if guide := feedback.Guidance(a); len(guide) > 0 {
		b.WriteString("\n## Practical Guidance\n\n")
		for _, g := range guide {
			marker := "medium"
			if g.Urgent {
				marker = "critical"
			}
			fmt.Fprintf(&b, "- **[%s] %s** (%s): %s\n", g.Domain, g.Area, marker, g.Text)
		}
	}

	b.WriteString("\n## Answers\n\n")
	b.WriteString("| Question | Answer |\n")
	b.WriteString("|----------|--------|\n")
	for _, it := range answers.Review(a) {
		fmt.Fprintf(&b, "| %s | %s |\n", it.Label, escapeCell(it.Value))
	}

	fm := Summary{
		Generated: meta.Timestamp(),
		Sector:    meta.Sector,
		Scope:     meta.Scope,
		Total:     res.Total,
		Tier:      string(res.Tier),
		Gaps:      stats.Gaps,
		Tags:      tags("resilience/summary", "risk-"+strings.ToLower(string(res.Tier))),
	}
	return frontmatter.Write(fm, b.String())
}

// domainHeader is the frontmatter of a domain page.
type domainHeader struct {
	Domain string   `yaml:"domain"`
	Score  int      `yaml:"score"`
	Band   string   `yaml:"band"`
	Tags   []string `yaml:"tags"`
}

// buildDomainPage builds domains/<slug>.md for one domain result. Sections
// with nothing to show are left out.
func buildDomainPage(dr model.DomainResult) ([]byte, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", dr.Domain.Name())
	fmt.Fprintf(&b, "**Score**: %d/%d\n", dr.Score, model.MaxDomainScore)

	if len(dr.Gaps) > 0 {
		b.WriteString("\n## Regulatory Gaps\n\n")
		for _, g := range dr.Gaps {
			b.WriteString("- " + g + "\n")
		}
	}
	if len(dr.Findings) > 0 {
		b.WriteString("\n## Findings\n\n")
		for i, f := range dr.Findings {
			fmt.Fprintf(&b, "%d. %s\n", i+1, f)
		}
	}
	if len(dr.Recommendations) > 0 {
		b.WriteString("\n## Recommendations\n\n")
		for _, r := range dr.Recommendations {
			b.WriteString("- " + r + "\n")
		}
	}

	band := assess.PercentBand(dr.Score * 100 / model.MaxDomainScore)
	return frontmatter.Write(domainHeader{
		Domain: dr.Domain.Name(),
		Score:  dr.Score,
		Band:   string(band),
		Tags:   tags("resilience/domain", "band-"+string(band)),
	}, b.String())
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// tags returns a sorted copy of ts.
func tags(ts ...string) []string {
	sorted := make([]string, len(ts))
	copy(sorted, ts)
	sort.Strings(sorted)
	return sorted
}

// slug turns a domain's short name into a file name: lower case, anything
// other than letters and digits becomes "-", runs collapse, ends trimmed.
func slug(d model.Domain) string {
	return sanitizeFilename(strings.ToLower(d.Short()))
}

func sanitizeFilename(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			continue
		}
		b.WriteByte('-')
	}
	out := b.String()
	for strings.Contains(out, "--") {
		out = strings.ReplaceAll(out, "--", "-")
	}
	return strings.Trim(out, "-")
}

// escapeCell keeps a value from breaking a markdown table row.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// writeFile writes content to path, creating parent directories as needed.
func writeFile(path string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
