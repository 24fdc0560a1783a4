package report

// csv.go — tabular export. A Metric,Value block of scalar rows, then one
// finding per row, then one recommendation per row.

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"resilience/internal/model"
	"resilience/internal/risk"
)

// Metric row names.
const (
	MetricTimestamp = "Timestamp"
	MetricSector    = "Sector"
	MetricScope     = "Regulatory Scope"
	MetricTotal     = "Total Score"
	MetricRiskLevel = "Risk Level"
)

// ScoreMetric returns the metric row name of a domain score.
func ScoreMetric(d model.Domain) string {
	return d.Short() + " Score"
}

// CSV renders the tabular export.
func CSV(res model.Result, meta Meta) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, res, meta); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteCSV writes the tabular export to w.
func WriteCSV(w io.Writer, res model.Result, meta Meta) error {
	cw := csv.NewWriter(w)
	rows := [][]string{
		{"Metric", "Value"},
		{MetricTimestamp, meta.Timestamp()},
		{MetricSector, meta.Sector},
		{MetricScope, meta.Scope},
		{MetricTotal, strconv.Itoa(res.Total)},
		{MetricRiskLevel, string(res.Tier)},
	}
	for _, d := range model.Domains {
		rows = append(rows, []string{ScoreMetric(d), strconv.Itoa(res.Score(d))})
	}
	rows = append(rows, []string{""}, []string{"Findings"})
	for _, f := range res.Findings {
		rows = append(rows, []string{f})
	}
	rows = append(rows, []string{""}, []string{"Recommendations"})
	for _, r := range res.Recommendations {
		rows = append(rows, []string{r})
	}
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

// Metrics is the Metric,Value block of a CSV export.
type Metrics map[string]string

// ErrNotExport is returned when the input does not start with the
// Metric,Value header.
var ErrNotExport = errors.New("not an assessment export")

// ParseMetrics reads the Metric,Value rows of an export. Reading stops at
// the first row that is not a two-column pair.
func ParseMetrics(r io.Reader) (Metrics, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) != 2 || header[0] != "Metric" || header[1] != "Value" {
		return nil, ErrNotExport
	}

	m := make(Metrics)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		if len(rec) != 2 {
			break
		}
		m[rec[0]] = rec[1]
	}
	return m, nil
}

// Total returns the parsed total score.
func (m Metrics) Total() (int, error) {
	v, ok := m[MetricTotal]
	if !ok {
		return 0, fmt.Errorf("missing %q", MetricTotal)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", MetricTotal, err)
	}
	return n, nil
}

// Tier returns the parsed risk level.
func (m Metrics) Tier() (risk.Tier, error) {
	v, ok := m[MetricRiskLevel]
	if !ok {
		return "", fmt.Errorf("missing %q", MetricRiskLevel)
	}
	switch t := risk.Tier(v); t {
	case risk.Low, risk.Medium, risk.High:
		return t, nil
	default:
		return "", fmt.Errorf("unknown risk level %q", v)
	}
}
