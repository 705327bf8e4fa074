/*
Package indices implements the CAC construction-index projection.

PURPOSE:
  Construction contracts in Argentina are indexed by the Cámara Argentina
  de la Construcción cost index. Given a base amount and a duration, this
  package projects the month-by-month adjusted amount, tagging each month
  as backed by published data or by an estimate.

KEY CONCEPTS IN THIS FILE (source.go):
  - IndexSource: The external collaborator supplying month-over-month
    variations. The projection itself (cac.go) is strictly accumulation
    arithmetic over whatever the source returns.
  - StaticSource: A fixed snapshot of published variations plus a single
    estimated rate for months beyond the data.

SEE ALSO:
  - cac.go: The accumulation arithmetic
  - config/: Overrides the snapshot and the estimated rate
*/
package indices

import (
	"fmt"
	"time"

	"github.com/habitar/fiscal-engine/fiscal"
)

// IndexSource supplies the month-over-month index variation for a given
// month. The second return reports whether the value is published data
// (true) or an estimate (false).
type IndexSource interface {
	MonthlyVariation(year int, month time.Month) (fiscal.Percentage, bool)
}

// =============================================================================
// STATIC SOURCE - Published snapshot + flat estimate
// =============================================================================

// StaticSource answers from a fixed table of published variations and
// falls back to a flat estimated rate for any month outside the table.
type StaticSource struct {
	published map[string]fiscal.Percentage
	estimated fiscal.Percentage
}

// NewStaticSource builds a source from published month->percent data
// (keys "2024-03") and an estimated rate for everything else.
func NewStaticSource(published map[string]float64, estimated float64) *StaticSource {
	table := make(map[string]fiscal.Percentage, len(published))
	for key, v := range published {
		table[key] = fiscal.NewPercent(v)
	}
	return &StaticSource{published: table, estimated: fiscal.NewPercent(estimated)}
}

func (s *StaticSource) MonthlyVariation(year int, month time.Month) (fiscal.Percentage, bool) {
	if v, ok := s.published[monthKey(year, month)]; ok {
		return v, true
	}
	return s.estimated, false
}

func monthKey(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, int(month))
}

// DefaultSource returns the compiled-in snapshot of published CAC general
// variations (late 2023 through 2024) with a 3%/month estimate beyond it.
// Both the table and the estimate are overridable via config.
func DefaultSource() *StaticSource {
	return NewStaticSource(map[string]float64{
		"2023-10": 8.1,
		"2023-11": 11.1,
		"2023-12": 22.9,
		"2024-01": 16.7,
		"2024-02": 11.9,
		"2024-03": 10.1,
		"2024-04": 7.8,
		"2024-05": 5.0,
		"2024-06": 4.1,
		"2024-07": 4.6,
		"2024-08": 3.9,
		"2024-09": 3.4,
		"2024-10": 2.9,
		"2024-11": 2.6,
		"2024-12": 2.7,
	}, 3.0)
}
