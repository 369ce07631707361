package api

import (
	"fmt"
	"sort"

	"github.com/rootless/compass/pkg/report"
)

// imputedWarnShare is the imputed share above which a hint becomes a warning.
const imputedWarnShare = 0.25

// DiagnosticHint is one human-readable insight about the collected data.
// The UI displays these as chips next to the comparison; Detail explains the
// issue in plain English.
type DiagnosticHint struct {
	// Key is a stable machine-readable identifier.
	Key string `json:"key"`
	// Level is "ok" | "info" | "warning" | "critical".
	Level string `json:"level"`
	// Title is a short label shown on the chip.
	Title string `json:"title"`
	// Detail is the full explanation shown on click/hover.
	Detail string `json:"detail"`
	// Value is an optional numeric value associated with this hint.
	Value *float64 `json:"value,omitempty"`
}

var levelRank = map[string]int{"critical": 0, "warning": 1, "info": 2, "ok": 3}

// computeDiagnostics derives data-quality hints from a run report, ordered
// critical first, then warnings, then info.
func computeDiagnostics(run *report.Run) []DiagnosticHint {
	var hints []DiagnosticHint
	retained := run.Countries[report.StageRetained]

	for _, ind := range run.Indicators {
		switch {
		case ind.Coverage == 0 || !ind.MeanDefined:
			hints = append(hints, DiagnosticHint{
				Key:   "no_data_" + ind.Name,
				Level: "critical",
				Title: fmt.Sprintf("No %s data", ind.Name),
				Detail: fmt.Sprintf(
					"None of the %d countries in the dataset had a value for %s, so it could not "+
						"be filled in or normalized. Its chart and radar axis are empty. "+
						"Check the indicator code in the collector config.",
					retained, ind.Name,
				),
			})

		case ind.Imputed > 0:
			share := float64(ind.Imputed) / float64(retained)
			level := "info"
			if share > imputedWarnShare {
				level = "warning"
			}
			v := share * 100
			hints = append(hints, DiagnosticHint{
				Key:   "imputed_" + ind.Name,
				Level: level,
				Title: fmt.Sprintf("%.0f%% %s estimated", v, ind.Name),
				Detail: fmt.Sprintf(
					"%d of %d countries had no reported %s, so the average of the other countries "+
						"was used instead. Comparisons on this indicator are less reliable for them.",
					ind.Imputed, retained, ind.Name,
				),
				Value: &v,
			})
		}
	}

	if n := run.Countries[report.StageUnresolved]; n > 0 {
		v := float64(n)
		hints = append(hints, DiagnosticHint{
			Key:   "unresolved_countries",
			Level: "info",
			Title: fmt.Sprintf("%d names unmatched", n),
			Detail: fmt.Sprintf(
				"%d entries in the provider's country list could not be matched to an ISO code "+
					"and are not shown. They are usually territories or groupings without an ISO code.",
				n,
			),
			Value: &v,
		})
	}
	if n := run.Countries[report.StageDropped]; n > 0 {
		v := float64(n)
		hints = append(hints, DiagnosticHint{
			Key:   "dropped_countries",
			Level: "info",
			Title: fmt.Sprintf("%d countries without data", n),
			Detail: fmt.Sprintf(
				"%d countries had no value for any indicator and were left out entirely.", n,
			),
			Value: &v,
		})
	}

	if len(hints) == 0 {
		hints = append(hints, DiagnosticHint{
			Key:    "complete",
			Level:  "ok",
			Title:  "Complete data",
			Detail: "Every country had a reported value for every indicator in the last run.",
		})
	}

	sort.SliceStable(hints, func(i, j int) bool {
		return levelRank[hints[i].Level] < levelRank[hints[j].Level]
	})
	return hints
}
