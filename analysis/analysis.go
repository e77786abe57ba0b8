// Package analysis summarizes a ranked frontier into the JSON report the
// CLI's analyze command emits: per-case data plus a correlation section
// relating human-judged coherence to total objective score.
package analysis

import (
	"gonum.org/v1/gonum/stat"

	"github.com/arclight-labs/dsbeam/semantic"
)

const schemaVersion = "v1"

// CaseData is one ranked case's flattened, report-friendly fields.
type CaseData struct {
	CaseID          uint64            `json:"case_id"`
	ParetoRank      int               `json:"pareto_rank"`
	TotalScore      float64           `json:"total_score"`
	Coherence       float64           `json:"coherence"`
	CoherenceDetail *semantic.Coherence `json:"coherence_detail,omitempty"`
}

// Section holds the aggregate statistics computed over a ranked frontier.
type Section struct {
	CorrHCTotal float64 `json:"corr_hc_total"`
	MeanScore   float64 `json:"mean_score"`
	StdDevScore float64 `json:"stddev_score"`
}

// Report is the top-level JSON document the analyze CLI emits.
type Report struct {
	SchemaVersion string     `json:"schema_version"`
	Data          []CaseData `json:"data"`
	Report        Section    `json:"report"`
}

// Analyze builds a Report from a semantically ranked frontier. Data is
// sorted ascending by pareto rank, matching ranked's existing order. When
// includeDetail is set, each case also carries its five-component coherence
// breakdown (CoherenceDetail); otherwise only the flattened total is
// reported.
func Analyze(ranked []semantic.Ranked, includeDetail bool) Report {
	data := make([]CaseData, len(ranked))
	scores := make([]float64, len(ranked))
	coherences := make([]float64, len(ranked))
	for i, r := range ranked {
		data[i] = CaseData{
			CaseID:     r.Objective.CaseID,
			ParetoRank: r.Objective.ParetoRank,
			TotalScore: r.Objective.TotalScore,
			Coherence:  r.Coherence.TotalScore,
		}
		if includeDetail {
			detail := r.Coherence
			data[i].CoherenceDetail = &detail
		}
		scores[i] = r.Objective.TotalScore
		coherences[i] = r.Coherence.TotalScore
	}

	var corr, mean, stddev float64
	if len(scores) > 1 {
		corr = stat.Correlation(coherences, scores, nil)
		mean, stddev = stat.MeanStdDev(scores, nil)
	} else if len(scores) == 1 {
		mean = scores[0]
	}

	return Report{
		SchemaVersion: schemaVersion,
		Data:          data,
		Report: Section{
			CorrHCTotal: corr,
			MeanScore:   mean,
			StdDevScore: stddev,
		},
	}
}
