package analysis

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arclight-labs/dsbeam/semantic"
)

func TestAnalyzeSchemaVersion(t *testing.T) {
	r := require.New(t)
	report := Analyze(nil, false)
	r.Equal("v1", report.SchemaVersion)
	r.Empty(report.Data)
}

func TestAnalyzePreservesOrderAndComputesStats(t *testing.T) {
	r := require.New(t)
	ranked := []semantic.Ranked{
		{Objective: semantic.ObjectiveCase{CaseID: 1, ParetoRank: 0, TotalScore: 0.8}, Coherence: semantic.Coherence{TotalScore: 0.7}},
		{Objective: semantic.ObjectiveCase{CaseID: 2, ParetoRank: 1, TotalScore: 0.4}, Coherence: semantic.Coherence{TotalScore: 0.3}},
	}
	report := Analyze(ranked, false)
	r.Len(report.Data, 2)
	r.Equal(uint64(1), report.Data[0].CaseID)
	r.InDelta(0.6, report.Report.MeanScore, 1e-9)
	r.Nil(report.Data[0].CoherenceDetail)

	detailed := Analyze(ranked, true)
	r.NotNil(detailed.Data[0].CoherenceDetail)
	r.InDelta(0.7, detailed.Data[0].CoherenceDetail.TotalScore, 1e-12)
}
