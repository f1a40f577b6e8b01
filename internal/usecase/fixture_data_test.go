package usecase

import (
	"context"
	"testing"

	"github.com/riskibarqy/season-insights/internal/domain/chart"
	"github.com/riskibarqy/season-insights/internal/domain/season"
	"github.com/stretchr/testify/require"
)

var testHeader = []string{"Player", "Nation", "Squad", "Pos", "MP", "Min", "Gls", "Per90_Gls", "Per90_xG", "Per90_Ast", "Per90_xAG"}

var testRecords = [][]string{
	{"Mohamed Salah", "eg EGY", "Liverpool", "FW", "38", "3,371", "29", "0.77", "0.66", "0.48", "0.37"},
	{"Erling Haaland", "no NOR", "Manchester City", "FW", "31", "2,749", "22", "0.72", "0.73", "0.1", "0.08"},
	{"Bukayo Saka", "eng ENG", "Arsenal", "FW,MF", "25", "1,730", "6", "0.31", "0.35", "0.52", "0.45"},
	{"Virgil van Dijk", "nl NED", "Liverpool", "DF", "37", "3,330", "3", "0.08", "0.1", "0.03", "0.04"},
	{"Mohamed Salah", "eg EGY", "Roma", "FW", "2", "90", "0", "0", "0.1", "0", "0"},
}

func newTestTable(t *testing.T) *season.Table {
	t.Helper()

	table, err := season.NewTable(testHeader, testRecords)
	require.NoError(t, err)
	return table
}

type fakeRenderer struct {
	calls []string
	err   error
}

func (f *fakeRenderer) record(name string) ([]byte, error) {
	f.calls = append(f.calls, name)
	if f.err != nil {
		return nil, f.err
	}
	return []byte(name), nil
}

func (f *fakeRenderer) Bar(_ context.Context, _ chart.BarChart) ([]byte, error) {
	return f.record("Bar")
}

func (f *fakeRenderer) GroupedBars(_ context.Context, c chart.GroupedBarChart) ([]byte, error) {
	return f.record("GroupedBars:" + c.Title)
}

func (f *fakeRenderer) Radar(_ context.Context, _ chart.RadarChart) ([]byte, error) {
	return f.record("Radar")
}

func (f *fakeRenderer) Scatter(_ context.Context, _ chart.ScatterChart) ([]byte, error) {
	return f.record("Scatter")
}

func (f *fakeRenderer) BoxPlot(_ context.Context, _ chart.BoxPlot) ([]byte, error) {
	return f.record("BoxPlot")
}

func (f *fakeRenderer) Heatmap(_ context.Context, _ chart.Heatmap) ([]byte, error) {
	return f.record("Heatmap")
}
