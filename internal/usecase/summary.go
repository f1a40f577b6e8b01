package usecase

import (
	"strconv"

	"github.com/riskibarqy/season-insights/internal/domain/season"
	"github.com/valyala/bytebufferpool"
)

// SummaryField is one labelled value of a player summary.
type SummaryField struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Summary holds the identity and per-90 blocks shown next to the charts.
type Summary struct {
	Identity         []SummaryField `json:"identity"`
	Per90            []SummaryField `json:"per90"`
	IdentityMarkdown string         `json:"identityMarkdown"`
	Per90Markdown    string         `json:"per90Markdown"`
}

func buildSummary(row season.PlayerRow) Summary {
	identity := []SummaryField{
		{Label: "Nation", Value: row.Nation},
		{Label: "Squad", Value: row.Squad},
		{Label: "Position", Value: row.Position},
		{Label: "Matches played", Value: strconv.Itoa(row.MP)},
		{Label: "Minutes", Value: strconv.Itoa(row.Minutes)},
		{Label: "Goals", Value: strconv.Itoa(row.Goals)},
	}
	per90 := []SummaryField{
		{Label: "Goals/90", Value: formatRate(row.Per90Gls)},
		{Label: "xG/90", Value: formatRate(row.Per90XG)},
		{Label: "Assists/90", Value: formatRate(row.Per90Ast)},
		{Label: "xAG/90", Value: formatRate(row.Per90XAG)},
	}

	return Summary{
		Identity:         identity,
		Per90:            per90,
		IdentityMarkdown: markdownList(identity),
		Per90Markdown:    markdownList(per90),
	}
}

func formatRate(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func markdownList(fields []SummaryField) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	for _, f := range fields {
		_, _ = buf.WriteString("- ")
		_, _ = buf.WriteString(f.Label)
		_, _ = buf.WriteString(": `")
		_, _ = buf.WriteString(f.Value)
		_, _ = buf.WriteString("`\n")
	}
	return buf.String()
}
