package httpapi

import (
	"github.com/riskibarqy/season-insights/internal/domain/chart"
	"github.com/riskibarqy/season-insights/internal/domain/season"
	"github.com/riskibarqy/season-insights/internal/usecase"
)

type playerOptionsDTO struct {
	Players          []string `json:"players"`
	DefaultSelection []string `json:"defaultSelection"`
}

type playerRowDTO struct {
	Player       string  `json:"player"`
	Nation       string  `json:"nation"`
	Squad        string  `json:"squad"`
	Position     string  `json:"position"`
	MP           int     `json:"mp"`
	Minutes      int     `json:"minutes"`
	Goals        int     `json:"goals"`
	Per90Goals   float64 `json:"per90Goals"`
	Per90XG      float64 `json:"per90XG"`
	Per90Assists float64 `json:"per90Assists"`
	Per90XAG     float64 `json:"per90XAG"`
}

type commentaryDTO struct {
	Finishing  string `json:"finishing"`
	Playmaking string `json:"playmaking"`
	Text       string `json:"text"`
}

type profileChartsDTO struct {
	Bar     chart.BarChart     `json:"bar"`
	Radar   chart.RadarChart   `json:"radar"`
	Scatter chart.ScatterChart `json:"scatter"`
	BoxPlot chart.BoxPlot      `json:"boxplot"`
}

type profileDTO struct {
	Player     playerRowDTO     `json:"player"`
	Summary    usecase.Summary  `json:"summary"`
	Commentary commentaryDTO    `json:"commentary"`
	Charts     profileChartsDTO `json:"charts"`
}

type comparisonRowDTO struct {
	Player string    `json:"player"`
	Values []float64 `json:"values"`
}

type comparisonTableDTO struct {
	Metrics []string           `json:"metrics"`
	Rows    []comparisonRowDTO `json:"rows"`
}

type comparisonChartsDTO struct {
	Bars         chart.GroupedBarChart `json:"bars"`
	Radar        chart.RadarChart      `json:"radar"`
	Heatmap      chart.Heatmap         `json:"heatmap"`
	Scatter      chart.ScatterChart    `json:"scatter"`
	MatchesGoals chart.GroupedBarChart `json:"matchesGoals"`
}

type captionsDTO struct {
	Radar   string `json:"radar"`
	Heatmap string `json:"heatmap"`
	Scatter string `json:"scatter"`
}

type comparisonDTO struct {
	Selected bool                 `json:"selected"`
	Players  []string             `json:"players,omitempty"`
	Per90    *comparisonTableDTO  `json:"per90,omitempty"`
	Volume   *comparisonTableDTO  `json:"volume,omitempty"`
	Charts   *comparisonChartsDTO `json:"charts,omitempty"`
	Captions *captionsDTO         `json:"captions,omitempty"`
}

func playerRowToDTO(row season.PlayerRow) playerRowDTO {
	return playerRowDTO{
		Player:       row.Player,
		Nation:       row.Nation,
		Squad:        row.Squad,
		Position:     row.Position,
		MP:           row.MP,
		Minutes:      row.Minutes,
		Goals:        row.Goals,
		Per90Goals:   row.Per90Gls,
		Per90XG:      row.Per90XG,
		Per90Assists: row.Per90Ast,
		Per90XAG:     row.Per90XAG,
	}
}

func profileToDTO(profile usecase.PlayerProfile) profileDTO {
	return profileDTO{
		Player:  playerRowToDTO(profile.Row),
		Summary: profile.Summary,
		Commentary: commentaryDTO{
			Finishing:  string(profile.Commentary.Finishing),
			Playmaking: string(profile.Commentary.Playmaking),
			Text:       profile.Commentary.Text,
		},
		Charts: profileChartsDTO{
			Bar:     profile.Bars,
			Radar:   profile.Radar,
			Scatter: profile.Scatter,
			BoxPlot: profile.BoxPlot,
		},
	}
}

func comparisonTableToDTO(table season.ComparisonTable) *comparisonTableDTO {
	rows := make([]comparisonRowDTO, 0, table.Len())
	for _, name := range table.Players() {
		values, _ := table.Row(name)
		rows = append(rows, comparisonRowDTO{Player: name, Values: values})
	}
	return &comparisonTableDTO{
		Metrics: season.MetricNames(table.Metrics()),
		Rows:    rows,
	}
}

func comparisonToDTO(view usecase.ComparisonView) comparisonDTO {
	if !view.Selected {
		return comparisonDTO{Selected: false}
	}

	return comparisonDTO{
		Selected: true,
		Players:  view.Comparison.Players,
		Per90:    comparisonTableToDTO(view.Comparison.Primary),
		Volume:   comparisonTableToDTO(view.Comparison.Secondary),
		Charts: &comparisonChartsDTO{
			Bars:         view.Bars,
			Radar:        view.Radar,
			Heatmap:      view.Heatmap,
			Scatter:      view.Scatter,
			MatchesGoals: view.MatchesGoals,
		},
		Captions: &captionsDTO{
			Radar:   view.RadarCaption,
			Heatmap: view.HeatmapCaption,
			Scatter: view.ScatterCaption,
		},
	}
}
