package chart

// Kind names a chart artifact.
type Kind string

const (
	KindBar          Kind = "bar"
	KindRadar        Kind = "radar"
	KindScatter      Kind = "scatter"
	KindBoxPlot      Kind = "boxplot"
	KindGroupedBars  Kind = "bars"
	KindHeatmap      Kind = "heatmap"
	KindMatchesGoals Kind = "matches-goals"
)

// Color is a "#rrggbb" hex color.
type Color string

type Bar struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Color Color   `json:"color"`
}

// BarChart is a single series of labelled bars in fixed order.
type BarChart struct {
	Title  string `json:"title"`
	YLabel string `json:"yLabel,omitempty"`
	Bars   []Bar  `json:"bars"`
}

type Series struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
	Color  Color     `json:"color"`
}

// GroupedBarChart has one bar group per category and one bar per series
// inside each group.
type GroupedBarChart struct {
	Title      string   `json:"title"`
	YLabel     string   `json:"yLabel,omitempty"`
	Categories []string `json:"categories"`
	Series     []Series `json:"series"`
}

type RadarTrace struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
	Color  Color     `json:"color"`
}

// RadarChart holds closed polygons: Axes and every trace's Values repeat
// their first element at the end.
type RadarChart struct {
	Title      string       `json:"title"`
	Axes       []string     `json:"axes"`
	Traces     []RadarTrace `json:"traces"`
	RadialMax  float64      `json:"radialMax"`
	ShowLegend bool         `json:"showLegend"`
}

type Point struct {
	Label     string  `json:"label"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Color     Color   `json:"color"`
	Highlight bool    `json:"highlight,omitempty"`
}

type Segment struct {
	X0    float64 `json:"x0"`
	Y0    float64 `json:"y0"`
	X1    float64 `json:"x1"`
	Y1    float64 `json:"y1"`
	Color Color   `json:"color"`
}

type ScatterChart struct {
	Title       string  `json:"title"`
	XLabel      string  `json:"xLabel"`
	YLabel      string  `json:"yLabel"`
	Points      []Point `json:"points"`
	Diagonal    Segment `json:"diagonal"`
	Correlation float64 `json:"correlation"`
}

type BoxGroup struct {
	Label  string    `json:"label"`
	Values []float64 `json:"values"`
	Min    float64   `json:"min"`
	Q1     float64   `json:"q1"`
	Median float64   `json:"median"`
	Q3     float64   `json:"q3"`
	Max    float64   `json:"max"`
	Mean   float64   `json:"mean"`
}

type BoxPlot struct {
	Title  string     `json:"title"`
	XLabel string     `json:"xLabel"`
	YLabel string     `json:"yLabel"`
	Groups []BoxGroup `json:"groups"`
}

// Heatmap is a rows x columns matrix with a formatted annotation per cell.
type Heatmap struct {
	Title       string      `json:"title"`
	Rows        []string    `json:"rows"`
	Columns     []string    `json:"columns"`
	Values      [][]float64 `json:"values"`
	Annotations [][]string  `json:"annotations"`
	Min         float64     `json:"min"`
	Max         float64     `json:"max"`
}
