package chart

// Captions explaining the multi-player views.
const (
	CaptionRadar   = "This radar chart compares the selected players across the per-90 performance metrics. Each player is drawn in a different color."
	CaptionHeatmap = "This heatmap shows the selected players' per-90 metrics by color intensity. Darker cells represent higher values."
	CaptionScatter = "This scatter plot compares the selected players' expected goals (xG) with their actual goals. The red dashed line marks a perfect match between xG and goals."
)

// Titles of the comparison bar charts.
const (
	TitlePer90Comparison  = "Player performance metrics comparison (per 90 minutes)"
	TitleVolumeComparison = "Player performance metrics comparison (matches played, goals)"
)
