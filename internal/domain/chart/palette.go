package chart

const (
	ColorHighlight Color = "#ff0000"
	ColorDiagonal  Color = "#ff0000"
	ColorEdge      Color = "#000000"
)

// palette is the ten-color categorical palette used for per-player colors.
var palette = [...]Color{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

// metricBarColors follows the per-90 metric order.
var metricBarColors = [...]Color{"#006400", "#808080", "#4169e1", "#d3d3d3"}

// PaletteColor returns the color for the i-th player, cycling through the
// palette when there are more players than colors.
func PaletteColor(i int) Color {
	n := len(palette)
	return palette[(i%n+n)%n]
}

// PaletteSize is the number of distinct player colors.
func PaletteSize() int {
	return len(palette)
}

// HeatScale is the sequential yellow-green-blue scale used by heatmaps, from
// low to high.
func HeatScale() []Color {
	return []Color{
		"#ffffd9", "#edf8b1", "#c7e9b4", "#7fcdbb", "#41b6c4",
		"#1d91c0", "#225ea8", "#253494", "#081d58",
	}
}
