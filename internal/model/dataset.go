package model

// ChartKind identifies how a dataset should be rendered.
type ChartKind string

// Chart kinds.
const (
	ChartPie      ChartKind = "pie"
	ChartLine     ChartKind = "line"
	ChartBar      ChartKind = "bar"
	ChartDoughnut ChartKind = "doughnut"
)

// Dataset is one chart-ready visualization dataset.
type Dataset struct {
	Type  ChartKind `json:"type"`
	Title string    `json:"title"`
	Data  ChartData `json:"data"`
}

// ChartData holds parallel label and series sequences. Every series has
// exactly len(Labels) data points, aligned by index.
type ChartData struct {
	Labels   []string `json:"labels"`
	Datasets []Series `json:"datasets"`
}

// Series is one named data series with optional display colors. The
// backgroundColor field carries a color list for pie/doughnut charts and a
// single color string for bar charts, matching the renderer's contract.
type Series struct {
	Label           string    `json:"label,omitempty"`
	Data            []float64 `json:"data"`
	BackgroundColor any       `json:"backgroundColor,omitempty"`
	BorderColor     string    `json:"borderColor,omitempty"`
	Tension         float64   `json:"tension,omitempty"`
}
