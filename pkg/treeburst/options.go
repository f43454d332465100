package treeburst

import "fmt"

type options struct {
	title        string
	subtitle     string
	width        int
	height       int
	maxDepth     int
	theme        string
	precision    int
	rootLabel    string
	featureNames []string
	classNames   []string
}

// Option configures a Flatten or Visualize call.
type Option func(*options)

// WithTitle sets the figure title. Default: "Decision Tree".
func WithTitle(title string) Option {
	return func(o *options) { o.title = title }
}

// WithSubtitle sets the figure subtitle shown under the title.
func WithSubtitle(subtitle string) Option {
	return func(o *options) { o.subtitle = subtitle }
}

// WithSize sets the figure dimensions in pixels. Default: 900x900.
func WithSize(width, height int) Option {
	return func(o *options) {
		o.width = width
		o.height = height
	}
}

// WithMaxDepth limits the number of rendered rings, counted from the
// root. 0 (default) renders every level.
func WithMaxDepth(depth int) Option {
	return func(o *options) { o.maxDepth = depth }
}

// WithTheme sets the echarts theme name (e.g. "westeros", "walden").
// Default: the library's standard light theme.
func WithTheme(theme string) Option {
	return func(o *options) { o.theme = theme }
}

// WithPrecision sets the number of decimal places for split thresholds
// in wedge labels. Default: 2.
func WithPrecision(places int) Option {
	return func(o *options) { o.precision = places }
}

// WithRootLabel overrides the label of the synthetic root wedge.
// Default: "All Data".
func WithRootLabel(label string) Option {
	return func(o *options) { o.rootLabel = label }
}

// WithFeatureNames supplies feature index -> display name mappings,
// overriding any names carried by the model. Unresolvable indices fall
// back to "feature_<index>".
func WithFeatureNames(names []string) Option {
	return func(o *options) { o.featureNames = names }
}

// WithClassNames supplies value column -> class name mappings for leaf
// labels, overriding any names carried by the model.
func WithClassNames(names []string) Option {
	return func(o *options) { o.classNames = names }
}

func defaultOptions() options {
	return options{
		title:     "Decision Tree",
		width:     900,
		height:    900,
		precision: 2,
	}
}

// cssSize renders a pixel count as the CSS dimension string the chart
// initializer expects.
func cssSize(px int) string {
	return fmt.Sprintf("%dpx", px)
}
