// Command treeburst converts a decision tree exported from
// scikit-learn as JSON into an interactive sunburst HTML document.
//
// Usage:
//
//	treeburst -in tree.json -out tree.html
//	treeburst -in tree.json -out - > tree.html
//
// Display defaults come from TREEBURST_* environment variables; flags
// take precedence.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/crimson-sun/treeburst/internal/chart"
	"github.com/crimson-sun/treeburst/internal/config"
	"github.com/crimson-sun/treeburst/internal/flatten"
	"github.com/crimson-sun/treeburst/internal/logging"
	"github.com/crimson-sun/treeburst/internal/output/html"
	"github.com/crimson-sun/treeburst/internal/source/sklearnjson"
)

func main() {
	cfg := config.Load()

	in := flag.String("in", "", "path to the exported tree JSON (required)")
	out := flag.String("out", "tree.html", "output HTML path, or - for stdout")
	title := flag.String("title", cfg.Chart.Title, "figure title")
	width := flag.Int("width", cfg.Chart.Width, "figure width in pixels")
	height := flag.Int("height", cfg.Chart.Height, "figure height in pixels")
	maxDepth := flag.Int("maxdepth", cfg.Chart.MaxDepth, "rendered rings from the root, 0 for all")
	theme := flag.String("theme", cfg.Chart.Theme, "echarts theme name")
	precision := flag.Int("precision", cfg.Chart.Precision, "decimal places for split thresholds")
	logLevel := flag.String("log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	flag.Parse()

	toStdout := *out == "-"
	logging.Init(toStdout, *logLevel)

	if *in == "" {
		fmt.Fprintln(os.Stderr, "treeburst: -in is required")
		flag.Usage()
		os.Exit(2)
	}

	tree, err := sklearnjson.Load(*in)
	if err != nil {
		fatal("load tree", err)
	}

	records, err := flatten.New(*precision, "").Run(tree)
	if err != nil {
		fatal("flatten tree", err)
	}
	slog.Debug("tree flattened", "nodes", len(records), "input", *in)

	fig, err := chart.Build(records, chart.Settings{
		Title:    *title,
		Width:    fmt.Sprintf("%dpx", *width),
		Height:   fmt.Sprintf("%dpx", *height),
		Theme:    *theme,
		MaxDepth: *maxDepth,
	})
	if err != nil {
		fatal("build chart", err)
	}

	if toStdout {
		if err := html.Write(fig, os.Stdout); err != nil {
			fatal("write html", err)
		}
		return
	}
	if err := html.Save(fig, *out); err != nil {
		fatal("save html", err)
	}
	slog.Info("sunburst written", "path", *out, "nodes", len(records))
}

func fatal(msg string, err error) {
	slog.Error(msg, "error", err)
	os.Exit(1)
}
