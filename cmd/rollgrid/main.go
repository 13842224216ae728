package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/rollgrid/internal/config"
	"github.com/san-kum/rollgrid/internal/dataset"
	"github.com/san-kum/rollgrid/internal/export"
	"github.com/san-kum/rollgrid/internal/grid"
	"github.com/san-kum/rollgrid/internal/logging"
	"github.com/san-kum/rollgrid/internal/slides"
	"github.com/san-kum/rollgrid/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile string
	storyFile  string
	width      float64
	height     float64
	variant    string
	theme      string
	logLevel   string
	logFile    string
	// export
	slideArg string
	outFile  string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// newRootCmd registers the commands. Without a subcommand the root runs
// the interactive presentation.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "rollgrid",
		Short:         "animated unit grid of toilet paper consumption",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runPresentation,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&storyFile, "story", "", "story file path (yaml)")
	pf.Float64Var(&width, "width", config.DefaultWidth, "viewport width")
	pf.Float64Var(&height, "height", config.DefaultHeight, "viewport height")
	pf.StringVar(&variant, "variant", config.DefaultVariant, "slide set: "+strings.Join(config.ListPresets(), ", "))
	pf.StringVar(&theme, "theme", config.DefaultTheme, "theme: "+strings.Join(viz.ThemeNames(), ", "))
	pf.StringVar(&logLevel, "log-level", "info", "log level")
	pf.StringVar(&logFile, "log-file", "", "log file (the presentation discards logs without one)")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "write a settled slide as svg",
		Args:  cobra.NoArgs,
		RunE:  exportSlide,
	}
	exportCmd.Flags().StringVar(&slideArg, "slide", "1", "slide number, id or name")
	exportCmd.Flags().StringVar(&outFile, "out", "", "output file (default stdout)")

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "print the dataset",
		Args:  cobra.NoArgs,
		RunE:  showStats,
	}

	slidesCmd := &cobra.Command{
		Use:   "slides",
		Short: "list the slides of the configured variant",
		Args:  cobra.NoArgs,
		RunE:  listSlides,
	}

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the default config",
		Args:  cobra.ExactArgs(1),
		RunE:  initConfig,
	}

	rootCmd.AddCommand(exportCmd, statsCmd, slidesCmd, initCmd)
	return rootCmd
}

// loadConfig reads the config file, if any, and applies the flags the
// user actually set on top of it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("story") {
		cfg.Story = storyFile
	}
	if flags.Changed("width") {
		cfg.Viewport.Width = width
	}
	if flags.Changed("height") {
		cfg.Viewport.Height = height
	}
	if flags.Changed("variant") {
		cfg.Variant = variant
		cfg.Slides = nil
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if flags.Changed("log-file") {
		cfg.Log.File = logFile
	}
	return cfg, nil
}

// setupLogging routes logs to the configured file, or to fallback.
func setupLogging(cfg *config.Config, fallback io.Writer) (func(), error) {
	if cfg.Log.File == "" {
		logging.Setup(fallback, cfg.Log.Level)
		return func() {}, nil
	}
	f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logging.Setup(f, cfg.Log.Level)
	return func() { f.Close() }, nil
}

func loadStory(cfg *config.Config) (*dataset.Story, error) {
	if cfg.Story == "" {
		return dataset.Default(), nil
	}
	return dataset.Load(cfg.Story)
}

// buildPresentation generates the grid once for the configured viewport.
func buildPresentation(cfg *config.Config) (*slides.Presentation, error) {
	enabled, err := cfg.EnabledSlides()
	if err != nil {
		return nil, err
	}
	story, err := loadStory(cfg)
	if err != nil {
		return nil, err
	}
	layout := grid.Generate(story.Categories, grid.NewGeometry(cfg.GetViewport()))
	slog.Debug("grid generated",
		"cells", len(layout.Cells),
		"columns", layout.Columns,
		"rows", layout.Rows)
	return slides.New(layout, story, slides.WithSlides(enabled...)), nil
}

func runPresentation(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	closeLog, err := setupLogging(cfg, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	p, err := buildPresentation(cfg)
	if err != nil {
		return err
	}
	keys := viz.Wire(cfg.Bindings, p.Slides())
	return viz.RunInteractive(p, keys, viz.GetTheme(cfg.Theme), cfg.FPS)
}

func exportSlide(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	closeLog, err := setupLogging(cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	s, err := slides.ParseSlide(slideArg)
	if err != nil {
		return err
	}
	p, err := buildPresentation(cfg)
	if err != nil {
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	if outFile != "" {
		f, err := os.Create(outFile)
		if err != nil {
			return fmt.Errorf("failed to create output: %w", err)
		}
		defer f.Close()
		w = f
	}

	style := export.Style{Background: cfg.Export.Background, Text: cfg.Export.Text}
	if err := export.WriteSlide(w, p, s, style); err != nil {
		return err
	}
	if outFile != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "exported %s to %s\n", s, outFile)
	}
	return nil
}

func showStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	closeLog, err := setupLogging(cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	story, err := loadStory(cfg)
	if err != nil {
		return err
	}
	return writeStats(cmd.OutOrStdout(), story)
}

func writeStats(out io.Writer, story *dataset.Story) error {
	if story.Title != "" {
		fmt.Fprintf(out, "%s\n\n", story.Title)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "CATEGORY\t%s\tSHARE\t%s\n", strings.ToUpper(story.Unit), strings.ToUpper(story.MetricUnit))
	for _, c := range story.Categories {
		fmt.Fprintf(w, "%s\t%d\t%d%%\t%g\n", c.Name, c.Count, story.Percent(c.Name), story.Metric(c.Name))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\ntotal: %d %s\n", story.Total(), story.Unit)
	if story.Highlight != "" {
		fmt.Fprintf(out, "highlight: %s (%d%%)\n", story.Highlight, story.Percent(story.Highlight))
	}

	if len(story.Categories) < 2 {
		return nil
	}
	data := make([]float64, len(story.Categories))
	for i, c := range story.Categories {
		data[i] = float64(c.Count)
	}
	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption(fmt.Sprintf("%s per category, legend order", story.Unit)),
	)
	fmt.Fprintf(out, "\n%s\n", graph)
	return nil
}

func listSlides(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	closeLog, err := setupLogging(cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	p, err := buildPresentation(cfg)
	if err != nil {
		return err
	}
	return writeSlides(cmd.OutOrStdout(), p, viz.Wire(cfg.Bindings, p.Slides()))
}

func writeSlides(out io.Writer, p *slides.Presentation, keys map[string]slides.Slide) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tKEY\tINTERACTIVE\tCAPTION")
	for _, s := range p.Slides() {
		key, ok := viz.KeyFor(keys, s)
		if !ok {
			key = "-"
		}
		caption := strings.Join(p.Story.Captions[s.ID()], " / ")
		fmt.Fprintf(w, "%s\t%s\t%s\t%v\t%s\n", s.ID(), s, key, s.Interactive(), caption)
	}
	return w.Flush()
}

func initConfig(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()
	if err := config.Save(args[0], cfg); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (variants: %s)\n", args[0], strings.Join(config.ListPresets(), ", "))
	return nil
}
