// Command mapgen generates one island and prints it as an ASCII minimap
// with a region legend, or as YAML.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/labenh526/Island/internal/config"
	"github.com/labenh526/Island/internal/database"
	"github.com/labenh526/Island/internal/island"
	"github.com/labenh526/Island/internal/logger"
	"github.com/labenh526/Island/internal/markov"
	"github.com/labenh526/Island/internal/namefilter"
	"golang.org/x/term"
)

type options struct {
	configFile    string
	loggingConfig string
	level         int
	width         int
	height        int
	regions       int
	seed          int64
	format        string
	outputFile    string
	showLegend    bool
	colorMode     string
	history       int
}

func main() {
	var opts options
	flag.StringVar(&opts.configFile, "config", "data/islands.yaml", "Path to generator config YAML file")
	flag.StringVar(&opts.loggingConfig, "logging", "data/logging.yaml", "Path to logging config YAML file")
	flag.IntVar(&opts.level, "level", 1, "Island level")
	flag.IntVar(&opts.width, "width", 0, "Island width (0 derives it from the level)")
	flag.IntVar(&opts.height, "height", 0, "Island height (0 derives it from the level)")
	flag.IntVar(&opts.regions, "regions", 0, "Region count (0 derives it from the island size)")
	flag.Int64Var(&opts.seed, "seed", 0, "Island seed (0 for a random island)")
	flag.StringVar(&opts.format, "format", "text", "Output format: text or yaml")
	flag.StringVar(&opts.outputFile, "output", "", "Output file (empty for stdout)")
	flag.BoolVar(&opts.showLegend, "legend", true, "Show region legend")
	flag.StringVar(&opts.colorMode, "color", "auto", "Terrain colours: auto, always or never")
	flag.IntVar(&opts.history, "history", 0, "Also list this many recent ledger runs")
	flag.Parse()

	logCfg, _ := logger.LoadConfig(opts.loggingConfig)
	if err := logger.Initialize(logCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	cfg, err := config.LoadConfig(opts.configFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	chain, err := markov.Load(cfg.Names.CorpusPath, cfg.Names.Order, cfg.Names.MaxLength, nil)
	if err != nil {
		return fmt.Errorf("loading name corpus: %w", err)
	}
	logger.Debug("name corpus loaded", "path", cfg.Names.CorpusPath, "keys", chain.Keys())

	genCfg := island.Config{
		MaxAttempts:     cfg.Generator.Attempts(),
		MaxNameAttempts: cfg.Generator.NameAttempts(),
		Seed:            cfg.Generator.Seed,
	}

	if cfg.Names.FilterPath != "" {
		filterCfg, err := namefilter.LoadConfig(cfg.Names.FilterPath)
		if err != nil {
			logger.Warning("name filter not loaded, names are unfiltered", "path", cfg.Names.FilterPath, "error", err)
		} else {
			genCfg.Filter = namefilter.New(filterCfg)
		}
	}

	var db *database.Database
	if cfg.Ledger.Enabled {
		db, err = database.OpenWithConfig(cfg.Ledger.DatabaseConfig())
		if err != nil {
			return fmt.Errorf("opening ledger: %w", err)
		}
		defer db.Close()
		genCfg.Recorder = db
	}

	w, h, n := dimensions(opts.level, opts.width, opts.height, opts.regions)
	gen := island.NewGenerator(chain, genCfg)

	var is *island.Island
	if opts.seed != 0 {
		is, err = gen.GenerateWithSeed(opts.seed, w, h, n, opts.level)
	} else {
		is, err = gen.NewIsland(w, h, n, opts.level)
	}
	if err != nil {
		return err
	}

	var output strings.Builder
	switch opts.format {
	case "yaml":
		if err := writeYAML(&output, is); err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}
	case "text":
		renderText(&output, is, renderOptions{
			legend: opts.showLegend,
			color:  useColor(opts.colorMode, opts.outputFile),
		})
		if db != nil && opts.history > 0 {
			if err := renderHistory(&output, db, opts.history, opts.level); err != nil {
				logger.Error("failed to read ledger", "error", err)
			}
		}
	default:
		return fmt.Errorf("unknown format %q (want text or yaml)", opts.format)
	}

	if opts.outputFile != "" {
		if err := os.WriteFile(opts.outputFile, []byte(output.String()), 0644); err != nil {
			return fmt.Errorf("writing output file: %w", err)
		}
		fmt.Printf("Island written to %s\n", opts.outputFile)
		return nil
	}
	fmt.Print(output.String())
	return nil
}

// dimensions fills in any unset size from the level defaults
func dimensions(level, width, height, regions int) (int, int, int) {
	side, perLevel := island.DimensionsForLevel(level)
	if width <= 0 {
		width = side
	}
	if height <= 0 {
		height = side
	}
	if regions <= 0 {
		if width == side && height == side {
			regions = perLevel
		} else {
			regions = (width*height + 19) / 20
		}
	}
	return width, height, regions
}

func useColor(mode, outputFile string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return outputFile == "" && term.IsTerminal(int(os.Stdout.Fd()))
	}
}

func renderHistory(w io.Writer, db *database.Database, limit, level int) error {
	runs, err := db.RecentRuns(limit)
	if err != nil {
		return err
	}
	stats, err := db.LevelStats(level)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "\nRecent runs:\n")
	for _, run := range runs {
		status := "ok"
		if !run.Succeeded {
			status = "FAILED: " + run.Failure
		}
		fmt.Fprintf(w, "  #%-5d seed=%-20d %dx%d regions=%-3d level=%-3d attempts=%-5d %s\n",
			run.ID, run.Seed, run.Width, run.Height, run.RegionCount, run.Level, run.Attempts, status)
	}
	fmt.Fprintf(w, "Level %d: %d runs, %d failed, %.1f attempts on average\n",
		stats.Level, stats.Runs, stats.Failures, stats.MeanAttempts)
	return nil
}
