package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/danielpatrickdp/lotto-forge/internal/config"
	"github.com/danielpatrickdp/lotto-forge/internal/draw"
	"github.com/danielpatrickdp/lotto-forge/internal/filter"
	"github.com/danielpatrickdp/lotto-forge/internal/history"
	"github.com/danielpatrickdp/lotto-forge/internal/search"
	"github.com/danielpatrickdp/lotto-forge/internal/server"
)

// #region main

func main() {
	fixedArg := flag.String("fixed", "", "comma-separated balls that must appear (max 2)")
	excludeArg := flag.String("exclude", "", "comma-separated balls to exclude (non-numeric tokens ignored)")
	monteCarlo := flag.Bool("monte-carlo", false, "exhaustive run (10000 draws instead of 100)")
	weighted := flag.Bool("weighted", false, "weighted sampling instead of uniform")
	noSum := flag.Bool("no-sum", false, "disable the sum filter")
	noAC := flag.Bool("no-ac", false, "disable the arithmetic complexity filter")
	noMirror := flag.Bool("no-mirror", false, "disable the mirror filter")
	noMatrix := flag.Bool("no-matrix", false, "disable the matrix filter")
	dbPath := flag.String("db", "", "history database path (empty = config default, 'none' = no history)")
	jsonOut := flag.Bool("json", false, "output as JSON instead of colored balls")
	showHistory := flag.Bool("history", false, "print recent history and exit")
	seed := flag.Uint64("seed", 0, "seed the random source for a reproducible run")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	store := openStore(cfg, *dbPath)
	if store != nil {
		defer store.Close()
	}

	if *showHistory {
		if store == nil {
			fmt.Fprintln(os.Stderr, "history disabled")
			os.Exit(1)
		}
		printHistory(store, *jsonOut)
		return
	}

	fixed, err := parseFixed(*fixedArg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid --fixed: %v\n", err)
		os.Exit(2)
	}

	params := search.Params{
		TotalDraws: cfg.QuickDraws,
		BatchSize:  cfg.BatchSize,
		Filters: filter.Config{
			Sum:    !*noSum,
			AC:     !*noAC,
			Mirror: !*noMirror,
			Matrix: !*noMatrix,
		},
		Fixed:    fixed,
		Excluded: server.ParseExclusions(*excludeArg),
	}
	if *monteCarlo {
		params.TotalDraws = cfg.TotalDraws
	}
	if *weighted {
		params.Mode = draw.Weighted
	}

	engine := search.Default()
	if *seed != 0 {
		src := draw.NewSeededSource(*seed)
		engine = search.NewEngine(draw.NewSampler(src, draw.NewWeightTable(draw.NewSeededSource(*seed))), src)
	}

	res, err := engine.Run(context.Background(), params, func(p search.Progress) {
		if !*jsonOut {
			fmt.Printf("\r%3d%% %-12s", p.Percent, p.Phase)
		}
	})
	if !*jsonOut {
		fmt.Print("\r                    \r")
	}
	if err != nil {
		exitWithRunError(err)
	}

	if store != nil {
		rec := history.Record{
			RunID:       res.RunID,
			Combination: res.Combination,
			Score:       res.Score,
			Metrics:     res.Metrics,
		}
		if appendErr := store.Append(rec); appendErr != nil {
			fmt.Fprintf(os.Stderr, "history append failed: %v\n", appendErr)
		}
	}

	if *jsonOut {
		out, _ := json.MarshalIndent(res, "", "  ")
		fmt.Println(string(out))
		return
	}
	printResult(res)
}

// #endregion main

// #region errors

func exitWithRunError(err error) {
	switch {
	case search.IsConfigError(err):
		fmt.Fprintf(os.Stderr, "rejected: %v\n", err)
		os.Exit(2)
	case errors.Is(err, search.ErrNoCandidate):
		fmt.Fprintln(os.Stderr, "no acceptable candidate found; try relaxing the fixed/excluded configuration")
		os.Exit(3)
	default:
		fmt.Fprintf(os.Stderr, "run failed: %v\n", err)
		os.Exit(1)
	}
}

// #endregion errors

// #region parse

// parseFixed is strict, unlike exclusion parsing: a typo in a pinned ball must
// surface as an error rather than silently vanish.
func parseFixed(text string) ([]int, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	var out []int
	for _, tok := range strings.Split(text, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil {
			return nil, fmt.Errorf("bad ball %q", tok)
		}
		out = append(out, n)
	}
	return out, nil
}

// #endregion parse

// #region render

// ballColor follows the conventional 6/45 ball color bands.
func ballColor(n int) *color.Color {
	switch {
	case n <= 10:
		return color.New(color.FgYellow, color.Bold)
	case n <= 20:
		return color.New(color.FgBlue, color.Bold)
	case n <= 30:
		return color.New(color.FgRed, color.Bold)
	case n <= 40:
		return color.New(color.FgHiBlack, color.Bold)
	default:
		return color.New(color.FgGreen, color.Bold)
	}
}

func printResult(res search.Result) {
	fmt.Print("  ")
	for _, n := range res.Combination {
		ballColor(n).Printf("(%2d) ", n)
	}
	fmt.Println()
	fmt.Printf("  score %.2f | sum %d | AC %d | odd:even %s | low:high %s\n",
		res.Score, res.Metrics.Sum, res.Metrics.AC, res.Metrics.OddEven, res.Metrics.LowHigh)
}

func printHistory(store *history.Store, jsonOut bool) {
	records, err := store.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "history: %v\n", err)
		os.Exit(1)
	}
	if jsonOut {
		out, _ := json.MarshalIndent(records, "", "  ")
		fmt.Println(string(out))
		return
	}
	if len(records) == 0 {
		fmt.Println("no history yet")
		return
	}
	for _, rec := range records {
		fmt.Printf("%s  ", rec.CreatedAt.Format("2006-01-02 15:04"))
		for _, n := range rec.Combination {
			ballColor(n).Printf("(%2d) ", n)
		}
		fmt.Printf(" score %.2f\n", rec.Score)
	}
}

// #endregion render

// #region store

func openStore(cfg config.Config, dbFlag string) *history.Store {
	path := cfg.DBPath
	switch dbFlag {
	case "":
	case "none":
		return nil
	default:
		path = dbFlag
	}
	store, err := history.NewStore(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "history disabled: %v\n", err)
		return nil
	}
	return store
}

// #endregion store
