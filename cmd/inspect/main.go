package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/danielpatrickdp/lotto-forge/internal/history"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to the history database")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/lotto_history.db [--json]")
		os.Exit(2)
	}

	store, err := history.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	records, err := store.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load: %v\n", err)
		os.Exit(1)
	}

	if *jsonOut {
		out, _ := json.MarshalIndent(records, "", "  ")
		fmt.Println(string(out))
		return
	}

	if len(records) == 0 {
		fmt.Println("history is empty")
		return
	}
	fmt.Printf("%-20s %-24s %8s %5s %4s %8s %8s\n",
		"CREATED", "NUMBERS", "SCORE", "SUM", "AC", "ODD:EVEN", "LOW:HIGH")
	for _, rec := range records {
		nums := make([]string, len(rec.Combination))
		for i, n := range rec.Combination {
			nums[i] = fmt.Sprintf("%d", n)
		}
		fmt.Printf("%-20s %-24s %8.2f %5d %4d %8s %8s\n",
			rec.CreatedAt.Format("2006-01-02 15:04:05"),
			strings.Join(nums, " "),
			rec.Score, rec.Metrics.Sum, rec.Metrics.AC,
			rec.Metrics.OddEven, rec.Metrics.LowHigh)
	}
}

// #endregion main
