// main.go
//
// Entry point for the honeycomb solver.
// Two modes:
//   - Server (default): load the default word list, open the dictionary DB,
//     and serve the HTTP API.
//   - One-shot (-wordlist): solve a word list file, print the report to
//     stdout, and exit. No DB is touched in this mode.

package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/axel-kramer/honeycomb/internal/httpserver"
	"github.com/axel-kramer/honeycomb/internal/solver"
	"github.com/axel-kramer/honeycomb/internal/words"
)

func main() {
	wordlist := flag.String("wordlist", "", "Solve this word list file and exit (skips the server)")
	workers := flag.Int("workers", 0, "Search worker count (0 = number of CPUs)")
	flag.Parse()

	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	cfg := filterConfigFromEnv()

	if *wordlist != "" {
		if err := solveFile(*wordlist, cfg, *workers); err != nil {
			log.Fatal().Err(err).Str("wordlist", *wordlist).Msg("solve failed")
		}
		return
	}

	list, err := words.Load(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}
	log.Info().Int("words", list.Len()).Msg("word list loaded")

	db, err := openDB(getEnv("DATABASE_PATH", "./data/honeycomb.db"))
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	if err := migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}

	srv := httpserver.New(db, cfg, list, *workers)
	port := getEnv("PORT", "5175")
	log.Info().Str("port", port).Msg("starting honeycomb server")
	if err := srv.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

// solveFile runs the one-shot CLI path: load, solve, print, exit.
func solveFile(path string, cfg words.Config, workers int) error {
	list, err := words.LoadFile(path, cfg)
	if err != nil {
		return err
	}
	table := solver.BuildPointsTable(list)
	res, err := solver.SearchParallel(table, workers)
	if err != nil {
		return err
	}
	rep := solver.BuildReport(list, res.Honeycomb)

	fmt.Printf("best honeycomb: %s (center %s), %d words\n\n",
		rep.Letters, rep.Center, rep.WordCount)
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, g := range rep.Groups {
		for _, sw := range g.Words {
			star := ""
			if g.Pangram {
				star = "*"
			}
			fmt.Fprintf(tw, "%s\t%d%s\t\n", sw.Word, sw.Score, star)
		}
	}
	fmt.Fprintf(tw, "\t%d\t\n", rep.TotalScore)
	return tw.Flush()
}

// filterConfigFromEnv builds the word filter config, honoring
// FORBIDDEN_LETTER ("S" by default, "none" to disable).
func filterConfigFromEnv() words.Config {
	cfg := words.DefaultConfig()
	switch v := strings.ToUpper(strings.TrimSpace(os.Getenv("FORBIDDEN_LETTER"))); {
	case v == "":
		// keep default
	case v == "NONE":
		cfg.Forbidden = 0
	case len(v) == 1 && v[0] >= 'A' && v[0] <= 'Z':
		cfg.Forbidden = v[0]
	default:
		log.Warn().Str("value", v).Msg("ignoring invalid FORBIDDEN_LETTER")
	}
	return cfg
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
