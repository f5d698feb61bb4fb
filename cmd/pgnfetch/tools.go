/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mikeb26/pgnfetch/internal"
	"github.com/mikeb26/pgnfetch/pgn"
)

func handleFilter(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("filter", flag.ExitOnError)
	date := fs.String("date", "", "ISO8601 date (YYYY-MM-DD); earlier games are dropped")
	positional, err := parseInterspersed(fs, args)
	if err != nil {
		os.Exit(1)
	}
	if len(positional) != 2 || *date == "" {
		fmt.Fprintln(os.Stderr, "Please provide <in> <out> and --date.")
		fs.Usage()
		os.Exit(1)
	}
	in, out := positional[0], positional[1]
	cutoff := parseDateFlag(*date)

	blob, err := internal.ReadPgn(ctx, in)
	if err != nil {
		log.Fatalf("Error reading %v: %v", in, err)
	}
	filtered := pgn.FilterByDate(blob, cutoff)
	if err := internal.WritePgn(ctx, out, []string{filtered}); err != nil {
		log.Fatalf("Error writing %v: %v", out, err)
	}
	fmt.Printf("Kept %v of %v games played on or after %v\n",
		pgn.CountGames(filtered), pgn.CountGames(blob), cutoff)
}

func handleCount(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("count", flag.ExitOnError)
	positional, err := parseInterspersed(fs, args)
	if err != nil {
		os.Exit(1)
	}
	if len(positional) != 1 {
		fmt.Fprintln(os.Stderr, "Please provide a PGN file.")
		fs.Usage()
		os.Exit(1)
	}

	blob, err := internal.ReadPgn(ctx, positional[0])
	if err != nil {
		log.Fatalf("Error reading %v: %v", positional[0], err)
	}
	fmt.Print(countSummary(positional[0], blob))
}

func countSummary(name string, blob string) string {
	return fmt.Sprintf("%v: %v games (%v complete by result line)\n", name,
		pgn.CountGames(blob), len(pgn.SplitByResultTerminator(blob)))
}
