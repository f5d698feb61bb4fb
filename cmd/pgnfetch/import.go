/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/mikeb26/pgnfetch/chesscom"
	"github.com/mikeb26/pgnfetch/internal"
	"github.com/mikeb26/pgnfetch/lichess"
	"github.com/mikeb26/pgnfetch/pgn"
)

func handleImport(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	date := fs.String("date", "", "ISO8601 date (YYYY-MM-DD) on or after which games are imported (default 1970-01-01)")
	token := fs.String("token", os.Getenv("LICHESS_TOKEN"), "lichess API token")
	bucket := fs.String("cachebucket", internal.DefaultCacheBucket, "S3 bucket caching chess.com archives; empty for in-memory")
	positional, err := parseInterspersed(fs, args)
	if err != nil {
		os.Exit(1)
	}
	if len(positional) != 1 {
		fmt.Fprintln(os.Stderr, "Please provide a chess.com username.")
		fs.Usage()
		os.Exit(1)
	}
	user := positional[0]
	from := parseDateFlag(*date)

	importer, err := lichess.NewImporter(*token)
	if errors.Is(err, lichess.ErrMissingToken) {
		log.Fatal("No LICHESS_TOKEN to upload with!")
	} else if err != nil {
		log.Fatalf("Error creating importer: %v", err)
	}

	fmt.Printf("Getting chess.com games for %v...\n", user)
	cc := chesscom.NewClient(ctx, *bucket)
	games := gamesForImport(cc.GetGames(ctx, user, from))
	fmt.Printf("Importing %v games into lichess...\n", len(games))

	n, err := importer.ImportGames(ctx, games)
	if err != nil {
		log.Fatalf("Error importing games (%v imported): %v", n, err)
	}
	fmt.Printf("Imported %v games\n", n)
}

// gamesForImport splits monthly blobs into single games. The blobs are joined
// first and split on result lines rather than blank lines since the import
// endpoint wants exactly one game per request.
func gamesForImport(blobs []string) []string {
	return pgn.SplitByResultTerminator(strings.Join(blobs, "\n\n"))
}
