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

	"golang.org/x/sync/errgroup"

	"github.com/mikeb26/pgnfetch/chesscom"
	"github.com/mikeb26/pgnfetch/internal"
	"github.com/mikeb26/pgnfetch/lichess"
	"github.com/mikeb26/pgnfetch/pgn"
)

// upper bound on accounts fetched at once
const maxConcurrentAccounts = 4

// source fetches every game of one account as a list of PGN blobs.
type source struct {
	name  string
	fetch func(ctx context.Context) []string
}

func handleDownload(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("download", flag.ExitOnError)
	var lichessUsers, chessUsers stringList
	fs.Var(&lichessUsers, "lichess", "lichess account name to retrieve (repeatable)")
	fs.Var(&chessUsers, "chess", "chess.com account name to retrieve (repeatable)")
	date := fs.String("date", "", "ISO8601 date (YYYY-MM-DD) on or after which games are downloaded (default 1970-01-01)")
	bucket := fs.String("cachebucket", internal.DefaultCacheBucket, "S3 bucket caching chess.com archives; empty for in-memory")
	positional, err := parseInterspersed(fs, args)
	if err != nil {
		os.Exit(1)
	}
	if len(positional) != 1 {
		fmt.Fprintln(os.Stderr, "Please provide exactly one output filename.")
		fs.Usage()
		os.Exit(1)
	}
	filename := positional[0]
	from := parseDateFlag(*date)

	lc := lichess.NewClient()
	cc := chesscom.NewClient(ctx, *bucket)

	var sources []source
	for _, user := range lichessUsers {
		sources = append(sources, lichessSource(lc, user, from))
	}
	for _, user := range chessUsers {
		sources = append(sources, chessComSource(cc, user, from))
	}

	fmt.Printf("Downloading games played since %v...\n", from)
	out := pgn.JoinBlobs(fetchAll(ctx, sources))

	if err := internal.WritePgn(ctx, filename, []string{out}); err != nil {
		log.Fatalf("Error writing %v: %v", filename, err)
	}
	fmt.Printf("Wrote %v games to %v\n", pgn.CountGames(out), filename)
}

func lichessSource(lc *lichess.Client, user string, from pgn.Date) source {
	return source{
		name: "lichess:" + user,
		fetch: func(ctx context.Context) []string {
			blob, err := lc.GetGames(ctx, user, from)
			if err != nil {
				log.Printf("pgnfetch.download: skipping lichess %v: %v", user, err)
				return nil
			}
			return []string{blob}
		},
	}
}

func chessComSource(cc *chesscom.Client, user string, from pgn.Date) source {
	return source{
		name: "chess.com:" + user,
		fetch: func(ctx context.Context) []string {
			return cc.GetGames(ctx, user, from)
		},
	}
}

// fetchAll runs every source and returns their blobs in source order,
// regardless of which finishes first.
func fetchAll(ctx context.Context, sources []source) []string {
	results := make([][]string, len(sources))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentAccounts)
	for idx, src := range sources {
		g.Go(func() error {
			fmt.Printf("Getting games for %v...\n", src.name)
			results[idx] = src.fetch(gctx)
			return nil
		})
	}
	// sources log their own failures and never return an error
	_ = g.Wait()

	var blobs []string
	for _, r := range results {
		blobs = append(blobs, r...)
	}

	return blobs
}
