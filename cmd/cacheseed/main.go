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
	"time"

	"github.com/mikeb26/pgnfetch/chesscom"
	"github.com/mikeb26/pgnfetch/internal"
	"github.com/mikeb26/pgnfetch/pgn"
)

// this program exists just to seed the http cache with the finished monthly
// archives of the given chess.com accounts

func main() {
	bucket := flag.String("cachebucket", internal.DefaultCacheBucket, "S3 bucket to seed")
	flag.Parse()
	if flag.NArg() == 0 || *bucket == "" {
		fmt.Fprintf(os.Stderr, "Usage: %v [-cachebucket BUCKET] <chess.com user>...\n",
			os.Args[0])
		os.Exit(1)
	}

	ctx := context.Background()
	client := chesscom.NewClient(ctx, *bucket)
	thisMonth := pgn.DateOf(time.Now().UTC())

	for _, user := range flag.Args() {
		archives, err := client.GetArchives(ctx, user)
		if err != nil {
			// best effort
			log.Printf("cacheseed: skipping %v: %v", user, err)
			continue
		}
		for _, archive := range archives {
			if !archive.Before(thisMonth) {
				// still changing; not worth caching for long
				continue
			}
			blob, err := client.GetMonthPgn(ctx, archive)
			time.Sleep(2 * time.Second) // avoid pegging chess.com
			if err != nil {
				// best effort
				continue
			}

			fmt.Printf("seeded %v %v (%v games)\n", user, archive,
				pgn.CountGames(blob))
		}
	}
}
