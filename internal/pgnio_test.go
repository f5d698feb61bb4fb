/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func TestWriteReadPgnLocal(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "games.pgn")
	blobs := []string{"[Event \"a\"]\n\n1. e4 1-0\n\n\n", "[Event \"b\"]\n\n1. d4 0-1\n"}

	if err := WritePgn(ctx, path, blobs); err != nil {
		t.Fatalf("WritePgn: %v", err)
	}
	got, err := ReadPgn(ctx, path)
	if err != nil {
		t.Fatalf("ReadPgn: %v", err)
	}
	if want := blobs[0] + blobs[1]; got != want {
		t.Errorf("ReadPgn() = %q; want %q", got, want)
	}
}

func TestParseS3URI(t *testing.T) {
	cases := []struct {
		uri     string
		bucket  string
		key     string
		isS3    bool
		wantErr bool
	}{
		{"games.pgn", "", "", false, false},
		{"/tmp/s3://x", "", "", false, false},
		{"s3://bucket/path/to/games.pgn", "bucket", "path/to/games.pgn", true, false},
		{"s3://bucket", "", "", true, true},
		{"s3:///key", "", "", true, true},
	}
	for _, c := range cases {
		bucket, key, isS3, err := parseS3URI(c.uri)
		if (err != nil) != c.wantErr {
			t.Errorf("parseS3URI(%q) err = %v; wantErr %v", c.uri, err, c.wantErr)
			continue
		}
		if bucket != c.bucket || key != c.key || isS3 != c.isS3 {
			t.Errorf("parseS3URI(%q) = %q, %q, %v", c.uri, bucket, key, isS3)
		}
	}
}

func TestParseDateOrZero(t *testing.T) {
	for _, s := range []string{"", "null"} {
		d, err := ParseDateOrZero(s)
		if err != nil || !d.IsZero() {
			t.Errorf("ParseDateOrZero(%q) = %v, %v; want zero", s, d, err)
		}
	}
	d, err := ParseDateOrZero("2023-01-01")
	if err != nil {
		t.Fatalf("ParseDateOrZero: %v", err)
	}
	if y, m, day := d.Date(); y != 2023 || m != time.January || day != 1 {
		t.Errorf("ParseDateOrZero(2023-01-01) = %v", d)
	}
}
