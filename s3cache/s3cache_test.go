/* Copyright (c) 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file in the current directory for license terms
 */
package s3cache

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/gregjones/httpcache/test"
)

// PGNFETCH_TEST_BUCKET names a bucket the test credentials may write to.
func testBucket(t *testing.T) string {
	bucket := os.Getenv("PGNFETCH_TEST_BUCKET")
	if bucket == "" {
		t.Skip("Skipping test because PGNFETCH_TEST_BUCKET is unset")
	}
	return bucket
}

func TestS3Cache(t *testing.T) {
	bucket := testBucket(t)
	cache := New(context.Background(), bucket, false, true)
	if err := cache.Init(); err != nil {
		t.Skipf("Skipping test due to lack of access to %v: %v", bucket, err)
	}

	test.Cache(t, cache)
}

func TestS3CacheWithGzip(t *testing.T) {
	bucket := testBucket(t)
	cache := New(context.Background(), bucket, true, true)
	if err := cache.Init(); err != nil {
		t.Skipf("Skipping test due to lack of access to %v: %v", bucket, err)
	}

	test.Cache(t, cache)
}

func TestObjectKey(t *testing.T) {
	plain := New(context.Background(), "b", false, false)
	zipped := New(context.Background(), "b", true, false)

	url := "https://api.chess.com/pub/player/alice/games/2024/01/pgn"
	k1 := plain.objectKey(url)
	if !strings.HasPrefix(k1, DefaultPrefix+"/") {
		t.Errorf("key %q lacks prefix %q", k1, DefaultPrefix)
	}
	if k1 != plain.objectKey(url) {
		t.Errorf("object keys are not stable")
	}
	if k1 == plain.objectKey(url+"?x") {
		t.Errorf("distinct urls mapped to the same key")
	}
	if k2 := zipped.objectKey(url); k2 != k1+".gz" {
		t.Errorf("gzip key = %q; want %q", k2, k1+".gz")
	}
}

func TestGzipRoundTrip(t *testing.T) {
	data := []byte(strings.Repeat("[Event \"Live Chess\"]\n1. e4 e5 1-0\n\n\n", 50))
	z, err := gzipBytes(data)
	if err != nil {
		t.Fatalf("gzipBytes: %v", err)
	}
	if len(z) >= len(data) {
		t.Errorf("repetitive pgn did not compress: %d >= %d", len(z), len(data))
	}
	back, err := gunzip(z)
	if err != nil {
		t.Fatalf("gunzip: %v", err)
	}
	if !bytes.Equal(back, data) {
		t.Errorf("round trip mismatch")
	}
}
