/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package chesscom

import (
	"context"
	"net/http"
	"time"

	"github.com/mikeb26/pgnfetch/internal"
)

const DefaultBaseURL = "https://api.chess.com"

type Client struct {
	baseURL string
	// finished months never change and can be held on to
	httpClient30day *http.Client
	// archive lists and the month in progress
	httpClient1hour *http.Client
	now             func() time.Time
}

// NewClient returns a Client whose responses are cached in cacheBucket, or in
// memory when the bucket is empty or unreachable.
func NewClient(ctx context.Context, cacheBucket string) *Client {
	return &Client{
		baseURL:         DefaultBaseURL,
		httpClient30day: internal.NewCachedHttpClient(ctx, cacheBucket, 30*24*time.Hour),
		httpClient1hour: internal.NewCachedHttpClient(ctx, cacheBucket, time.Hour),
		now:             time.Now,
	}
}
