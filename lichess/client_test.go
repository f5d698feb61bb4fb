/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package lichess

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mikeb26/pgnfetch/pgn"
)

const exportBlob = "[Event \"Rated blitz game\"]\n[UTCDate \"2024.03.01\"]\n\n1. e4 e5 1-0\n\n\n" +
	"[Event \"Rated rapid game\"]\n[UTCDate \"2024.03.02\"]\n\n1. d4 d5 0-1\n\n\n"

func newTestClient(srv *httptest.Server) *Client {
	return &Client{baseURL: srv.URL, httpClient: srv.Client()}
}

func TestGetGames(t *testing.T) {
	since := pgn.Date{Year: 2024, Month: time.March, Day: 1}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/games/user/magnus" {
			http.NotFound(w, r)
			return
		}
		if got, want := r.URL.Query().Get("since"), fmt.Sprint(since.Time().UnixMilli()); got != want {
			t.Errorf("since = %q; want %q", got, want)
		}
		if accept := r.Header.Get("Accept"); accept != "application/x-chess-pgn" {
			t.Errorf("Accept = %q", accept)
		}
		fmt.Fprint(w, exportBlob)
	}))
	defer srv.Close()

	blob, err := newTestClient(srv).GetGames(context.Background(), "magnus", since)
	if err != nil {
		t.Fatalf("GetGames: %v", err)
	}
	if blob != exportBlob {
		t.Errorf("GetGames altered the export: %q", blob)
	}
	if n := pgn.CountGames(blob); n != 2 {
		t.Errorf("expected 2 games, got %d", n)
	}
}

func TestGetGamesNotFound(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := newTestClient(srv).GetGames(context.Background(), "nobody", pgn.Epoch)
	if err == nil {
		t.Fatal("expected an error for a 404")
	}
	if !strings.Contains(err.Error(), "404") {
		t.Errorf("error %q does not mention the status", err)
	}
}
