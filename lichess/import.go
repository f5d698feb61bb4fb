/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package lichess

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/mikeb26/pgnfetch/internal"
	"github.com/mikeb26/pgnfetch/pgn"
)

// lichess asks clients to wait a full minute after being rate limited
const DefaultImportBackoff = 61 * time.Second

var ErrMissingToken = errors.New("lichess: no API token to import with")

// Importer uploads games to the lichess import endpoint one at a time.
type Importer struct {
	// Backoff is the fixed wait after a rejected or failed attempt.
	Backoff time.Duration
	// MaxAttempts bounds the attempts per game; 0 retries until success.
	MaxAttempts int

	baseURL    string
	token      string
	httpClient *http.Client
}

// ImportResult is the lichess response to a successful import.
type ImportResult struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type importRequest struct {
	Pgn string `json:"pgn"`
}

// NewImporter returns an Importer that authenticates with token. An empty
// token is rejected up front so no request is ever sent without one.
func NewImporter(token string) (*Importer, error) {
	if token == "" {
		return nil, ErrMissingToken
	}

	return &Importer{
		Backoff:    DefaultImportBackoff,
		baseURL:    DefaultBaseURL,
		token:      token,
		httpClient: http.DefaultClient,
	}, nil
}

// ImportGames imports games in order, moving to the next game only once the
// current one is accepted. It returns how many games were imported.
func (imp *Importer) ImportGames(ctx context.Context,
	games []string) (int, error) {

	for idx, game := range games {
		white, _ := pgn.HeaderTag(game, "White")
		black, _ := pgn.HeaderTag(game, "Black")
		log.Printf("lichess.import: importing game %v/%v (%v vs %v)", idx+1,
			len(games), white, black)

		res, err := imp.ImportGame(ctx, game)
		if err != nil {
			return idx, fmt.Errorf("lichess.import: game %v: %w", idx+1, err)
		}
		log.Printf("lichess.import: imported %v", res.URL)
	}

	return len(games), nil
}

// ImportGame submits a single game, waiting Backoff and retrying after every
// non-200 response or transport error.
func (imp *Importer) ImportGame(ctx context.Context,
	game string) (*ImportResult, error) {

	for attempt := 1; ; attempt++ {
		res, err := imp.postGame(ctx, game)
		if err == nil {
			return res, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if imp.MaxAttempts > 0 && attempt >= imp.MaxAttempts {
			return nil, fmt.Errorf("giving up after %v attempts: %w", attempt,
				err)
		}
		log.Printf("lichess.import: attempt %v failed: %v; retrying in %v",
			attempt, err, imp.Backoff)

		select {
		case <-time.After(imp.Backoff):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

func (imp *Importer) postGame(ctx context.Context,
	game string) (*ImportResult, error) {

	payload, err := json.Marshal(importRequest{Pgn: game})
	if err != nil {
		return nil, fmt.Errorf("encoding import request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, "POST",
		imp.baseURL+"/api/import", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("creating import request: %w", err)
	}
	req.Header.Set("User-Agent", internal.UserAgent)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+imp.token)

	resp, err := imp.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading import response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(body))
	}

	var res ImportResult
	if err := json.Unmarshal(body, &res); err != nil {
		// the game is in; a response we can't read shouldn't resubmit it
		log.Printf("lichess.import: unexpected response %q: %v", body, err)
	}

	return &res, nil
}
