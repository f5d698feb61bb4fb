/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package lichess

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/mikeb26/pgnfetch/internal"
	"github.com/mikeb26/pgnfetch/pgn"
)

const DefaultBaseURL = "https://lichess.org"

// Client downloads game exports. Exports depend on the since parameter and
// grow as users play, so they are never cached.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient() *Client {
	return NewClientForURL(DefaultBaseURL)
}

// NewClientForURL returns a Client talking to a lichess instance other than
// lichess.org, e.g. a self-hosted lila server.
func NewClientForURL(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
	}
}

// GetGames returns every game user has played on or after since as a single
// PGN blob in lichess' bulk export layout (games separated by two blank
// lines).
func (client *Client) GetGames(ctx context.Context, user string,
	since pgn.Date) (string, error) {

	exportURL, err := url.Parse(client.baseURL + "/api/games/user/" + url.PathEscape(user))
	if err != nil {
		return "", err
	}
	q := exportURL.Query()
	q.Set("since", strconv.FormatInt(since.Time().UnixMilli(), 10))
	exportURL.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, "GET", exportURL.String(), nil)
	if err != nil {
		return "", fmt.Errorf("lichess.games: creating request: %w", err)
	}
	req.Header.Set("User-Agent", internal.UserAgent)
	req.Header.Set("Accept", internal.PgnContentType)

	resp, err := client.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("lichess.games: fetching %v: %w", user, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("lichess.games: reading %v: %w", user, err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("lichess.games: HTTP %d fetching %s: %s",
			resp.StatusCode, exportURL.String(), string(body))
	}

	blob := string(body)
	log.Printf("lichess.games: %v %v games", exportURL.String(),
		pgn.CountGames(blob))

	return blob, nil
}
