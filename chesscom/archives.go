/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package chesscom

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mikeb26/pgnfetch/internal"
	"github.com/mikeb26/pgnfetch/pgn"
)

// Archive is one month of a player's games.
type Archive struct {
	URL   string
	Year  int
	Month time.Month
}

type apiArchivesResponse struct {
	Archives []string `json:"archives"`
}

// Before reports whether the archive's month is strictly earlier than the
// month containing d.
func (a Archive) Before(d pgn.Date) bool {
	if a.Year != d.Year {
		return a.Year < d.Year
	}
	return a.Month < d.Month
}

// Contains reports whether d falls within the archive's month.
func (a Archive) Contains(d pgn.Date) bool {
	return a.Year == d.Year && a.Month == d.Month
}

func (a Archive) String() string {
	return fmt.Sprintf("%04d/%02d", a.Year, int(a.Month))
}

// parseArchiveURL extracts the year and month from the last two path
// segments of an archive URL, e.g. .../games/2024/03.
func parseArchiveURL(rawURL string) (Archive, error) {
	segments := strings.Split(strings.TrimRight(rawURL, "/"), "/")
	if len(segments) < 2 {
		return Archive{}, fmt.Errorf("archive url %q has too few segments", rawURL)
	}
	year, err := strconv.Atoi(segments[len(segments)-2])
	if err != nil {
		return Archive{}, fmt.Errorf("archive url %q: bad year: %w", rawURL, err)
	}
	month, err := strconv.Atoi(segments[len(segments)-1])
	if err != nil || month < 1 || month > 12 {
		return Archive{}, fmt.Errorf("archive url %q: bad month", rawURL)
	}

	return Archive{
		URL:   strings.TrimRight(rawURL, "/"),
		Year:  year,
		Month: time.Month(month),
	}, nil
}

// GetArchives returns the monthly archives chess.com holds for user, oldest
// first. Months with no games are not listed.
func (client *Client) GetArchives(ctx context.Context,
	user string) ([]Archive, error) {

	archivesURL := client.baseURL + "/pub/player/" +
		url.PathEscape(strings.ToLower(user)) + "/games/archives"

	body, err := client.get(ctx, client.httpClient1hour, archivesURL)
	if err != nil {
		return nil, err
	}

	var archivesData apiArchivesResponse
	if err := json.Unmarshal(body, &archivesData); err != nil {
		return nil, fmt.Errorf("decoding archives JSON from %s: %w", archivesURL, err)
	}

	var archives []Archive
	for _, rawURL := range archivesData.Archives {
		a, err := parseArchiveURL(rawURL)
		if err != nil {
			log.Printf("chesscom.archives: skipping %v", err)
			continue
		}
		archives = append(archives, a)
	}

	return archives, nil
}

// GetMonthPgn returns the PGN of every game in the archive, separated by two
// blank lines.
func (client *Client) GetMonthPgn(ctx context.Context,
	archive Archive) (string, error) {

	httpClient := client.httpClient1hour
	if archive.Before(pgn.DateOf(client.now().UTC())) {
		httpClient = client.httpClient30day
	}

	body, err := client.get(ctx, httpClient, archive.URL+"/pgn")
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// GetGames returns the monthly PGN blobs for user covering from onward, in
// archive order. The month containing from is trimmed to games played on or
// after it; earlier months are never fetched. Failures are logged and the
// affected account or month is skipped.
func (client *Client) GetGames(ctx context.Context, user string,
	from pgn.Date) []string {

	archives, err := client.GetArchives(ctx, user)
	if err != nil {
		log.Printf("chesscom.games: skipping %v: %v", user, err)
		return nil
	}

	var blobs []string
	for _, archive := range archives {
		if archive.Before(from) {
			continue
		}
		blob, err := client.GetMonthPgn(ctx, archive)
		if err != nil {
			log.Printf("chesscom.games: skipping %v %v: %v", user, archive, err)
			continue
		}
		if archive.Contains(from) {
			blob = pgn.FilterByDate(blob, from)
		}
		count := pgn.CountGames(blob)
		log.Printf("chesscom.games: %v %v games", archive.URL, count)
		if count == 0 {
			continue
		}
		blobs = append(blobs, blob)
	}

	return blobs
}

func (client *Client) get(ctx context.Context, httpClient *http.Client,
	reqURL string) ([]byte, error) {

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", internal.UserAgent)

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d fetching %s: %s", resp.StatusCode, reqURL, string(body))
	}

	return body, nil
}
