/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 *
 * Package pgn slices multi-game PGN text blobs into individual games and
 * filters them by date. Games are treated as opaque text; nothing here parses
 * movetext.
 */
package pgn

import (
	"regexp"
	"strings"
)

// GameSeparator is the boundary bulk exports place between games: two
// consecutive blank lines.
const GameSeparator = "\n\n\n"

// a line terminates a game when its last token is a result; the dash may be
// missing ("10", "1/21/2")
var resultLineRe = regexp.MustCompile(`^.*(1-?0|0-?1|1/2-?1/2|\*)$`)

// SplitByBlankLines splits a blob on GameSeparator. The result always holds
// one more element than there are separators in blob; a blob with a single
// game yields a single element.
func SplitByBlankLines(blob string) []string {
	return strings.Split(blob, GameSeparator)
}

// SplitByResultTerminator splits a blob whose games are not reliably
// separated by blank lines. Lines accumulate into the current game until a
// line ending in a result token closes it. A trailing fragment with no result
// line is incomplete and is dropped.
func SplitByResultTerminator(blob string) []string {
	var games []string
	var cur []string

	for _, line := range strings.Split(blob, "\n") {
		line = strings.TrimSuffix(line, "\r")
		// blank lines ahead of a game's first line are inter-game padding
		if len(cur) == 0 && strings.TrimSpace(line) == "" {
			continue
		}
		cur = append(cur, line)
		if IsResultLine(line) {
			games = append(games, strings.Join(cur, "\n"))
			cur = nil
		}
	}

	return games
}

// IsResultLine reports whether line, once trimmed, ends in one of the PGN
// game termination markers 1-0, 0-1, 1/2-1/2 or *.
func IsResultLine(line string) bool {
	return resultLineRe.MatchString(strings.TrimSpace(line))
}

// JoinBlobs concatenates blank-line separated blobs so that every game,
// including the last one of each blob, is followed by GameSeparator. Monthly
// archives end without one, so joining them verbatim would fuse the last game
// of a month with the first game of the next. Blank blobs are skipped.
func JoinBlobs(blobs []string) string {
	var sb strings.Builder
	for _, blob := range blobs {
		if strings.TrimSpace(blob) == "" {
			continue
		}
		sb.WriteString(strings.TrimRight(blob, "\r\n"))
		sb.WriteString(GameSeparator)
	}
	return sb.String()
}

// CountGames returns the number of games in a blank-line separated blob.
// Monthly archives put a separator only between games while bulk exports also
// trail each game with one, so trailing newlines are ignored before counting.
func CountGames(blob string) int {
	if strings.TrimSpace(blob) == "" {
		return 0
	}
	return strings.Count(strings.TrimRight(blob, "\r\n"), GameSeparator) + 1
}
