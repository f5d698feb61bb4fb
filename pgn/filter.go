/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package pgn

import (
	"strings"
)

// FilterByDate drops games from a blank-line separated blob whose date tag is
// strictly before cutoff. Games without a usable date are kept. Survivors are
// rejoined with GameSeparator so a blob with nothing dropped is returned
// unchanged.
func FilterByDate(blob string, cutoff Date) string {
	games := SplitByBlankLines(blob)
	kept := make([]string, 0, len(games))
	for _, game := range games {
		if d, ok := GameDate(game); ok && d.Before(cutoff) {
			continue
		}
		kept = append(kept, game)
	}

	return strings.Join(kept, GameSeparator)
}
