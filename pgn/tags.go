/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package pgn

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Tag is a single [Key "Value"] header pair.
type Tag struct {
	Key   string
	Value string
}

var (
	tagRe     = regexp.MustCompile(`(?m)^[ \t]*\[([A-Za-z0-9_]+)[ \t]+"((?:[^"\\]|\\.)*)"[ \t]*\]`)
	tagDateRe = regexp.MustCompile(`^(\d{4})\.(\d{2})\.(\d{2})$`)
)

// Tags returns the header tags of game in the order they appear.
func Tags(game string) []Tag {
	var tags []Tag
	for _, m := range tagRe.FindAllStringSubmatch(game, -1) {
		tags = append(tags, Tag{Key: m[1], Value: unescapeTagValue(m[2])})
	}
	return tags
}

// HeaderTag returns the value of the first tag named key.
func HeaderTag(game string, key string) (string, bool) {
	for _, tag := range Tags(game) {
		if tag.Key == key {
			return tag.Value, true
		}
	}
	return "", false
}

// GameDate returns the date a game was played, preferring UTCDate over the
// local Date tag. ok is false when neither holds a complete YYYY.MM.DD date;
// placeholders such as "2023.??.??" and impossible days don't count.
func GameDate(game string) (Date, bool) {
	for _, key := range []string{"UTCDate", "Date"} {
		val, found := HeaderTag(game, key)
		if !found {
			continue
		}
		if d, ok := parseTagDate(val); ok {
			return d, true
		}
	}
	return Date{}, false
}

func parseTagDate(val string) (Date, bool) {
	m := tagDateRe.FindStringSubmatch(strings.TrimSpace(val))
	if m == nil {
		return Date{}, false
	}
	y, _ := strconv.Atoi(m[1])
	mon, _ := strconv.Atoi(m[2])
	d, _ := strconv.Atoi(m[3])
	if !validDate(y, time.Month(mon), d) {
		return Date{}, false
	}

	return Date{Year: y, Month: time.Month(mon), Day: d}, true
}

func unescapeTagValue(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	r := strings.NewReplacer(`\"`, `"`, `\\`, `\`)
	return r.Replace(s)
}
