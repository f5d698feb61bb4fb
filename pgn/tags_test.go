/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package pgn

import (
	"reflect"
	"testing"
	"time"
)

const sampleGame = `[Event "Live Chess"]
[Site "Chess.com"]
[White "alice"]
[Black "bob \"the rook\""]
[Result "1-0"]
[UTCDate "2024.02.29"]

1. e4 e5 2. Qh5 Nc6 3. Bc4 Nf6 4. Qxf7# 1-0`

func TestTags(t *testing.T) {
	want := []Tag{
		{"Event", "Live Chess"},
		{"Site", "Chess.com"},
		{"White", "alice"},
		{"Black", `bob "the rook"`},
		{"Result", "1-0"},
		{"UTCDate", "2024.02.29"},
	}
	if got := Tags(sampleGame); !reflect.DeepEqual(got, want) {
		t.Errorf("Tags() = %+v; want %+v", got, want)
	}
}

func TestHeaderTag(t *testing.T) {
	if v, ok := HeaderTag(sampleGame, "White"); !ok || v != "alice" {
		t.Errorf("HeaderTag(White) = %q, %v", v, ok)
	}
	if _, ok := HeaderTag(sampleGame, "ECO"); ok {
		t.Errorf("HeaderTag(ECO) unexpectedly found")
	}
}

func TestGameDate(t *testing.T) {
	d, ok := GameDate(sampleGame)
	if !ok {
		t.Fatalf("GameDate() found no date")
	}
	want := Date{Year: 2024, Month: time.February, Day: 29}
	if d != want {
		t.Errorf("GameDate() = %v; want %v", d, want)
	}

	if _, ok := GameDate("[Date \"2023.02.29\"]\n1-0"); ok {
		t.Errorf("2023.02.29 is not a real day")
	}
}

func TestParseDate(t *testing.T) {
	cases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{"", Epoch, false},
		{"2023-01-15", Date{2023, time.January, 15}, false},
		{" 2021-12-31 ", Date{2021, time.December, 31}, false},
		{"2014/03/31", Date{2014, time.March, 31}, false},
		{"not a date", Date{}, true},
	}
	for _, c := range cases {
		got, err := ParseDate(c.in)
		if (err != nil) != c.wantErr {
			t.Errorf("ParseDate(%q) err = %v; wantErr %v", c.in, err, c.wantErr)
			continue
		}
		if got != c.want {
			t.Errorf("ParseDate(%q) = %v; want %v", c.in, got, c.want)
		}
	}
}

func TestDateBefore(t *testing.T) {
	a := Date{2022, time.December, 31}
	b := Date{2023, time.January, 1}
	if !a.Before(b) || b.Before(a) || a.Before(a) {
		t.Errorf("Before ordering is wrong for %v and %v", a, b)
	}
	if b.String() != "2023-01-01" {
		t.Errorf("String() = %q", b.String())
	}
	if !b.Time().Equal(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Time() = %v", b.Time())
	}
}
