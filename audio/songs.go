package audio

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lixenwraith/head-soccer/core"
)

// triplet is one third of a half note
const triplet = core.Quarter * 2 / 3

// MarioIntro plays once between the splash screen and the countdown
var MarioIntro = core.Song{
	{core.NoteE5, core.Eighth},
	{core.NoteE5, core.Eighth},
	{core.Rest, core.Eighth},
	{core.NoteE5, core.Eighth},
	{core.Rest, core.Eighth},
	{core.NoteC5, core.Eighth},
	{core.NoteE5, core.Quarter},
	{core.NoteG5, core.Quarter},
	{core.Rest, core.Quarter},
	{core.NoteG4, core.Quarter},
}

// LuffyTheme celebrates a winner
var LuffyTheme = core.Song{
	{core.NoteFS4, core.Eighth},
	{core.NoteG4, core.Eighth},
	{core.NoteA4, core.Quarter},
	{core.NoteB4, core.Eighth},
	{core.NoteCS5, core.Eighth},
	{core.NoteD5, core.Eighth},
	{core.NoteE5, core.Eighth},
	{core.NoteFS5, core.Eighth},
	{core.NoteG5, core.Eighth},
	{core.NoteA5, core.Quarter},
	{core.NoteD6, core.Quarter},
	{core.NoteA5, core.Quarter},
	{core.NoteG5, core.Eighth},
	{core.NoteA5, core.Sixteenth},
	{core.NoteG5, core.Sixteenth},
	{core.NoteFS5, core.Half},
}

// ZoroTheme marks a draw
var ZoroTheme = core.Song{
	{core.NoteA4, core.Eighth},
	{core.NoteB4, core.Eighth},
	{core.NoteC5, core.Eighth},
	{core.NoteE4, core.Eighth},
	{core.NoteGS4, core.Half},
	{core.NoteA4, core.Quarter * 3},
	{core.NoteAS4, core.Quarter},
	{core.NoteA4, core.Half},
}

// SmashSplash loops on the title screen: the phrase, then the same phrase an octave down
var SmashSplash = core.Song{
	// Phrase, upper octave
	{core.NoteB4, core.Eighth},
	{core.NoteFS4, core.Sixteenth},
	{core.NoteG4, core.Sixteenth},
	{core.NoteFS5, core.Eighth * 3},
	{core.NoteB4, core.Eighth},
	{core.NoteFS5, core.Eighth},
	{core.NoteA5, core.Eighth},
	{core.NoteGS5, core.Eighth},
	{core.NoteE5, core.Eighth},
	{core.NoteB4, core.Half},
	{core.Rest, core.Eighth},
	{core.NoteB4, core.Sixteenth},
	{core.NoteCS5, core.Sixteenth},
	{core.NoteD5, core.Half},
	{core.Rest, core.Eighth},
	{core.NoteB4, core.Eighth},
	{core.NoteD5, core.Eighth},
	{core.NoteFS5, core.Eighth},
	{core.NoteE5, core.Quarter * 3},
	{core.Rest, core.Quarter},

	{core.NoteB4, core.Eighth},
	{core.NoteFS4, core.Sixteenth},
	{core.NoteG4, core.Sixteenth},
	{core.NoteFS5, core.Eighth * 3},
	{core.NoteB4, core.Eighth},
	{core.NoteFS5, core.Eighth},
	{core.NoteA5, core.Eighth},
	{core.NoteGS5, core.Eighth},
	{core.NoteE5, core.Eighth},
	{core.NoteB4, core.Half},
	{core.Rest, core.Eighth},
	{core.NoteB4, core.Sixteenth},
	{core.NoteCS5, core.Sixteenth},
	{core.NoteD5, core.Quarter},
	{core.NoteE4, core.Quarter},
	{core.NoteG4, triplet},
	{core.NoteD5, triplet},
	{core.NoteB4, triplet},
	{core.NoteD5, core.Half},
	{core.NoteE4, core.Sixteenth},
	{core.NoteD4, core.Sixteenth},

	// Phrase, lower octave
	{core.NoteB3, core.Eighth},
	{core.NoteFS3, core.Sixteenth},
	{core.NoteG3, core.Sixteenth},
	{core.NoteFS4, core.Eighth * 3},
	{core.NoteB3, core.Eighth},
	{core.NoteFS4, core.Eighth},
	{core.NoteA4, core.Eighth},
	{core.NoteGS4, core.Eighth},
	{core.NoteE4, core.Eighth},
	{core.NoteB3, core.Half},
	{core.Rest, core.Eighth},
	{core.NoteB3, core.Sixteenth},
	{core.NoteCS4, core.Sixteenth},
	{core.NoteD4, core.Half},
	{core.Rest, core.Eighth},
	{core.NoteB3, core.Eighth},
	{core.NoteD4, core.Eighth},
	{core.NoteFS4, core.Eighth},
	{core.NoteE4, core.Quarter * 3},
	{core.Rest, core.Quarter},

	{core.NoteB3, core.Eighth},
	{core.NoteFS3, core.Sixteenth},
	{core.NoteG3, core.Sixteenth},
	{core.NoteFS4, core.Eighth * 3},
	{core.NoteB3, core.Eighth},
	{core.NoteFS4, core.Eighth},
	{core.NoteA4, core.Eighth},
	{core.NoteGS4, core.Eighth},
	{core.NoteE4, core.Eighth},
	{core.NoteB3, core.Half},
	{core.Rest, core.Eighth},
	{core.NoteB3, core.Sixteenth},
	{core.NoteCS4, core.Sixteenth},
	{core.NoteD4, core.Quarter},
	{core.NoteE3, core.Quarter},
	{core.NoteG3, triplet},
	{core.NoteD4, triplet},
	{core.NoteB3, triplet},
	{core.NoteD4, core.Half},
	{core.NoteE5, core.Sixteenth},
	{core.NoteD5, core.Sixteenth},
}

var songs = map[string]core.Song{
	"mario": MarioIntro,
	"luffy": LuffyTheme,
	"zoro":  ZoroTheme,
	"smash": SmashSplash,
}

// SongByName looks up a song by its config name, case-insensitive
func SongByName(name string) (core.Song, error) {
	if s, ok := songs[strings.ToLower(strings.TrimSpace(name))]; ok {
		return s, nil
	}
	return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownSong, name, strings.Join(SongNames(), ", "))
}

// SongNames returns the known song names, sorted
func SongNames() []string {
	names := make([]string, 0, len(songs))
	for n := range songs {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
