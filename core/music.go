package core

// Rest is the reserved zero frequency: silence that still consumes its duration
const Rest = 0

// Note frequencies in Hz, chromatic C3 to D6
const (
	NoteC3  = 131
	NoteCS3 = 139
	NoteD3  = 147
	NoteDS3 = 156
	NoteE3  = 165
	NoteF3  = 175
	NoteFS3 = 185
	NoteG3  = 196
	NoteGS3 = 208
	NoteA3  = 220
	NoteAS3 = 233
	NoteB3  = 247

	NoteC4  = 262
	NoteCS4 = 277
	NoteD4  = 294
	NoteDS4 = 311
	NoteE4  = 330
	NoteF4  = 349
	NoteFS4 = 370
	NoteG4  = 392
	NoteGS4 = 415
	NoteA4  = 440
	NoteAS4 = 466
	NoteB4  = 494

	NoteC5  = 523
	NoteCS5 = 554
	NoteD5  = 587
	NoteDS5 = 622
	NoteE5  = 659
	NoteF5  = 698
	NoteFS5 = 740
	NoteG5  = 784
	NoteGS5 = 831
	NoteA5  = 880
	NoteAS5 = 932
	NoteB5  = 988

	NoteC6  = 1047
	NoteCS6 = 1109
	NoteD6  = 1175
)

// Note durations in milliseconds
const (
	Whole     = 1600
	Half      = 800
	Quarter   = 400
	Eighth    = 200
	Sixteenth = 100
)

// Note is an immutable (frequency, duration) pair
type Note struct {
	Freq       int // Hz, Rest for silence
	DurationMs int
}

// IsRest reports whether the note is silent
func (n Note) IsRest() bool {
	return n.Freq == Rest
}

// Song is an ordered, read-only sequence of notes
type Song []Note

// DurationMs returns the total length of the song
func (s Song) DurationMs() int64 {
	var total int64
	for _, n := range s {
		total += int64(n.DurationMs)
	}
	return total
}
