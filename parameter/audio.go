package parameter

// Envelope timings in milliseconds, levels normalized 0-1

// Blocking note defaults
const (
	NoteAttack  = 10
	NoteDecay   = 10
	NoteRelease = 100
	NoteLevel   = 0.8
)

// Impact notes: percussive, waits on envelope idle instead of a fixed sleep
const (
	ImpactAttack  = 2
	ImpactDecay   = 2
	ImpactRelease = 10
	ImpactLevel   = 0.9

	// ImpactPollMs is the idle polling interval
	ImpactPollMs = 1
)

// Song sequencer envelope
const (
	SongAttack  = 5
	SongDecay   = 10
	SongRelease = 20
	SongLevel   = 0.8

	// SongSustainTrim is subtracted from note duration to get sustain
	SongSustainTrim = 30
	// SongSustainMin is the floor for derived song sustain
	SongSustainMin = 5
)

// Sound effect presets
const (
	CollisionAttack  = 5
	CollisionDecay   = 10
	CollisionRelease = 50
	KickAttack       = 5
	KickDecay        = 15
	KickRelease      = 60
	EffectLevel      = 1.0
)

// Countdown beeps
const (
	BeepShortMs      = 150
	BeepShortAttack  = 5
	BeepShortDecay   = 10
	BeepShortSustain = 300
	BeepShortRelease = 100
	BeepLongMs       = 500
	BeepLongAttack   = 10
	BeepLongDecay    = 10
	BeepLongSustain  = 500
	BeepLongRelease  = 200
)

// Synthesis backend
const (
	AudioSampleRate = 44100
	AudioBufferMs   = 50

	// DecayFloor is the fraction of peak level the decay phase settles at
	DecayFloor = 0.75

	DefaultMasterVolume = 0.5
)
