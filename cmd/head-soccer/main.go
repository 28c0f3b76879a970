package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/pflag"

	"github.com/lixenwraith/head-soccer/audio"
	"github.com/lixenwraith/head-soccer/config"
	"github.com/lixenwraith/head-soccer/engine"
	"github.com/lixenwraith/head-soccer/mode"
	"github.com/lixenwraith/head-soccer/render"
	"github.com/lixenwraith/head-soccer/vmath"
)

var (
	configPath = pflag.StringP("config", "c", "", "config file (default: user config dir, optional)")
	debugLog   = pflag.BoolP("debug", "d", false, "write a debug log to logs/head-soccer.log")
	muted      = pflag.BoolP("mute", "m", false, "start with sound muted")
	seconds    = pflag.IntP("seconds", "s", 0, "match length in seconds")
	seed       = pflag.Uint64("seed", 0, "kick jitter seed (0 seeds from the clock)")
	scanDevice = pflag.String("scan-device", "", "read raw PS/2 set-2 scan codes from a file or device")
	dumpConfig = pflag.Bool("dump-config", false, "print the effective configuration and exit")
)

// openVoice is replaced in tests to observe the audio lifecycle
var openVoice = audio.OpenVoice

func main() {
	pflag.Parse()
	os.Exit(run())
}

// run wires the game and returns the exit code; deferred cleanup runs on every path
func run() (code int) {
	logFile := setupLogging(*debugLog)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "head-soccer: %v\n", err)
		return 1
	}

	if *dumpConfig {
		if err := cfg.Encode(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "head-soccer: %v\n", err)
			return 1
		}
		return 0
	}

	matchSeed := cfg.Match.Seed
	if matchSeed == 0 {
		matchSeed = uint64(time.Now().UnixNano())
	}
	log.Printf("match: %ds, seed %d", cfg.Match.Seconds, matchSeed)

	// Audio failure is not fatal, the voice falls back to silent
	voice, closeAudio, _ := openVoice(&cfg.Audio)
	defer closeAudio()
	if m, ok := voice.(audio.Muter); ok && *muted {
		m.SetMuted(true)
	}

	scan, err := openScanDevice(*scanDevice)
	if err != nil {
		fmt.Fprintf(os.Stderr, "head-soccer: %v\n", err)
		return 1
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		return 1
	}
	defer screen.Fini()

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mHEAD-SOCCER CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			code = 1
		}
	}()

	screen.SetStyle(render.DefaultStyle)
	screen.HideCursor()
	screen.Clear()

	events := make(chan tcell.Event, 256)
	go pollEvents(screen, events)

	session, err := mode.NewSession(mode.Options{
		Config:   cfg,
		Clock:    engine.NewMonotonicClock(),
		Renderer: render.NewRenderer(screen),
		Events:   events,
		Scan:     scan,
		Voice:    voice,
		Rand:     vmath.NewFastRand(matchSeed),
	})
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "head-soccer: %v\n", err)
		return 1
	}

	if err := session.Run(); err != nil {
		log.Printf("session: %v", err)
	}
	return 0
}

// loadConfig reads the config file and applies flag overrides
// The default path is optional, an explicit one is required
func loadConfig() (*config.Config, error) {
	path, required := *configPath, true
	if path == "" {
		path, required = config.DefaultPath(), false
	}

	cfg, err := config.Load(path, required)
	if err != nil {
		return nil, err
	}

	if pflag.CommandLine.Changed("seconds") {
		cfg.Match.Seconds = *seconds
	}
	if pflag.CommandLine.Changed("seed") {
		cfg.Match.Seed = *seed
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// pollEvents feeds terminal events to the session until the screen is finalized
func pollEvents(screen tcell.Screen, events chan<- tcell.Event) {
	// Panic recovery for input polling goroutine to ensure terminal cleanup
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer close(events)

	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		events <- ev
	}
}

// openScanDevice streams raw scan codes from a keyboard bridge, nil when unset
func openScanDevice(path string) (<-chan byte, error) {
	if path == "" {
		return nil, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scan device: %w", err)
	}

	codes := make(chan byte, 64)
	go func() {
		defer f.Close()
		defer close(codes)

		r := bufio.NewReader(f)
		for {
			b, err := r.ReadByte()
			if err != nil {
				log.Printf("scan device: %v", err)
				return
			}
			codes <- b
		}
	}()
	log.Printf("scan device: reading %s", path)
	return codes, nil
}
