// Package audio plays the game's sound effects through the system speaker.
package audio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/jerry/internal/assets"
	"github.com/vovakirdan/jerry/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Sound is a decoded effect held in memory.
type Sound struct {
	name string
	buf  *beep.Buffer
}

// Name returns the file the sound was loaded from.
func (s *Sound) Name() string {
	return s.name
}

// Len returns the number of samples, 0 once freed.
func (s *Sound) Len() int {
	if s.buf == nil {
		return 0
	}
	return s.buf.Len()
}

// Player decodes WAV files and mixes them onto the speaker. A player
// without a speaker still loads sounds but plays nothing.
type Player struct {
	dir    string
	logger *log.Logger

	mu      sync.Mutex
	mixer   *beep.Mixer
	enabled bool
	plays   int
}

// New creates a player for sounds under dir. When mute is set or the
// speaker cannot be opened the player stays silent.
func New(dir string, mute bool, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	p := &Player{dir: dir, logger: logger, mixer: &beep.Mixer{}}
	if mute {
		return p
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		logger.Warn("audio disabled", "error", err)
		return p
	}
	speaker.Play(p.mixer)
	p.enabled = true
	return p
}

// Enabled reports whether sounds reach the speaker.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// LoadSound decodes a WAV file into memory, resampled to the speaker rate.
func (p *Player) LoadSound(path string) (core.Sound, error) {
	full := path
	if !filepath.IsAbs(path) && p.dir != "" {
		full = filepath.Join(p.dir, path)
	}

	f, err := os.Open(full)
	if err != nil {
		return nil, &assets.LoadError{Kind: "sound", Path: full, Err: err}
	}
	defer f.Close()

	stream, format, err := wav.Decode(f)
	if err != nil {
		return nil, &assets.LoadError{Kind: "sound", Path: full, Err: fmt.Errorf("decode wav: %w", err)}
	}
	defer stream.Close()

	var src beep.Streamer = stream
	if format.SampleRate != sampleRate {
		src = beep.Resample(4, format.SampleRate, sampleRate, stream)
	}
	format.SampleRate = sampleRate

	buf := beep.NewBuffer(format)
	buf.Append(src)
	return &Sound{name: path, buf: buf}, nil
}

// Play starts a sound and returns at once. Overlapping plays mix.
func (p *Player) Play(s core.Sound) {
	snd, ok := s.(*Sound)
	if !ok || snd.buf == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.plays++
	if !p.enabled {
		return
	}
	speaker.Lock()
	p.mixer.Add(snd.buf.Streamer(0, snd.buf.Len()))
	speaker.Unlock()
}

// Plays returns how many sounds were dispatched.
func (p *Player) Plays() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.plays
}

// FreeSound drops the decoded samples.
func (p *Player) FreeSound(s core.Sound) {
	if snd, ok := s.(*Sound); ok {
		snd.buf = nil
	}
}

// Close silences everything still playing.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.enabled = false
}
