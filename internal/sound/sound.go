// Package sound plays the chime that marks an expired interval or a new task.
package sound

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

//go:embed chime.wav
var chimeWAV []byte

// Notifier is anything that can play the notification.
type Notifier interface {
	Play()
}

// Options selects and tunes the notifier returned by Open.
type Options struct {
	Enabled      bool
	BellFallback bool
	Volume       float64 // effects.Volume with base 2; 0 is unchanged
	BellOut      io.Writer
}

// Open returns a speaker-backed player when possible. If the audio device
// cannot be opened it falls back to the terminal bell, or to silence.
func Open(opts Options) Notifier {
	if !opts.Enabled {
		return Nop{}
	}
	p, err := NewPlayer(opts.Volume)
	if err == nil {
		return p
	}
	log.Warn("audio unavailable", "err", err)
	if opts.BellFallback && opts.BellOut != nil {
		return Bell{W: opts.BellOut}
	}
	return Nop{}
}

var (
	speakerOnce sync.Once
	speakerErr  error
)

// Player plays the embedded chime through the system speaker.
type Player struct {
	buf    *beep.Buffer
	volume float64
}

func NewPlayer(volume float64) (*Player, error) {
	buf, err := decodeChime()
	if err != nil {
		return nil, err
	}
	format := buf.Format()
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10))
	})
	if speakerErr != nil {
		return nil, fmt.Errorf("init speaker: %w", speakerErr)
	}
	return &Player{buf: buf, volume: volume}, nil
}

func decodeChime() (*beep.Buffer, error) {
	streamer, format, err := wav.Decode(bytes.NewReader(chimeWAV))
	if err != nil {
		return nil, fmt.Errorf("decode chime: %w", err)
	}
	defer streamer.Close()

	buf := beep.NewBuffer(format)
	buf.Append(streamer)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("read chime: %w", err)
	}
	return buf, nil
}

// Play queues the chime and returns immediately.
func (p *Player) Play() {
	speaker.Play(&effects.Volume{
		Streamer: p.buf.Streamer(0, p.buf.Len()),
		Base:     2,
		Volume:   p.volume,
	})
}

// Bell rings the terminal bell.
type Bell struct {
	W io.Writer
}

func (b Bell) Play() {
	if _, err := io.WriteString(b.W, "\a"); err != nil {
		log.Debug("ring bell", "err", err)
	}
}

type Nop struct{}

func (Nop) Play() {}
