package audio

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/plus3/arcade/session"
)

const sampleRate = beep.SampleRate(44100)

// Player mixes cues into the speaker.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewPlayer creates a player at the given linear volume in [0, 1].
func NewPlayer(volume float64) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize opens the speaker. A second call is a no-op.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Cleanup silences everything queued.
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// Play queues c. It does nothing before Initialize.
func (p *Player) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	s, err := Build(c, sampleRate, p.volume)
	if err != nil {
		log.Printf("audio: %s cue: %v", c, err)
		return
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Listener returns a session listener that plays cues on p.
func (p *Player) Listener() *Notifier {
	return &Notifier{Play: p.Play}
}

// Notifier turns session stat changes into cues. The first update only
// records a baseline.
type Notifier struct {
	Play func(Cue)

	last   session.Stats
	primed bool
}

// StatsChanged plays Gain when the length or line count grows, Clear instead
// for games with levels, and LevelUp when the level rises.
func (n *Notifier) StatsChanged(st session.Stats) {
	prev, primed := n.last, n.primed
	n.last, n.primed = st, true
	if !primed || st.Count <= prev.Count {
		return
	}

	switch {
	case st.Level > prev.Level && prev.Level > 0:
		n.Play(LevelUp)
	case st.Level > 0:
		n.Play(Clear)
	default:
		n.Play(Gain)
	}
}

func (n *Notifier) GameOver(session.Stats) {
	n.Play(GameOver)
}
