package synth

import (
	"log"
	"time"

	"github.com/faiface/beep/speaker"
)

// Player plays a Bank on the system speaker.
type Player struct {
	bank   *Bank
	buffer time.Duration
}

// NewPlayer initializes the speaker at the bank's sample rate and starts
// streaming the bank. buffer trades latency against underruns.
func NewPlayer(bank *Bank, buffer time.Duration) (*Player, error) {
	sr := bank.Format().SampleRate
	if err := speaker.Init(sr, sr.N(buffer)); err != nil {
		return nil, err
	}
	speaker.Play(bank)
	log.Printf("audio: %d Hz, %d voices, buffer %v", sr, len(bank.Voices()), buffer)
	return &Player{bank: bank, buffer: buffer}, nil
}

// Strike sounds each listed voice under a single speaker lock.
func (p *Player) Strike(voices []int) {
	if len(voices) == 0 {
		return
	}
	speaker.Lock()
	defer speaker.Unlock()
	for _, i := range voices {
		if err := p.bank.Strike(i); err != nil {
			log.Printf("audio: %v", err)
		}
	}
}

// ToggleMute flips the master mute and reports whether it is now muted.
func (p *Player) ToggleMute() bool {
	speaker.Lock()
	defer speaker.Unlock()
	p.bank.SetMuted(!p.bank.Muted())
	return p.bank.Muted()
}

func (p *Player) Tap() *Tap { return p.bank.Tap() }

// Swap replaces the playing bank, re-initializing the speaker when the
// new bank runs at a different sample rate.
func (p *Player) Swap(bank *Bank) error {
	speaker.Clear()
	sr := bank.Format().SampleRate
	if sr != p.bank.Format().SampleRate {
		if err := speaker.Init(sr, sr.N(p.buffer)); err != nil {
			return err
		}
		log.Printf("audio: re-initialized at %d Hz", sr)
	}
	speaker.Play(bank)
	p.bank = bank
	return nil
}

// Close stops all playback. speaker.Clear takes the speaker lock itself.
func (p *Player) Close() {
	speaker.Clear()
}
