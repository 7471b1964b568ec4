package pixel2ascii

import (
	"fmt"
	"image"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

type Animator struct {
	enc *Encoder
	t   Terminal

	// mu is held while a frame is written so the cursor is never restored
	// in the middle of one.
	mu sync.Mutex
}

// NewAnimator draws frames through enc. If t is nil, an Xterm writing to the
// encoder's writer is used.
func NewAnimator(enc *Encoder, t Terminal) *Animator {
	if t == nil {
		t = &Xterm{
			Writer: enc.writer,
		}
	}
	return &Animator{
		enc: enc,
		t:   t,
	}
}

/*
	Animate redraws the screen once per frame, in order and without delay.
	Every frame is preceded by a clear so it replaces the previous one.
*/
func (a *Animator) Animate(frames []*image.NRGBA) error {
	a.t.ShowCursor(false)
	defer a.restoreCursor()
	stop := a.handleInterrupt()
	defer stop()

	for _, frame := range frames {
		if err := a.draw(frame); err != nil {
			return err
		}
	}
	return nil
}

func (a *Animator) draw(frame *image.NRGBA) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.t.Clear()
	return a.enc.Encode(frame)
}

func (a *Animator) restoreCursor() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.t.ShowCursor(true)
}

// handleInterrupt restores the cursor if the process is interrupted while
// frames are being drawn, then re-raises the signal.
func (a *Animator) handleInterrupt() (stop func()) {
	signals := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case s := <-signals:
			a.restoreCursor()
			// Stop notifying this channel
			signal.Stop(signals)
			// All Signals returned by the signal package should be of type syscall.Signal
			if signum, ok := s.(syscall.Signal); ok {
				syscall.Kill(syscall.Getpid(), signum)
			} else {
				panic(fmt.Sprintf("unexpected signal: %v", s))
			}
		case <-done:
		}
	}()
	return func() {
		signal.Stop(signals)
		close(done)
	}
}
