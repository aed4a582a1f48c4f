// Package spinner renders a single-line progress indicator while a slow
// operation runs, typically a network fetch.
package spinner

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"golang.org/x/term"
)

var frames = []string{"◜", "◠", "◝", "◞", "◡", "◟"}

const frameInterval = 100 * time.Millisecond

// Spinner animates a message on one line until stopped. The zero value is
// not usable; construct with New.
type Spinner struct {
	writer io.Writer

	mu      sync.Mutex
	message string
	done    chan struct{}
	idle    chan struct{}
}

// New returns a stopped spinner that will write to w.
func New(w io.Writer, message string) *Spinner {
	return &Spinner{writer: w, message: message}
}

// Start begins the animation. Starting a running spinner is a no-op.
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done != nil {
		return
	}
	s.done = make(chan struct{})
	s.idle = make(chan struct{})
	go s.spin(s.done, s.idle)
}

// Stop halts the animation, waits for the render goroutine to exit, and
// clears the line. Stopping a stopped spinner is a no-op.
func (s *Spinner) Stop() {
	s.mu.Lock()
	if s.done == nil {
		s.mu.Unlock()
		return
	}
	close(s.done)
	idle := s.idle
	s.done, s.idle = nil, nil
	s.mu.Unlock()

	<-idle

	if f, ok := s.writer.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(s.writer, "\r\033[2K")
	} else {
		fmt.Fprint(s.writer, "\r")
	}
}

// SetMessage swaps the text shown next to the spinner frame.
func (s *Spinner) SetMessage(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.message = message
}

// Running reports whether the spinner is animating.
func (s *Spinner) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.done != nil
}

func (s *Spinner) spin(done, idle chan struct{}) {
	defer close(idle)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for i := 0; ; i++ {
		select {
		case <-done:
			return
		case <-ticker.C:
			s.mu.Lock()
			message := s.message
			s.mu.Unlock()
			fmt.Fprintf(s.writer, "\r%s %s", frames[i%len(frames)], message)
		}
	}
}

// Enabled reports whether f is an interactive terminal worth animating on.
func Enabled(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
