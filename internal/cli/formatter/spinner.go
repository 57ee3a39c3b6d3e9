package formatter

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// AnalyzingMessage is shown while the model is being queried.
const AnalyzingMessage = "AI가 당신의 멘탈 상태를 분석 중입니다..."

// Braille dot spinner frames.
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner displays an animated spinner with a message in the terminal.
type Spinner struct {
	mu       sync.Mutex
	out      io.Writer
	message  string
	interval time.Duration
	started  bool
	stop     chan struct{}
	done     chan struct{}
}

// NewSpinner creates a new spinner that draws to out.
func NewSpinner(out io.Writer, message string) *Spinner {
	return &Spinner{
		out:      out,
		message:  message,
		interval: 80 * time.Millisecond,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start begins the spinner animation. Call Stop() to end it.
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return
	}
	s.started = true

	go func() {
		defer close(s.done)
		i := 0
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-s.stop:
				// Clear the spinner line.
				fmt.Fprint(s.out, "\r\033[K")
				return
			case <-ticker.C:
				frame := spinnerFrames[i%len(spinnerFrames)]
				fmt.Fprintf(s.out, "\r  %s %s", StylePurple.Render(frame), Dim(s.message))
				i++
			}
		}
	}()
}

// Stop ends the spinner animation and clears the line. It is safe to call
// more than once, and before Start.
func (s *Spinner) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	select {
	case <-s.stop:
		// Already stopped.
		return
	default:
		close(s.stop)
	}
	if s.started {
		<-s.done
	}
}

// StartSpinner is a convenience function that creates, starts, and returns
// a spinner. Call the returned function to stop it.
func StartSpinner(out io.Writer, message string) func() {
	s := NewSpinner(out, message)
	s.Start()
	return s.Stop
}
