package interrupt

import (
	"os"
	"os/signal"
	"sync"
)

// SignalSource raises its flag when the process receives one of the
// platform's interrupt signals (see signals in signal_unix.go and
// signal_windows.go).
type SignalSource struct {
	*Flag
	ch      chan os.Signal
	install sync.Once
	stop    chan struct{}
}

// NewSignalSource returns a source that is not yet listening.
func NewSignalSource() *SignalSource {
	return &SignalSource{
		Flag: NewFlag(),
		ch:   make(chan os.Signal, 1),
		stop: make(chan struct{}),
	}
}

// Install starts relaying interrupt signals to the flag. Once installed, the
// default handler no longer kills the process; the caller must poll IsSet.
func (s *SignalSource) Install() error {
	s.install.Do(func() {
		signal.Notify(s.ch, signals...)
		go s.relay()
	})
	return nil
}

func (s *SignalSource) relay() {
	select {
	case <-s.ch:
		s.Set()
	case <-s.stop:
	}
}

// Stop restores default signal handling. It must be called at most once.
func (s *SignalSource) Stop() {
	signal.Stop(s.ch)
	close(s.stop)
}
