package clipboard

import (
	"errors"
	"strings"
	"sync"

	"github.com/atotto/clipboard"
)

// ErrUnsupported is returned when no clipboard utility is available
// (pbcopy, clip, wl-copy, xclip, xsel or termux-clipboard-set).
var ErrUnsupported = errors.New("clipboard: no supported clipboard utility found")

// Write copies s to the system clipboard.
func Write(s string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	if err := clipboard.WriteAll(s); err != nil {
		return errors.New("clipboard: " + err.Error())
	}
	return nil
}

// System writes to the real clipboard.
type System struct{}

func (System) WriteAll(text string) error { return Write(text) }

// Recorder keeps writes in memory instead of touching the system clipboard.
type Recorder struct {
	mu     sync.Mutex
	writes []string
}

func (r *Recorder) WriteAll(text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes = append(r.writes, text)
	return nil
}

// Writes returns a copy of everything written so far.
func (r *Recorder) Writes() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.writes...)
}

// Last returns the most recent write, or "" when nothing was written.
func (r *Recorder) Last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.writes) == 0 {
		return ""
	}
	return r.writes[len(r.writes)-1]
}
