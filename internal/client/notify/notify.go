// Package notify delivers user-facing notices of the console client.
package notify

import (
	"fmt"
	"io"
	"sync"
)

type Level string

const (
	Success Level = "success"
	Error   Level = "error"
	Info    Level = "info"
)

type Notice struct {
	Level   Level
	Title   string
	Message string
}

func (n Notice) String() string {
	if n.Message == "" {
		return n.Title
	}
	return n.Title + ": " + n.Message
}

type Notifier interface {
	Notify(n Notice)
}

// Writer prints notices as single lines.
type Writer struct {
	mu  sync.Mutex
	Out io.Writer
}

func NewWriter(out io.Writer) *Writer {
	return &Writer{Out: out}
}

var marks = map[Level]string{
	Success: "[ok]",
	Error:   "[error]",
	Info:    "[info]",
}

func (w *Writer) Notify(n Notice) {
	w.mu.Lock()
	defer w.mu.Unlock()
	fmt.Fprintf(w.Out, "%s %s\n", marks[n.Level], n)
}

// Recorder keeps every notice; tests read it back.
type Recorder struct {
	mu      sync.Mutex
	notices []Notice
}

func (r *Recorder) Notify(n Notice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, n)
}

func (r *Recorder) Notices() []Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notice, len(r.notices))
	copy(out, r.notices)
	return out
}

// Last returns the most recent notice.
func (r *Recorder) Last() (Notice, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.notices) == 0 {
		return Notice{}, false
	}
	return r.notices[len(r.notices)-1], true
}
