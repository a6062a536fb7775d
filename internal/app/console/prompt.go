package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter reads one line per question from the terminal.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
	// ReadSecret reads a line without echo. Secret falls back to Ask when nil.
	ReadSecret func() (string, error)
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// Ask returns the trimmed answer, or io.EOF once input is exhausted.
func (p *Prompter) Ask(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

func (p *Prompter) Secret(label string) (string, error) {
	if p.ReadSecret == nil {
		return p.Ask(label)
	}
	fmt.Fprintf(p.out, "%s: ", label)
	v, err := p.ReadSecret()
	fmt.Fprintln(p.out)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(v), nil
}

// AskDefault keeps current when the answer is empty.
func (p *Prompter) AskDefault(label, current string) (string, error) {
	if current != "" {
		label = fmt.Sprintf("%s [%s]", label, current)
	}
	answer, err := p.Ask(label)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return current, nil
	}
	return answer, nil
}

// Confirm implements listing.Confirmer. Only an explicit yes approves.
func (p *Prompter) Confirm(prompt string) bool {
	answer, err := p.Ask(prompt + " [y/N]")
	if err != nil {
		return false
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true
	}
	return false
}
