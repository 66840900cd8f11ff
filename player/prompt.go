package player

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/muesli/termenv"
)

// ErrQuit is returned when the user asks to leave or the input ends
var ErrQuit = errors.New("player quit")

var (
	yesAnswers = []string{"s", "si", "sí", "y", "yes"}
	noAnswers  = []string{"n", "no"}
)

// Prompter reads answers line by line. Every interactive component of a
// session shares one Prompter so that no input is lost to buffering.
type Prompter struct {
	in  *bufio.Scanner
	out *termenv.Output
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewScanner(in),
		out: termenv.NewOutput(out),
	}
}

// Output is the styled writer of the prompter
func (p *Prompter) Output() *termenv.Output {
	return p.out
}

// Printf writes to the prompter's output
func (p *Prompter) Printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

// ReadLine prints prompt and returns the next trimmed line. The end of the
// input is reported as ErrQuit.
func (p *Prompter) ReadLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", ErrQuit
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// AskYesNo repeats question until it gets a yes or a no
func (p *Prompter) AskYesNo(question string) (bool, error) {
	for {
		answer, err := p.ReadLine(question + " (y/n): ")
		if err != nil {
			return false, err
		}

		answer = strings.ToLower(answer)
		switch {
		case slices.Contains(yesAnswers, answer):
			return true, nil
		case slices.Contains(noAnswers, answer):
			return false, nil
		default:
			fmt.Fprintln(p.out, "Please answer 'y' for yes or 'n' for no.")
		}
	}
}
