package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mitchellh/colorstring"
	"golang.org/x/term"
)

// ErrAborted is returned when the user backs out of a menu (ctrl-c or q).
var ErrAborted = errors.New("selection aborted")

// Prompter reads interactive input. When In is a terminal, Select runs a
// cursor-driven menu in raw mode; otherwise it falls back to a numbered
// menu read line by line, which keeps the tool usable in pipes and tests.
type Prompter struct {
	In  io.Reader
	Out io.Writer

	br *bufio.Reader
}

func New() *Prompter {
	return &Prompter{In: os.Stdin, Out: os.Stdout}
}

func (p *Prompter) reader() *bufio.Reader {
	if p.br == nil {
		p.br = bufio.NewReader(p.In)
	}
	return p.br
}

// ReadLine prompts with label and returns one line of input, trimmed.
func (p *Prompter) ReadLine(label string) (string, error) {
	fmt.Fprintf(p.Out, "%s: ", label)
	line, err := p.reader().ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Select shows label and options and returns the chosen 0-based index.
func (p *Prompter) Select(label string, options []string) (int, error) {
	if len(options) == 0 {
		return 0, errors.New("no options to select from")
	}
	if f, ok := p.In.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return p.selectRaw(f, label, options)
	}
	return p.selectNumbered(label, options)
}

// selectRaw drives an arrow-key menu: up/down (or k/j) move with
// wrap-around, enter accepts, ctrl-c or q aborts.
func (p *Prompter) selectRaw(f *os.File, label string, options []string) (int, error) {
	fd := int(f.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	// Raw mode disables output post-processing, hence explicit \r\n.
	fmt.Fprintf(p.Out, "%s\r\n", label)

	cursor := 0
	render := func() {
		for i, opt := range options {
			if i == cursor {
				fmt.Fprintf(p.Out, "%s\x1b[K\r\n", colorstring.Color("[cyan]> "+opt))
			} else {
				fmt.Fprintf(p.Out, "  %s\x1b[K\r\n", opt)
			}
		}
	}
	render()

	buf := make([]byte, 3)
	for {
		n, err := f.Read(buf)
		if err != nil {
			return 0, err
		}
		key := buf[:n]
		switch {
		case n == 1 && (key[0] == '\r' || key[0] == '\n'):
			return cursor, nil
		case n == 1 && (key[0] == 0x03 || key[0] == 'q'):
			return 0, ErrAborted
		case n == 1 && key[0] == 'k',
			n == 3 && key[0] == 0x1b && key[1] == '[' && key[2] == 'A':
			cursor--
			if cursor < 0 {
				cursor = len(options) - 1
			}
		case n == 1 && key[0] == 'j',
			n == 3 && key[0] == 0x1b && key[1] == '[' && key[2] == 'B':
			cursor++
			if cursor >= len(options) {
				cursor = 0
			}
		default:
			continue
		}
		fmt.Fprintf(p.Out, "\x1b[%dA", len(options))
		render()
	}
}

func (p *Prompter) selectNumbered(label string, options []string) (int, error) {
	fmt.Fprintf(p.Out, "%s\n", label)
	for i, opt := range options {
		fmt.Fprintf(p.Out, "  %d) %s\n", i+1, opt)
	}
	for {
		line, err := p.ReadLine(fmt.Sprintf("Select [1-%d]", len(options)))
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(line)
		if convErr == nil && n >= 1 && n <= len(options) {
			return n - 1, nil
		}
		fmt.Fprintf(p.Out, "invalid choice %q\n", line)
	}
}
