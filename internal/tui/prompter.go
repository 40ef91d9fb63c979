// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
)

// secretEcho replaces every typed character of a masked prompt.
const secretEcho = '*'

// maxInputLength bounds a single prompt line.
const maxInputLength = 4096

// promptModel is a one-shot Bubble Tea model: it edits one line and quits on
// enter (submitted) or on Ctrl+C/Esc (aborted).
type promptModel struct {
	input     textinput.Model
	submitted bool
	aborted   bool
}

func newPromptModel(prompt string, secret bool) promptModel {
	input := textinput.New()
	input.Prompt = prompt
	input.CharLimit = maxInputLength
	if secret {
		input.EchoMode = textinput.EchoPassword
		input.EchoCharacter = secretEcho
	}
	input.Focus()

	return promptModel{input: input}
}

// Init implements [tea.Model].
func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Enter submits the line, Ctrl+C and Esc
// abort it; every other message goes to the text input.
func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.enter):
			m.submitted = true
			m.input.Blur()
			return m, tea.Quit
		case key.Matches(keyMsg, keys.quit):
			m.aborted = true
			m.input.Blur()
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements [tea.Model]. The final frame stays on screen, so an
// aborted prompt is cleared instead of leaving half-typed input behind.
func (m promptModel) View() string {
	if m.aborted {
		return ""
	}
	return m.input.View()
}

// terminalPrompter is the default [Prompter]. On a terminal each call runs a
// short-lived inline Bubble Tea program; nothing switches to the alternate
// screen, so the conversation scrolls like a plain line-oriented terminal.
// Any other input (a pipe, a file) is read line by line through one shared
// buffer, because a Bubble Tea program consumes more input than the line it
// returns.
type terminalPrompter struct {
	in  io.Reader
	out io.Writer

	lines *lineReader
}

// NewTerminalPrompter returns a [Prompter] reading keys from in and drawing
// to out, usually os.Stdin and os.Stdout.
func NewTerminalPrompter(in io.Reader, out io.Writer) Prompter {
	p := &terminalPrompter{in: in, out: out}
	if !isTerminal(in) {
		p.lines = newLineReader(in)
	}
	return p
}

// ReadLine implements [Prompter].
func (p *terminalPrompter) ReadLine(ctx context.Context, prompt string) (string, error) {
	if p.lines != nil {
		return p.readPlain(ctx, prompt)
	}
	return p.run(ctx, newPromptModel(prompt, false))
}

// ReadSecret implements [Prompter]. Plain input is not echoed by anyone, so
// there is nothing to mask.
func (p *terminalPrompter) ReadSecret(ctx context.Context, prompt string) (string, error) {
	if p.lines != nil {
		return p.readPlain(ctx, prompt)
	}
	return p.run(ctx, newPromptModel(prompt, true))
}

func (p *terminalPrompter) run(ctx context.Context, model promptModel) (string, error) {
	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
	)

	finalModel, err := program.Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return "", fmt.Errorf("run prompt: %w", err)
	}

	result, ok := finalModel.(promptModel)
	if !ok {
		return "", tea.ErrProgramKilled
	}
	return result.value()
}

func (p *terminalPrompter) readPlain(ctx context.Context, prompt string) (string, error) {
	if p.out != nil {
		fmt.Fprint(p.out, prompt)
	}

	line, err := p.lines.readLine(ctx)

	if p.out != nil {
		fmt.Fprintln(p.out)
	}
	return line, err
}

type fdReader interface {
	Fd() uintptr
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(fdReader)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type lineResult struct {
	line string
	err  error
}

// lineReader splits input at "\n", "\r" or "\r\n". A read abandoned because
// its context ended stays pending and its line goes to the next caller, so
// the buffer is never read from two goroutines.
type lineReader struct {
	r       *bufio.Reader
	skipLF  bool
	pending chan lineResult
}

func newLineReader(in io.Reader) *lineReader {
	return &lineReader{r: bufio.NewReader(in)}
}

// readLine returns the next line without its terminator. End of input with
// nothing read is reported as [ErrUserQuit], like Ctrl+D on a terminal.
func (l *lineReader) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if l.pending == nil {
		l.pending = make(chan lineResult, 1)
		go func(done chan<- lineResult) {
			line, err := l.scan()
			done <- lineResult{line: line, err: err}
		}(l.pending)
	}

	select {
	case res := <-l.pending:
		l.pending = nil
		return res.line, res.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (l *lineReader) scan() (string, error) {
	var b strings.Builder
	for {
		c, err := l.r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				if b.Len() > 0 {
					return b.String(), nil
				}
				return "", ErrUserQuit
			}
			return "", fmt.Errorf("read line: %w", err)
		}

		skip := l.skipLF
		l.skipLF = false

		switch c {
		case '\n':
			if skip {
				continue
			}
			return b.String(), nil
		case '\r':
			l.skipLF = true
			return b.String(), nil
		default:
			b.WriteByte(c)
		}
	}
}

func (m promptModel) value() (string, error) {
	if m.aborted || !m.submitted {
		return "", ErrUserQuit
	}
	return m.input.Value(), nil
}
