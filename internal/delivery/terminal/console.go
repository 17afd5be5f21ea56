package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aliskhannn/vocab-trainer/internal/domain/entities"
	"github.com/aliskhannn/vocab-trainer/internal/service"
)

// ErrInputClosed is returned once the input stream is exhausted.
var ErrInputClosed = errors.New("input closed")

const clearScreen = "\033[H\033[2J"

// Console talks to the user over a line-oriented reader and writer.
// Input is read on a separate goroutine so every read can be abandoned
// when its context is cancelled.
type Console struct {
	out   io.Writer
	lines <-chan string
	clear bool
}

// ConsoleOption configures a Console.
type ConsoleOption func(*Console)

// WithClearScreen clears the terminal before every banner.
func WithClearScreen(enabled bool) ConsoleOption {
	return func(c *Console) { c.clear = enabled }
}

// NewConsole starts reading lines from in.
func NewConsole(in io.Reader, out io.Writer, opts ...ConsoleOption) *Console {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			lines <- strings.TrimRight(scanner.Text(), "\r")
		}
	}()

	c := &Console{out: out, lines: lines}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ service.Presenter = (*Console)(nil)

func (c *Console) Banner(current, total int) {
	if c.clear {
		c.print(clearScreen)
	}
	c.println("")
	c.println(formatBanner(current, total))
}

func (c *Console) Question(side entities.Side, opts service.DisplayOptions) {
	c.println(formatQuestion(side, opts.ShowNotes, opts.ShowHint))
}

func (c *Console) Options(options []string) {
	c.println(formatOptions(options))
}

func (c *Console) Feedback(result entities.MatchResult, close bool) {
	c.println(formatAnswerFeedback(result, close))
}

func (c *Console) Reveal(side entities.Side) {
	c.println(formatAnswers(side))
}

func (c *Console) Notice(text string) {
	c.println(text)
}

// Ask reads one answer.
func (c *Console) Ask(ctx context.Context) (string, error) {
	c.print(msgAnswerPrompt)
	return c.readLine(ctx)
}

// Prompt shows label and reads one line.
func (c *Console) Prompt(ctx context.Context, label string) (string, error) {
	c.print(label + ": ")
	line, err := c.readLine(ctx)
	return strings.TrimSpace(line), err
}

// Confirm asks a yes/no question. An empty answer selects def.
func (c *Console) Confirm(ctx context.Context, question string, def bool) (bool, error) {
	hint := "[y/N]"
	if def {
		hint = "[Y/n]"
	}

	for {
		c.print(fmt.Sprintf("%s %s ", question, hint))
		line, err := c.readLine(ctx)
		if err != nil {
			return false, err
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		c.println(msgInvalidChoice)
	}
}

// Pause waits for Enter.
func (c *Console) Pause(ctx context.Context) error {
	c.print(msgPressEnter)
	_, err := c.readLine(ctx)
	return err
}

func (c *Console) readLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		c.println("")
		return "", ctx.Err()
	case line, ok := <-c.lines:
		if !ok {
			return "", ErrInputClosed
		}
		return line, nil
	}
}

func (c *Console) print(s string) {
	_, _ = io.WriteString(c.out, s)
}

func (c *Console) println(s string) {
	_, _ = io.WriteString(c.out, s+"\n")
}
