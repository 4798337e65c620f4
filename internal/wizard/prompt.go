package wizard

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

// ErrAborted is returned when the user leaves the wizard early.
var ErrAborted = errors.New("wizard: aborted")

type Question struct {
	Prompt  string
	Options []string
	Default string
	// Err describes why the previous answer was rejected.
	Err string
}

type Prompter interface {
	Ask(ctx context.Context, q Question) (string, error)
}

// LinePrompter reads one answer per line, the way the console flow always has.
// Reads happen on a background goroutine so a canceled context unblocks Ask;
// a line typed after cancellation is handed to the next Ask.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer

	once  sync.Once
	lines chan readResult
}

type readResult struct {
	line string
	err  error
}

func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

func (p *LinePrompter) Ask(ctx context.Context, q Question) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if q.Err != "" {
		fmt.Fprintf(p.out, "! %s\n", q.Err)
	}
	fmt.Fprintln(p.out, q.Prompt)
	for _, opt := range q.Options {
		fmt.Fprintf(p.out, "  %s\n", opt)
	}
	fmt.Fprint(p.out, "> ")

	var res readResult
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r, ok := <-p.readLines():
		if !ok {
			return "", ErrAborted
		}
		res = r
	}

	line, err := res.line, res.err
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrAborted
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (p *LinePrompter) readLines() <-chan readResult {
	p.once.Do(func() {
		p.lines = make(chan readResult)
		go func() {
			defer close(p.lines)
			for {
				line, err := p.in.ReadString('\n')
				p.lines <- readResult{line: line, err: err}
				if err != nil {
					return
				}
			}
		}()
	})
	return p.lines
}
