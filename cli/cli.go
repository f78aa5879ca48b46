// Package cli provides the line-oriented terminal loop for the witchertrack
// interpreter: one command per line in, one response per line out.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/nathoo/witchertrack/engine"
	"github.com/nathoo/witchertrack/types"
)

// DefaultPrompt is printed before every line is read.
const DefaultPrompt = ">> "

// exitCommand stops the loop before classification.
const exitCommand = "Exit"

// CLI reads commands from In and writes responses to Out. Trace lines go
// to Err so Out carries nothing but the prompt and responses.
type CLI struct {
	Engine    *engine.Engine
	In        io.Reader
	Out       io.Writer
	Err       io.Writer
	Prompt    string
	Trace     bool
	EchoInput bool // echo each input line after the prompt and skip # comments (script playback)
	Log       *zap.Logger
}

// New creates a CLI wired to the given engine and the process streams.
func New(eng *engine.Engine) *CLI {
	return &CLI{
		Engine: eng,
		In:     os.Stdin,
		Out:    os.Stdout,
		Err:    os.Stderr,
		Prompt: DefaultPrompt,
		Log:    eng.Log,
	}
}

// Run reads and steps lines until Exit or end of input.
func (c *CLI) Run() error {
	log := c.Log
	if log == nil {
		log = zap.NewNop()
	}

	scanner := bufio.NewScanner(c.In)
	lines := 0
	for {
		if !c.EchoInput {
			c.print(c.Prompt)
		}
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		lines++

		// Script playback prints the prompt only for lines it runs.
		if c.EchoInput {
			if strings.HasPrefix(input, "#") {
				continue
			}
			c.print(c.Prompt)
			c.printLine(input)
		}

		if input == exitCommand {
			log.Debug("exit requested", zap.Int("lines", lines))
			return nil
		}

		result := c.Engine.Step(input)
		c.printResult(result)
		if c.Trace {
			c.printTrace(result)
		}
		if result.Exit {
			return nil
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	log.Debug("end of input", zap.Int("lines", lines))
	return nil
}

func (c *CLI) printTrace(result types.Result) {
	w := c.Err
	if w == nil {
		w = io.Discard
	}
	if len(result.Effects) > 0 {
		fmt.Fprintf(w, "[trace] kind=%s effects=%d\n", result.Kind, len(result.Effects))
	}
	for _, ev := range result.Events {
		fmt.Fprintln(w, engine.FormatEvent(ev))
	}
}

func (c *CLI) printResult(result types.Result) {
	for _, line := range result.Output {
		c.printLine(line)
	}
}

func (c *CLI) printLine(text string) {
	fmt.Fprintln(c.Out, text)
}

func (c *CLI) print(text string) {
	if text == "" {
		return
	}
	fmt.Fprint(c.Out, text)
}
