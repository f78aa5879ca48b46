package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/nathoo/witchertrack/engine"
)

func newTestCLI(input string) (*CLI, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	c := &CLI{
		Engine: engine.New(nil),
		In:     strings.NewReader(input),
		Out:    &out,
		Err:    &errOut,
		Prompt: DefaultPrompt,
	}
	return c, &out, &errOut
}

func TestCLI_Transcript(t *testing.T) {
	c, out, _ := newTestCLI(strings.Join([]string{
		"Geralt loots 3 mandrake",
		"Total ingredient mandrake ?",
		"Geralt trades 1 Forktail trophy for 2 mandrake",
		"",
		"Geralt dances",
	}, "\n") + "\n")

	if err := c.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	want := ">> Alchemy ingredients obtained\n" +
		">> 3\n" +
		">> Not enough trophies\n" +
		">> INVALID\n" +
		">> INVALID\n" +
		">> "
	if out.String() != want {
		t.Errorf("output =\n%q\nwant\n%q", out.String(), want)
	}
}

func TestCLI_ExitStopsReading(t *testing.T) {
	c, out, _ := newTestCLI("Geralt loots 1 Rebis\n   Exit  \nGeralt loots 1 Rebis\n")
	if err := c.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	want := ">> Alchemy ingredients obtained\n>> "
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
	if got := c.Engine.World.Ingredients["Rebis"]; got != 1 {
		t.Errorf("expected lines after Exit to be ignored, Rebis = %d", got)
	}
}

func TestCLI_NoPrompt(t *testing.T) {
	c, out, _ := newTestCLI("Total potion ?\n")
	c.Prompt = ""
	if err := c.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if out.String() != "None\n" {
		t.Errorf("output = %q, want %q", out.String(), "None\n")
	}
}

func TestCLI_ScriptMode(t *testing.T) {
	c, out, _ := newTestCLI("# stock up\nGeralt loots 1 Rebis\nExit\n")
	c.EchoInput = true
	if err := c.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	want := ">> Geralt loots 1 Rebis\n" +
		"Alchemy ingredients obtained\n" +
		">> Exit\n"
	if out.String() != want {
		t.Errorf("output =\n%q\nwant\n%q", out.String(), want)
	}
}

func TestCLI_CommentIsInvalidOutsideScripts(t *testing.T) {
	c, out, _ := newTestCLI("# stock up\n")
	if err := c.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !strings.Contains(out.String(), "INVALID") {
		t.Errorf("expected INVALID for a comment line, got %q", out.String())
	}
}

func TestCLI_TraceGoesToErr(t *testing.T) {
	c, out, errOut := newTestCLI("Geralt learns Igni sign is effective against Harpy\n")
	c.Trace = true
	if err := c.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if strings.Contains(out.String(), "[trace]") {
		t.Errorf("trace leaked into output: %q", out.String())
	}
	trace := errOut.String()
	for _, want := range []string{
		"[trace] kind=learn_effect effects=1",
		"[trace] sign_learned sign=Igni",
		"[trace] bestiary_updated beast=Harpy counter=sign created=true name=Igni",
	} {
		if !strings.Contains(trace, want) {
			t.Errorf("expected %q in trace, got:\n%s", want, trace)
		}
	}
}
