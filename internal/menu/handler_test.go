package menu

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"pkt.systems/coinflip/core"
	"pkt.systems/coinflip/internal/console"
	"pkt.systems/coinflip/schema"
)

type scriptConsole struct {
	lines  []string
	out    bytes.Buffer
	pauses int
	clears int
}

func (c *scriptConsole) Write(p []byte) (int, error) {
	return c.out.Write(p)
}

func (c *scriptConsole) ReadLine(context.Context) (string, error) {
	if len(c.lines) == 0 {
		return "", io.EOF
	}
	line := c.lines[0]
	c.lines = c.lines[1:]
	return line, nil
}

func (c *scriptConsole) Pause(ctx context.Context) error {
	c.pauses++
	_, err := c.ReadLine(ctx)
	return err
}

func (c *scriptConsole) Clear() error {
	c.clears++
	return nil
}

type constSource struct {
	outcome schema.Outcome
}

func (s *constSource) Next() schema.Outcome { return s.outcome }

func runMenu(t *testing.T, source core.Source, cfg schema.SessionConfig, lines ...string) (*scriptConsole, *core.Session) {
	t.Helper()
	console := &scriptConsole{lines: lines}
	session := core.NewSession(source)
	m, err := New(console, session, cfg)
	if err != nil {
		t.Fatalf("new menu: %v", err)
	}
	if err := m.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	return console, session
}

func TestMenuExitPrintsFarewell(t *testing.T) {
	console, _ := runMenu(t, core.NewCoin(1), schema.SessionConfig{ClearScreen: true}, "0")
	out := console.out.String()
	if !strings.Contains(out, "MAIN MENU") {
		t.Fatalf("expected menu, got %q", out)
	}
	if !strings.Contains(out, "Thank you for using the Coin Flip Simulator!") {
		t.Fatalf("expected farewell, got %q", out)
	}
	if console.pauses != 0 {
		t.Fatalf("expected no pause on exit, got %d", console.pauses)
	}
	if console.clears != 1 {
		t.Fatalf("expected only the startup clear, got %d", console.clears)
	}
}

func TestMenuGenerateRepromptsOutOfRange(t *testing.T) {
	console, session := runMenu(t, core.NewCoin(1), schema.SessionConfig{},
		"1", "0", "100001", "abc", "25", "", "0")
	out := console.out.String()
	if got := strings.Count(out, "Please enter a number between 1 and 100000: "); got != 3 {
		t.Fatalf("expected 3 re-prompts, got %d in %q", got, out)
	}
	if !strings.Contains(out, "Successfully generated 25 coin flips!") {
		t.Fatalf("expected success message, got %q", out)
	}
	// the session is released when the menu returns
	if !session.Empty() {
		t.Fatalf("expected buffer released after run")
	}
}

func TestMenuRejectsInvalidChoice(t *testing.T) {
	console, _ := runMenu(t, core.NewCoin(1), schema.SessionConfig{}, "9", "x", "0")
	out := console.out.String()
	if got := strings.Count(out, "Please enter a number between 0 and 3: "); got != 2 {
		t.Fatalf("expected 2 choice re-prompts, got %d", got)
	}
}

func TestMenuNoDataMessages(t *testing.T) {
	console, _ := runMenu(t, core.NewCoin(1), schema.SessionConfig{}, "2", "", "3", "", "0")
	out := console.out.String()
	if got := strings.Count(out, "No flips have been generated yet."); got != 2 {
		t.Fatalf("expected two no-data messages, got %d in %q", got, out)
	}
	if !strings.Contains(out, "Please use option 1 to generate flips first.") {
		t.Fatalf("expected statistics hint, got %q", out)
	}
	if strings.Contains(out, "Total flips displayed") {
		t.Fatalf("did not expect table footer without data")
	}
}

func TestMenuDisplayPausesEveryPage(t *testing.T) {
	tests := []struct {
		name   string
		count  string
		pauses int
	}{
		// one pause after the display command itself
		{name: "below-page", count: "19", pauses: 1},
		{name: "exact-page", count: "20", pauses: 1},
		{name: "page-plus-one", count: "21", pauses: 2},
		{name: "two-pages", count: "40", pauses: 2},
		{name: "two-pages-plus-one", count: "41", pauses: 3},
	}
	for _, tc := range tests {
		lines := []string{"1", tc.count, ""}
		lines = append(lines, "2")
		lines = append(lines, "", "", "", "0")
		console := &scriptConsole{lines: lines}
		session := core.NewSession(core.NewCoin(3))
		m, err := New(console, session, schema.SessionConfig{})
		if err != nil {
			t.Fatalf("%s: new menu: %v", tc.name, err)
		}
		if err := m.Run(context.Background()); err != nil {
			t.Fatalf("%s: run: %v", tc.name, err)
		}
		// the generate command contributes one pause of its own
		if got := console.pauses - 1; got != tc.pauses {
			t.Fatalf("%s: display pauses = %d, want %d", tc.name, got, tc.pauses)
		}
		if !strings.Contains(console.out.String(), "Total flips displayed: "+tc.count) {
			t.Fatalf("%s: expected footer", tc.name)
		}
	}
}

func TestMenuStatisticsReport(t *testing.T) {
	console, _ := runMenu(t, &constSource{outcome: schema.Tails}, schema.SessionConfig{},
		"1", "12", "", "3", "", "0")
	out := console.out.String()
	for _, want := range []string{
		"Total Heads: 0 (0.0%)",
		"Total Tails: 12 (100.0%)",
		"Sequences of 5 consecutive HEADS: 0",
		"Sequences of 5 consecutive TAILS: 1",
		"Total consecutive sequences found: 1",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestMenuDisplayRows(t *testing.T) {
	console, _ := runMenu(t, &constSource{outcome: schema.Heads}, schema.SessionConfig{},
		"1", "2", "", "2", "", "0")
	out := console.out.String()
	if !strings.Contains(out, "     1  |   0   | HEADS\n     2  |   0   | HEADS\n") {
		t.Fatalf("unexpected table:\n%s", out)
	}
}

func TestMenuEndsOnEOF(t *testing.T) {
	console, _ := runMenu(t, core.NewCoin(1), schema.SessionConfig{}, "1")
	if strings.Contains(console.out.String(), "Thank you") {
		t.Fatalf("did not expect farewell on EOF")
	}
}

func TestMenuStopsWhenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	console := &scriptConsole{lines: []string{"1", "5"}}
	m, err := New(console, core.NewSession(core.NewCoin(1)), schema.SessionConfig{})
	if err != nil {
		t.Fatalf("new menu: %v", err)
	}
	if err := m.Run(ctx); err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(console.lines) != 2 {
		t.Fatalf("expected no input consumed after cancel")
	}
}

type failingConsole struct {
	scriptConsole
}

func (c *failingConsole) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestMenuPropagatesWriteErrors(t *testing.T) {
	m, err := New(&failingConsole{}, core.NewSession(core.NewCoin(1)), schema.SessionConfig{})
	if err != nil {
		t.Fatalf("new menu: %v", err)
	}
	if err := m.Run(context.Background()); err == nil {
		t.Fatalf("expected write error")
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	if _, err := New(&scriptConsole{}, core.NewSession(nil), schema.SessionConfig{PageLines: -2}); err == nil {
		t.Fatalf("expected config error")
	}
	if _, err := New(nil, core.NewSession(nil), schema.SessionConfig{}); err == nil {
		t.Fatalf("expected console error")
	}
}

func TestMenuReturnsAllocationFailure(t *testing.T) {
	failing := func(int) ([]schema.Outcome, error) {
		return nil, errors.New("out of memory")
	}
	con := &scriptConsole{lines: []string{"1", "10", "", "0"}}
	session := core.NewSession(core.NewCoin(1), core.WithAllocator(failing))
	m, err := New(con, session, schema.SessionConfig{})
	if err != nil {
		t.Fatalf("new menu: %v", err)
	}
	if err := m.Run(context.Background()); !errors.Is(err, schema.ErrAllocation) {
		t.Fatalf("expected ErrAllocation, got %v", err)
	}
	if strings.Contains(con.out.String(), "Successfully generated") {
		t.Fatalf("did not expect success message")
	}
	if !session.Empty() {
		t.Fatalf("expected no buffer after failed allocation")
	}
}

func TestMenuStopsWhileWaitingForInput(t *testing.T) {
	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })
	var out bytes.Buffer
	session := core.NewSession(core.NewCoin(1))
	m, err := New(console.NewTerminal(pr, &out), session, schema.SessionConfig{})
	if err != nil {
		t.Fatalf("new menu: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errCh := make(chan error, 1)
	go func() {
		errCh <- m.Run(ctx)
	}()

	for _, line := range []string{"1\n", "5\n"} {
		if _, err := io.WriteString(pw, line); err != nil {
			t.Fatalf("write input: %v", err)
		}
	}
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		if err != nil {
			t.Fatalf("run: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("menu still waiting for input after cancel")
	}
	if !session.Empty() {
		t.Fatalf("expected buffer released after cancel")
	}
	if strings.Contains(out.String(), "Thank you") {
		t.Fatalf("did not expect farewell on cancel")
	}
}
