package menu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"pkt.systems/coinflip/core"
	"pkt.systems/coinflip/internal/format"
	"pkt.systems/coinflip/internal/logx"
	"pkt.systems/coinflip/schema"
	"pkt.systems/pslog"
)

const (
	choiceExit     = 0
	choiceGenerate = 1
	choiceDisplay  = 2
	choiceStats    = 3
)

// Console is the interactive surface a menu session reads from and writes to.
type Console interface {
	io.Writer
	// ReadLine returns the next input line without its terminator. It
	// returns ctx.Err() when ctx ends before a line arrives.
	ReadLine(ctx context.Context) (string, error)
	// Pause waits for the user to acknowledge before continuing.
	Pause(ctx context.Context) error
	// Clear wipes the visible screen when the console supports it.
	Clear() error
}

// Menu drives one interactive session over a Console.
type Menu struct {
	console Console
	session *core.Session
	render  *format.PlainRenderer
	cfg     schema.SessionConfig
}

// New constructs a menu for session on console.
func New(console Console, session *core.Session, cfg schema.SessionConfig) (*Menu, error) {
	if console == nil {
		return nil, errors.New("console is required")
	}
	if session == nil {
		return nil, errors.New("session is required")
	}
	cfg, err := schema.NormalizeSessionConfig(cfg)
	if err != nil {
		return nil, err
	}
	return &Menu{
		console: console,
		session: session,
		render:  format.NewPlainRenderer(),
		cfg:     cfg,
	}, nil
}

// Run shows the menu until the user exits, input ends or ctx is cancelled.
// The session's flip buffer is released on return. Errors returned are
// fatal: allocation failures and console write failures.
func (m *Menu) Run(ctx context.Context) error {
	if ctx == nil {
		return errors.New("missing context")
	}
	defer m.session.Release()
	log := logx.SessionLogger(ctx, m.session.ID())
	ctx = logx.ContextWithSessionLogger(ctx, log, m.session.ID())
	log.Info("menu session start", "page_lines", m.cfg.PageLines)

	if err := m.clear(); err != nil {
		return err
	}
	for {
		if err := ctx.Err(); err != nil {
			return m.endSession(log, err)
		}
		if err := m.writeLines(m.render.Menu()...); err != nil {
			return err
		}
		if err := m.write("Enter your choice (0-3): "); err != nil {
			return err
		}
		choice, err := m.readInRange(ctx, choiceExit, choiceStats)
		if err != nil {
			return m.endSession(log, err)
		}
		if err := m.writeLines(""); err != nil {
			return err
		}
		if choice == choiceExit {
			log.Info("menu session end", "reason", "exit")
			return m.writeLines(m.render.Farewell())
		}
		if err := m.dispatch(ctx, choice); err != nil {
			return m.endSession(log, err)
		}
		if err := m.console.Pause(ctx); err != nil {
			return m.endSession(log, err)
		}
		if err := m.clear(); err != nil {
			return err
		}
	}
}

// endSession turns the end of input and cancellation into a clean return.
func (m *Menu) endSession(log pslog.Logger, err error) error {
	switch {
	case errors.Is(err, io.EOF):
		log.Info("menu session end", "reason", "input closed")
		return nil
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		log.Info("menu session cancelled")
		return nil
	}
	return err
}

func (m *Menu) dispatch(ctx context.Context, choice int) error {
	switch choice {
	case choiceGenerate:
		return m.handleGenerate(ctx)
	case choiceDisplay:
		return m.handleDisplay(ctx)
	}
	return m.handleStatistics(ctx)
}

func (m *Menu) handleGenerate(ctx context.Context) error {
	if err := m.writeLines("How many coin flips would you like to generate?"); err != nil {
		return err
	}
	if err := m.write(fmt.Sprintf("(Range: %d - %d): ", schema.MinFlips, schema.MaxFlips)); err != nil {
		return err
	}
	count, err := m.readInRange(ctx, schema.MinFlips, schema.MaxFlips)
	if err != nil {
		return err
	}
	if err := m.session.Generate(count); err != nil {
		pslog.Ctx(ctx).Error("flip generation failed", "count", count, "err", err)
		return err
	}
	pslog.Ctx(ctx).Info("flips generated", "count", count)
	return m.writeLines("", m.render.Generated(count))
}

func (m *Menu) handleDisplay(ctx context.Context) error {
	if m.session.Empty() {
		return m.writeLines(m.render.NoFlips()...)
	}
	flips := m.session.Flips()
	pslog.Ctx(ctx).Debug("flips displayed", "count", len(flips))
	for i, flip := range flips {
		if err := m.writeLines(m.render.FlipLine(i, flip)); err != nil {
			return err
		}
		if (i+1)%m.cfg.PageLines == 0 && i < len(flips)-1 {
			if err := m.console.Pause(ctx); err != nil {
				return err
			}
		}
	}
	return m.writeLines(m.render.FlipFooter(len(flips))...)
}

func (m *Menu) handleStatistics(ctx context.Context) error {
	report, ok := m.session.Analyze()
	if !ok {
		return m.writeLines(m.render.NoStatistics()...)
	}
	pslog.Ctx(ctx).Debug("statistics computed", "flips", report.Total, "runs", report.Runs())
	return m.writeLines(m.render.Report(report)...)
}

// readInRange reads lines until one holds an integer in [min, max]. Blank
// lines are skipped silently. Choices reaching dispatch are always in range.
func (m *Menu) readInRange(ctx context.Context, min, max int) (int, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		line, err := m.console.ReadLine(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) && strings.TrimSpace(line) == "" {
				return 0, io.EOF
			}
			if !errors.Is(err, io.EOF) {
				return 0, err
			}
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if value, ok := ParseInRange(line, min, max); ok {
			return value, nil
		}
		pslog.Ctx(ctx).Debug("menu input rejected", "min", min, "max", max)
		if werr := m.write(fmt.Sprintf("Please enter a number between %d and %d: ", min, max)); werr != nil {
			return 0, werr
		}
		if errors.Is(err, io.EOF) {
			return 0, io.EOF
		}
	}
}

func (m *Menu) clear() error {
	if !m.cfg.ClearScreen {
		return nil
	}
	return m.console.Clear()
}

func (m *Menu) write(text string) error {
	_, err := io.WriteString(m.console, text)
	return err
}

func (m *Menu) writeLines(lines ...string) error {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return m.write(b.String())
}
