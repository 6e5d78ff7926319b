package format

import (
	"fmt"

	"pkt.systems/coinflip/schema"
)

const (
	menuRule     = "=========================================="
	tableRule    = "========================"
	distRule     = "=================="
	analysisRule = "=============================="
)

// PlainRenderer formats menu screens and reports as plain text lines.
type PlainRenderer struct{}

// NewPlainRenderer returns a default plain-text renderer.
func NewPlainRenderer() *PlainRenderer {
	return &PlainRenderer{}
}

// Menu returns the main menu lines.
func (p *PlainRenderer) Menu() []string {
	return []string{
		"================ MAIN MENU ===============",
		"1 - Generate coin flips",
		"2 - Display flip results",
		"3 - Show pattern statistics",
		"0 - Exit program",
		menuRule,
	}
}

// FlipLine formats the flip at zero-based index i.
func (p *PlainRenderer) FlipLine(i int, flip schema.Outcome) string {
	return fmt.Sprintf("%6d  |   %d   | %s", i+1, uint8(flip), flip)
}

// FlipFooter returns the lines printed after the flip table.
func (p *PlainRenderer) FlipFooter(total int) []string {
	return []string{
		tableRule,
		fmt.Sprintf("Total flips displayed: %d", total),
	}
}

// Generated confirms a successful generation.
func (p *PlainRenderer) Generated(count int) string {
	return fmt.Sprintf("Successfully generated %d coin flips!", count)
}

// NoFlips is shown when the flip table is requested without data.
func (p *PlainRenderer) NoFlips() []string {
	return []string{"No flips have been generated yet."}
}

// NoStatistics is shown when statistics are requested without data.
func (p *PlainRenderer) NoStatistics() []string {
	return []string{
		"No flips have been generated yet.",
		"Please use option 1 to generate flips first.",
	}
}

// Report formats the distribution and run analysis blocks.
func (p *PlainRenderer) Report(r schema.Report) []string {
	return []string{
		"FLIP DISTRIBUTION:",
		distRule,
		fmt.Sprintf("Total Heads: %d (%.1f%%)", r.Heads, r.HeadsPercent()),
		fmt.Sprintf("Total Tails: %d (%.1f%%)", r.Tails, r.TailsPercent()),
		"",
		"CONSECUTIVE SEQUENCE ANALYSIS:",
		analysisRule,
		fmt.Sprintf("Sequences of %d consecutive HEADS: %d", schema.RunLength, r.HeadsRuns),
		fmt.Sprintf("Sequences of %d consecutive TAILS: %d", schema.RunLength, r.TailsRuns),
		fmt.Sprintf("Total consecutive sequences found: %d", r.Runs()),
	}
}

// Farewell is printed when the user exits.
func (p *PlainRenderer) Farewell() string {
	return "Thank you for using the Coin Flip Simulator!"
}
