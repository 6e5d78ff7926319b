package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"pkt.systems/coinflip/internal/format"
	"pkt.systems/coinflip/schema"
	"pkt.systems/pslog"
)

func newStatsCmd() *cobra.Command {
	var count int
	var seed uint64
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Generate flips once and print the statistics report",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := schema.ValidateFlipCount(count); err != nil {
				return err
			}
			session := newSession(newSource(schema.SessionConfig{Seed: seed}))
			defer session.Release()
			if err := session.Generate(count); err != nil {
				return err
			}
			report, _ := session.Analyze()
			pslog.Ctx(cmd.Context()).Debug("stats computed", "session", session.ID(), "flips", report.Total)
			return writeLines(cmd.OutOrStdout(), format.NewPlainRenderer().Report(report))
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 0, fmt.Sprintf("number of flips (%d-%d)", schema.MinFlips, schema.MaxFlips))
	cmd.Flags().Uint64Var(&seed, "seed", 0, "fixed seed for the flip source (0 seeds from the clock)")
	_ = cmd.MarkFlagRequired("count")
	return cmd
}

func writeLines(w io.Writer, lines []string) error {
	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}
