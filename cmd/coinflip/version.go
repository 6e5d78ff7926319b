package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pkt.systems/coinflip/internal/version"
)

func newVersionCmd() *cobra.Command {
	var dirty bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the coinflip build version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version.Read(dirty))
			return err
		},
	}
	cmd.Flags().BoolVar(&dirty, "dirty", false, "keep the +dirty marker of a modified checkout")
	return cmd
}
