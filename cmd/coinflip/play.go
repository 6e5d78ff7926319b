package main

import (
	"github.com/spf13/cobra"

	"pkt.systems/coinflip/core"
	"pkt.systems/coinflip/internal/appconfig"
	"pkt.systems/coinflip/internal/console"
	"pkt.systems/coinflip/internal/menu"
	"pkt.systems/coinflip/schema"
)

type playOptions struct {
	cfgPath string
	seed    uint64
}

func addPlayFlags(cmd *cobra.Command, opts *playOptions) {
	cmd.Flags().StringVarP(&opts.cfgPath, "config", "c", "", "config file path")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "fixed seed for the flip source (0 seeds from the clock)")
}

func newPlayCmd() *cobra.Command {
	var opts playOptions
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Run the interactive coin flip menu",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, opts)
		},
	}
	addPlayFlags(cmd, &opts)
	return cmd
}

func runPlay(cmd *cobra.Command, opts playOptions) error {
	cfg, err := appconfig.Load(opts.cfgPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = opts.seed
	}
	sessionCfg := cfg.SessionConfig()
	session := newSession(newSource(sessionCfg))
	con := console.NewTerminal(cmd.InOrStdin(), cmd.OutOrStdout())
	m, err := menu.New(con, session, sessionCfg)
	if err != nil {
		return err
	}
	return m.Run(cmd.Context())
}

// newSession builds the flip session for play and stats.
var newSession = func(source core.Source) *core.Session {
	return core.NewSession(source)
}

func newSource(cfg schema.SessionConfig) core.Source {
	if cfg.Seed != 0 {
		return core.NewCoin(cfg.Seed)
	}
	return core.NewTimeSeededCoin()
}
