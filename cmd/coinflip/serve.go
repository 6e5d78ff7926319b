package main

import (
	"github.com/spf13/cobra"

	"pkt.systems/coinflip/internal/appconfig"
	"pkt.systems/coinflip/sshserver"
	"pkt.systems/pslog"
)

func newServeCmd() *cobra.Command {
	var cfgPath string
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the coin flip menu over SSH",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := pslog.Ctx(cmd.Context())
			cfg, err := appconfig.Load(cfgPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.SSH.Addr = addr
			}
			logger.Info("ssh server starting", "addr", cfg.SSH.Addr, "host_key", cfg.SSH.HostKeyPath)
			server := sshserver.New(sshserver.Config{
				Addr:        cfg.SSH.Addr,
				HostKeyPath: cfg.SSH.HostKeyPath,
				Session:     cfg.SessionConfig(),
			})
			return server.ListenAndServe(cmd.Context())
		},
	}
	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "config file path")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides ssh.addr)")
	return cmd
}
