package sshserver

import "pkt.systems/coinflip/schema"

// Config defines SSH server settings.
type Config struct {
	Addr        string
	HostKeyPath string
	Session     schema.SessionConfig
}
