package sshserver

import (
	"context"
	"io"
	"net"

	gliderssh "github.com/gliderlabs/ssh"

	"pkt.systems/coinflip/core"
	"pkt.systems/coinflip/internal/console"
	"pkt.systems/coinflip/internal/logx"
	"pkt.systems/coinflip/internal/menu"
	"pkt.systems/coinflip/schema"
	"pkt.systems/pslog"
)

// Server exposes the coin flip menu over SSH. Every connection runs its own
// menu session with a private flip buffer.
type Server struct {
	Addr        string
	HostKeyPath string
	Listener    net.Listener
	Session     schema.SessionConfig
	logger      pslog.Logger
}

// New returns a server for cfg.
func New(cfg Config) *Server {
	return &Server{
		Addr:        cfg.Addr,
		HostKeyPath: cfg.HostKeyPath,
		Session:     cfg.Session,
	}
}

// ListenAndServe starts the SSH server and shuts down on context cancellation.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s.logger == nil {
		s.logger = pslog.Ctx(ctx)
	}
	if _, err := schema.NormalizeSessionConfig(s.Session); err != nil {
		return err
	}

	hostKey, err := LoadOrCreateHostKey(s.HostKeyPath)
	if err != nil {
		return err
	}
	s.logger.Info("ssh host key ready",
		"path", hostKey.Path,
		"fingerprint", hostKey.Fingerprint,
		"generated", hostKey.Generated,
	)

	server := &gliderssh.Server{
		Addr:    s.Addr,
		Handler: s.handleSession,
	}
	server.AddHostKey(hostKey.Signer)

	errCh := make(chan error, 1)
	go func() {
		if s.Listener != nil {
			errCh <- server.Serve(s.Listener)
			return
		}
		errCh <- server.ListenAndServe()
	}()
	s.logger.Info("ssh server listening", "addr", s.listenAddr())

	select {
	case <-ctx.Done():
		_ = server.Close()
		s.logger.Info("ssh server stopped")
		return nil
	case err := <-errCh:
		return err
	}
}

func (s *Server) listenAddr() string {
	if s.Listener != nil {
		return s.Listener.Addr().String()
	}
	return s.Addr
}

func (s *Server) newSource() core.Source {
	if s.Session.Seed != 0 {
		return core.NewCoin(s.Session.Seed)
	}
	return core.NewTimeSeededCoin()
}

func (s *Server) handleSession(sess gliderssh.Session) {
	log := logx.WithRemote(s.logger, sess.RemoteAddr().String(), sess.User())
	if sshSession := sess.Context().SessionID(); sshSession != "" {
		log = log.With("ssh_session", sshSession)
	}

	pty, winCh, ok := sess.Pty()
	if !ok {
		log.Info("ssh session rejected", "reason", "pty required")
		_, _ = io.WriteString(sess, "pty required\n")
		_ = sess.Exit(1)
		return
	}

	session := core.NewSession(s.newSource())
	log = logx.WithSession(log, session.ID())
	ctx := logx.ContextWithSessionLogger(sess.Context(), log, session.ID())
	log.Info("ssh session opened", "term", pty.Term)

	remote := console.NewRemote(sess)
	_ = remote.SetSize(pty.Window.Width, pty.Window.Height)
	go func() {
		for win := range winCh {
			_ = remote.SetSize(win.Width, win.Height)
		}
	}()

	m, err := menu.New(remote, session, s.Session)
	if err != nil {
		log.Error("ssh session setup failed", "err", err)
		_ = sess.Exit(1)
		return
	}
	status := 0
	if err := m.Run(ctx); err != nil {
		log.Warn("ssh session failed", "err", err)
		status = 1
	}
	log.Info("ssh session closed", "term", pty.Term)
	_ = sess.Exit(status)
}
