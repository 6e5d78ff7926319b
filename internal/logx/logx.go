package logx

import (
	"context"

	"pkt.systems/coinflip/schema"
	"pkt.systems/pslog"
)

type contextKey int

const sessionKey contextKey = iota

// WithSession annotates the logger with the session id when available.
func WithSession(log pslog.Logger, sessionID schema.SessionID) pslog.Logger {
	if sessionID != "" {
		log = log.With("session", sessionID)
	}
	return log
}

// WithRemote annotates the logger with the remote address and user when available.
func WithRemote(log pslog.Logger, remote, user string) pslog.Logger {
	if remote != "" {
		log = log.With("remote", remote)
	}
	if user != "" {
		log = log.With("user", user)
	}
	return log
}

// SessionLogger returns the context logger annotated with the session id,
// skipping the field when the context already carries it.
func SessionLogger(ctx context.Context, sessionID schema.SessionID) pslog.Logger {
	log := pslog.Ctx(ctx)
	if current, ok := ctx.Value(sessionKey).(schema.SessionID); ok && current == sessionID {
		return log
	}
	return WithSession(log, sessionID)
}

// ContextWithSessionLogger attaches the logger and session marker to the context.
func ContextWithSessionLogger(ctx context.Context, log pslog.Logger, sessionID schema.SessionID) context.Context {
	ctx = pslog.ContextWithLogger(ctx, log)
	if sessionID == "" {
		return ctx
	}
	return context.WithValue(ctx, sessionKey, sessionID)
}
