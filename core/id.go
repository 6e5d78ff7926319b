package core

import (
	"github.com/google/uuid"

	"pkt.systems/coinflip/schema"
)

func newSessionID() schema.SessionID {
	id, err := uuid.NewRandom()
	if err != nil {
		return "session-unknown"
	}
	return schema.SessionID(id.String())
}
