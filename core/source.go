package core

import (
	"time"

	"pkt.systems/coinflip/schema"
)

// Source produces uniformly distributed coin flip outcomes.
type Source interface {
	Next() schema.Outcome
}

// The pcg generator and the Coin bit buffer below are adapted from
// github.com/spacemonkeygo/random.
// Copyright (C) 2015 Space Monkey, Inc.

// pcg from pcg-random.org
type pcg struct {
	state uint64
	inc   uint64
}

func newPCG(state, inc uint64) pcg {
	const mul = 6364136223846793005

	// equivalent to starting from a zero state with the updated inc and
	// stepping once before and after adding state.
	inc = inc<<1 | 1
	return pcg{
		state: (inc+state)*mul + inc,
		inc:   inc,
	}
}

// Uint32 returns a random uint32.
func (p *pcg) Uint32() uint32 {
	const mul = 6364136223846793005

	if p.inc == 0 {
		*p = newPCG(0, 0)
	}

	oldstate := p.state
	p.state = oldstate*mul + p.inc

	// output permutation on the old state
	xorshifted := uint32(((oldstate >> 18) ^ oldstate) >> 27)
	rot := uint32(oldstate >> 59)
	return xorshifted>>rot | (xorshifted << ((-rot) & 31))
}

// Coin hands out one outcome per call, spending a single bit of a 32-bit
// draw each time so the generator is called once per 32 flips.
type Coin struct {
	pcg  pcg
	val  uint32
	bits int
}

// NewCoin returns a coin seeded with seed.
func NewCoin(seed uint64) *Coin {
	return &Coin{pcg: newPCG(seed, 0)}
}

// NewTimeSeededCoin returns a coin seeded from the wall clock.
func NewTimeSeededCoin() *Coin {
	return NewCoin(uint64(time.Now().UnixNano()))
}

// Next tosses the coin.
func (c *Coin) Next() schema.Outcome {
	if c.bits == 0 {
		c.val = c.pcg.Uint32()
		c.bits = 32
	}
	c.bits--
	out := schema.Outcome(c.val & 1)
	c.val >>= 1
	return out
}
