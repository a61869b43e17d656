// Package kpa implements KPA (Keccak-based Parallel Authentication): an
// 8-way parallel MAC built from reduced-round Keccak leaf states and a
// root KMAC-256 tree-hash, offered as an alternative RCS tag function to
// plain KMAC (spec.md §4.6).
package kpa

import (
	"github.com/Steppenwolfe65/RCS-sub000/internal/keccak"
	"github.com/Steppenwolfe65/RCS-sub000/kmac"
)

// Lanes is the fixed fan-out of the parallel leaf tree.
const Lanes = 8

// StripeSize is the width of each round-robin input chunk handed to a leaf,
// matching the full Keccak-f[1600] state width.
const StripeSize = keccak.StateSize

const (
	leafRate      = 136
	leafDSByte    = 0x04
	leafOutputLen = 32
)

// State is a KPA instance: 8 independent reduced-round Keccak leaves, fed by
// round-robin striping, plus the key/customization the root KMAC will use.
type State struct {
	leaves    [Lanes]*keccak.Sponge
	key       []byte
	custom    []byte
	next      int
	stripeBuf []byte
}

// New builds a KPA instance keyed with key and customized with custom. Each
// leaf absorbs key || custom || its own single-byte lane index before any
// message bytes, so no two leaves ever process identical input even when
// fed identical stripes.
func New(key, custom []byte) *State {
	s := &State{key: key, custom: custom}
	for i := range s.leaves {
		leaf := keccak.NewReducedSponge(leafRate, leafDSByte)
		leaf.Write(key)
		leaf.Write(custom)
		leaf.Write([]byte{byte(i)})
		s.leaves[i] = leaf
	}
	return s
}

// Write stripes p across the 8 leaves in StripeSize-byte chunks, round
// robin, continuing from wherever the previous Write call left off.
func (s *State) Write(p []byte) (int, error) {
	written := len(p)
	for len(p) > 0 {
		n := StripeSize - len(s.stripeBuf)
		if n > len(p) {
			n = len(p)
		}
		s.stripeBuf = append(s.stripeBuf, p[:n]...)
		p = p[n:]
		if len(s.stripeBuf) == StripeSize {
			s.leaves[s.next].Write(s.stripeBuf)
			s.next = (s.next + 1) % Lanes
			s.stripeBuf = s.stripeBuf[:0]
		}
	}
	return written, nil
}

// Sum finalizes the tree: any partial trailing stripe is absorbed into the
// next leaf in rotation, every leaf is squeezed to a fixed width, and the 8
// leaf digests are concatenated and authenticated by a root KMAC-256 keyed
// and customized the same as the leaves.
func (s *State) Sum(outputLen int) []byte {
	if len(s.stripeBuf) > 0 {
		s.leaves[s.next].Write(s.stripeBuf)
	}

	root := make([]byte, 0, Lanes*leafOutputLen)
	for _, leaf := range s.leaves {
		root = leaf.Squeeze(root, leafOutputLen)
	}

	return kmac.Sum256(s.key, root, s.custom, outputLen)
}

// Sum256 is the one-shot KPA entry point.
func Sum256(key, message, custom []byte, outputLen int) []byte {
	s := New(key, custom)
	s.Write(message)
	return s.Sum(outputLen)
}
