package idutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFNV1a64KnownVector(t *testing.T) {
	r := require.New(t)
	r.Equal(uint64(1469598103934665603), FNV1a64(nil))
	r.NotEqual(FNV1a64([]byte("a")), FNV1a64([]byte("b")))
}

func TestDeriveStateIDDeterministic(t *testing.T) {
	r := require.New(t)
	var parent StateID
	a := DeriveStateID(parent, "rule-1", 0)
	b := DeriveStateID(parent, "rule-1", 0)
	r.Equal(a, b)
}

func TestDeriveStateIDVariesByInputs(t *testing.T) {
	r := require.New(t)
	var parent StateID
	a := DeriveStateID(parent, "rule-1", 0)
	b := DeriveStateID(parent, "rule-2", 0)
	c := DeriveStateID(parent, "rule-1", 1)
	r.NotEqual(a, b)
	r.NotEqual(a, c)
}

func TestDedupPreserveOrder(t *testing.T) {
	r := require.New(t)
	in := []int{3, 1, 3, 2, 1}
	out := DedupPreserveOrder(in, func(v int) int { return v })
	r.Equal([]int{3, 1, 2}, out)
}
