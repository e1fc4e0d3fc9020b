package ledger

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDs_Absent(t *testing.T) {
	var l Ledger
	assert.Empty(t, l.IDs("m1"))
	assert.NotNil(t, l.IDs("m1"))
}

func TestIDs_ReturnsCopy(t *testing.T) {
	l := Ledger{"m1": {"a", "b"}}
	ids := l.IDs("m1")
	ids[0] = "z"
	assert.Equal(t, []string{"a", "b"}, l["m1"])
}

func TestAdd_PrependsAndMovesToFront(t *testing.T) {
	l := Ledger{}.Add("m1", "a").Add("m1", "b").Add("m1", "c")
	assert.Equal(t, []string{"c", "b", "a"}, l.IDs("m1"))

	l = l.Add("m1", "a")
	assert.Equal(t, []string{"a", "c", "b"}, l.IDs("m1"))
}

func TestAdd_DoesNotMutateInput(t *testing.T) {
	orig := Ledger{"m1": {"a", "b"}, "m2": {"x"}}
	next := orig.Add("m1", "b")

	assert.Equal(t, []string{"a", "b"}, orig["m1"])
	assert.Equal(t, []string{"b", "a"}, next["m1"])
	assert.Equal(t, []string{"x"}, next["m2"])
}

func TestAdd_Cap(t *testing.T) {
	l := Ledger{}
	for i := 0; i < MaxPerMovie+20; i++ {
		l = l.Add("m1", fmt.Sprintf("f%d", i))
	}
	ids := l.IDs("m1")
	require.Len(t, ids, MaxPerMovie)
	assert.Equal(t, fmt.Sprintf("f%d", MaxPerMovie+19), ids[0])
	assert.Equal(t, "f20", ids[MaxPerMovie-1])
}

func TestAdd_MonotonicRecency(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	l := Ledger{}
	for step := 0; step < 2000; step++ {
		id := fmt.Sprintf("f%d", rnd.Intn(150))
		l = l.Add("m1", id)

		ids := l.IDs("m1")
		require.Equal(t, id, ids[0])
		require.LessOrEqual(t, len(ids), MaxPerMovie)

		seen := make(map[string]bool, len(ids))
		for _, x := range ids {
			require.False(t, seen[x], "duplicate %s at step %d", x, step)
			seen[x] = true
		}
	}
}
