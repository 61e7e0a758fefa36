package core_test

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/house-holder/shopkeeper/internal/core"
)

// scriptPrompt feeds a fixed sequence of operator inputs; once exhausted it
// fails like a closed stdin.
type scriptPrompt struct {
	inputs []string
}

func (p *scriptPrompt) next() (string, error) {
	if len(p.inputs) == 0 {
		return "", io.EOF
	}
	in := p.inputs[0]
	p.inputs = p.inputs[1:]
	return in, nil
}

func (p *scriptPrompt) Line(string) (string, error) { return p.next() }

func (p *scriptPrompt) Quantity(string) (uint32, error) {
	in, err := p.next()
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(in, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(n), nil
}

// recordView captures diagnostics instead of printing them.
type recordView struct {
	notices []string
	shown   int
}

func (v *recordView) ShowInventory(*core.Store) { v.shown++ }

func (v *recordView) Noticef(format string, args ...any) {
	v.notices = append(v.notices, fmt.Sprintf(format, args...))
}

func (v *recordView) joined() string { return strings.Join(v.notices, "\n") }

func runBuilder(t *testing.T, st *core.Store, inputs ...string) ([]core.OrderLine, *recordView, error) {
	t.Helper()
	view := &recordView{}
	b := core.NewOrderBuilder(st, &scriptPrompt{inputs: inputs}, view)
	lines, err := b.Run()
	return lines, view, err
}

func TestOrderBuilder_FinishReturnsSortedLines(t *testing.T) {
	st := seededStore(t) // ids 1 (qty 12), 2 (qty 203)

	lines, _, err := runBuilder(t, st, "1", "3", "0", "2", "finish")
	require.NoError(t, err)
	assert.Equal(t, []core.OrderLine{{ItemID: 1, Qty: 2}, {ItemID: 2, Qty: 3}}, lines)

	_, qty1, _ := st.InventoryGet(1)
	_, qty2, _ := st.InventoryGet(2)
	assert.Equal(t, uint32(10), qty1)
	assert.Equal(t, uint32(200), qty2)
}

func TestOrderBuilder_RepeatSelectionsCollapse(t *testing.T) {
	st := seededStore(t)

	lines, _, err := runBuilder(t, st, "0", "2", "0", "3", "f")
	require.NoError(t, err)
	assert.Equal(t, []core.OrderLine{{ItemID: 1, Qty: 5}}, lines)

	_, qty, _ := st.InventoryGet(1)
	assert.Equal(t, uint32(7), qty)
}

func TestOrderBuilder_QuitRestoresEveryReservation(t *testing.T) {
	st := seededStore(t)

	lines, _, err := runBuilder(t, st, "0", "4", "1", "50", "0", "1", "quit")
	require.NoError(t, err)
	assert.Nil(t, lines)

	_, qty1, _ := st.InventoryGet(1)
	_, qty2, _ := st.InventoryGet(2)
	assert.Equal(t, uint32(12), qty1)
	assert.Equal(t, uint32(203), qty2)
}

func TestOrderBuilder_EmptyFinishRejected(t *testing.T) {
	st := seededStore(t)

	lines, view, err := runBuilder(t, st, "finish", "q")
	require.NoError(t, err)
	assert.Nil(t, lines)
	assert.Contains(t, view.joined(), "no items have been added")
	// The loop re-presented the inventory after the rejected finish.
	assert.Equal(t, 2, view.shown)
}

func TestOrderBuilder_RecoverableErrorsReloop(t *testing.T) {
	t.Run("row out of range", func(t *testing.T) {
		st := seededStore(t)
		_, view, err := runBuilder(t, st, "7", "quit")
		require.NoError(t, err)
		assert.Contains(t, view.joined(), "Row out of range")
	})

	t.Run("unparsable command", func(t *testing.T) {
		st := seededStore(t)
		_, view, err := runBuilder(t, st, "banana", "quit")
		require.NoError(t, err)
		assert.Contains(t, view.joined(), "Enter a row number")
	})

	t.Run("zero quantity", func(t *testing.T) {
		st := seededStore(t)
		lines, view, err := runBuilder(t, st, "0", "0", "quit")
		require.NoError(t, err)
		assert.Nil(t, lines)
		assert.Contains(t, view.joined(), "Quantity must be positive")

		_, qty, _ := st.InventoryGet(1)
		assert.Equal(t, uint32(12), qty)
	})

	t.Run("insufficient stock leaves state unchanged", func(t *testing.T) {
		st := seededStore(t)
		lines, view, err := runBuilder(t, st, "0", "13", "quit")
		require.NoError(t, err)
		assert.Nil(t, lines)
		assert.Contains(t, view.joined(), "insufficient stock")

		_, qty, _ := st.InventoryGet(1)
		assert.Equal(t, uint32(12), qty)
	})
}

func TestOrderBuilder_FailedSelectionNotRolledBackTwice(t *testing.T) {
	st := seededStore(t)

	// One successful reservation, one refused; quit must restore only the
	// successful one, leaving pre-session quantities exactly.
	lines, _, err := runBuilder(t, st, "0", "5", "0", "100", "quit")
	require.NoError(t, err)
	assert.Nil(t, lines)

	_, qty, _ := st.InventoryGet(1)
	assert.Equal(t, uint32(12), qty)
}

func TestOrderBuilder_InputFailurePropagates(t *testing.T) {
	st := seededStore(t)

	_, _, err := runBuilder(t, st)
	assert.Error(t, err)

	// Mid-session failure still propagates; the reservation stays applied
	// because nothing cancelled the session.
	_, _, err = runBuilder(t, st, "0", "2")
	assert.Error(t, err)
	_, qty, _ := st.InventoryGet(1)
	assert.Equal(t, uint32(10), qty)
}
