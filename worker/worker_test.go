package worker

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProcessClampsPeers(t *testing.T) {
	assert.Equal(t, 1, NewProcess(0).Peers())
	assert.Equal(t, 1, NewProcess(-3).Peers())
	assert.Equal(t, 4, NewProcess(4).Peers())
}

func TestWorkerIdentity(t *testing.T) {
	p := NewProcess(3)
	for i := 0; i < 3; i++ {
		w := p.Worker(i)
		assert.Equal(t, i, w.Index())
		assert.Equal(t, 3, w.Peers())
	}
}

func TestPipelineFIFO(t *testing.T) {
	p := NewProcess(1)
	push, pull := Pipeline[int](p.Worker(0), 0, nil)

	assert.Nil(t, pull.Pull(), "empty channel must report nothing available")

	values := []int{10, 20, 30}
	for i := range values {
		push.Push(&values[i])
	}
	for _, want := range values {
		got := pull.Pull()
		require.NotNil(t, got)
		assert.Equal(t, want, *got)
	}
	assert.Nil(t, pull.Pull())
}

func TestPipelinePushNilIsNoOp(t *testing.T) {
	p := NewProcess(1)
	push, pull := Pipeline[int](p.Worker(0), 0, nil)

	push.Push(nil)
	assert.Nil(t, pull.Pull())
}

func TestFanoutDeliversToAddressedWorker(t *testing.T) {
	p := NewProcess(2)
	pushers0, pull0 := Fanout[string](p.Worker(0), 7, []int{1})
	_, pull1 := Fanout[string](p.Worker(1), 7, []int{1})

	require.Len(t, pushers0, 2)

	self := "to self"
	other := "to other"
	pushers0[0].Push(&self)
	pushers0[1].Push(&other)

	got0 := pull0.Pull()
	require.NotNil(t, got0)
	assert.Equal(t, "to self", *got0)

	got1 := pull1.Pull()
	require.NotNil(t, got1)
	assert.Equal(t, "to other", *got1)
}

func TestFanoutKeyedByChannelAndAddress(t *testing.T) {
	p := NewProcess(1)
	pushersA, pullA := Fanout[int](p.Worker(0), 1, []int{0})
	_, pullB := Fanout[int](p.Worker(0), 1, []int{0, 0})

	v := 42
	pushersA[0].Push(&v)

	assert.Nil(t, pullB.Pull(), "distinct addresses must not share mailboxes")
	require.NotNil(t, pullA.Pull())
}

func TestFanoutTypeMismatchPanics(t *testing.T) {
	p := NewProcess(2)
	Fanout[int](p.Worker(0), 2, nil)

	assert.Panics(t, func() {
		Fanout[string](p.Worker(1), 2, nil)
	})
}

func TestRunExecutesEveryWorker(t *testing.T) {
	p := NewProcess(4)

	seen := make([]bool, 4)
	err := p.Run(context.Background(), func(ctx context.Context, w *Worker) error {
		seen[w.Index()] = true
		return nil
	})

	require.NoError(t, err)
	for i, ok := range seen {
		assert.True(t, ok, "worker %d did not run", i)
	}
}

func TestRunPropagatesFirstError(t *testing.T) {
	p := NewProcess(2)
	boom := errors.New("boom")

	err := p.Run(context.Background(), func(ctx context.Context, w *Worker) error {
		if w.Index() == 1 {
			return boom
		}
		<-ctx.Done()
		return nil
	})

	assert.ErrorIs(t, err, boom)
}
