package simulation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/tuannvm/ultratech/internal/clock"
	"github.com/tuannvm/ultratech/internal/universe"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func TestRunnerResolvesAfterDelay(t *testing.T) {
	fake := clock.Fake(epoch)
	r := NewRunner(WithClock(fake))

	results, err := r.Trigger(3, 21)
	require.NoError(t, err)
	assert.True(t, r.Pending())

	fake.Advance(DefaultDelay - time.Millisecond)
	select {
	case <-results:
		t.Fatal("result delivered before the delay elapsed")
	default:
	}
	assert.True(t, r.Pending())

	fake.Advance(time.Millisecond)
	select {
	case res := <-results:
		assert.True(t, res.Succeeded())
		assert.Equal(t, 21, res.Coefficient)
		assert.Equal(t, 3, res.AgentCount)
	default:
		t.Fatal("result not delivered after the delay")
	}
	assert.False(t, r.Pending())

	// Exactly one result
	fake.Advance(time.Hour)
	select {
	case <-results:
		t.Fatal("second result delivered")
	default:
	}
}

func TestRunnerRejectsConcurrentTrigger(t *testing.T) {
	fake := clock.Fake(epoch)
	r := NewRunner(WithClock(fake))

	first, err := r.Trigger(2, 5)
	require.NoError(t, err)

	_, err = r.Trigger(2, 5)
	assert.ErrorIs(t, err, ErrBusy)
	assert.Equal(t, 1, fake.Pending())

	fake.Advance(DefaultDelay)
	<-first

	second, err := r.Trigger(1, 2)
	require.NoError(t, err)
	fake.Advance(DefaultDelay)
	res := <-second
	assert.False(t, res.Succeeded())
}

func TestRunnerUsesTriggerTimeInputs(t *testing.T) {
	fake := clock.Fake(epoch)
	r := NewRunner(WithClock(fake))
	reg := universe.NewRegistry()
	require.True(t, reg.Propose("Alpha", 7).Success)

	m := reg.Snapshot().Metrics()
	results, err := r.Trigger(m.AgentCount, m.TotalRank)
	require.NoError(t, err)

	// The universe grows while the simulation is pending
	require.True(t, reg.Propose("Beta", 11).Success)
	require.True(t, reg.Propose("Gamma", 13).Success)

	fake.Advance(DefaultDelay)
	res := <-results
	assert.False(t, res.Succeeded())
	assert.Equal(t, 1, res.AgentCount)
}

func TestRunnerCustomDelayAndDetail(t *testing.T) {
	fake := clock.Fake(epoch)
	r := NewRunner(
		WithClock(fake),
		WithDelay(2*time.Second),
		WithDetail(func(res Result) string { return "custom " + res.Outcome.String() }),
	)
	assert.Equal(t, 2*time.Second, r.Delay())

	results, err := r.Trigger(2, 10)
	require.NoError(t, err)

	fake.Advance(DefaultDelay)
	assert.True(t, r.Pending())

	fake.Advance(2 * time.Second)
	res := <-results
	assert.Equal(t, "custom success", res.Detail)
}

func TestRunnerZeroDelay(t *testing.T) {
	r := NewRunner(WithClock(clock.Fake(epoch)), WithDelay(-time.Second))
	assert.Equal(t, time.Duration(0), r.Delay())

	results, err := r.Trigger(2, 5)
	require.NoError(t, err)
	res := <-results
	assert.True(t, res.Succeeded())
	assert.False(t, r.Pending())
}

func TestRunnerRunWithRealClock(t *testing.T) {
	r := NewRunner(WithDelay(5 * time.Millisecond))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := r.Run(ctx, 3, 21)
	require.NoError(t, err)
	assert.Equal(t, 21, res.Coefficient)
}

func TestRunnerRunContextCancelled(t *testing.T) {
	fake := clock.Fake(epoch)
	r := NewRunner(WithClock(fake))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Run(ctx, 3, 21)
	assert.ErrorIs(t, err, context.Canceled)

	// The abandoned simulation still resolves and frees the runner
	assert.True(t, r.Pending())
	fake.Advance(DefaultDelay)
	assert.False(t, r.Pending())
}
