package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestRunNow(t *testing.T) {
	s := New(zerolog.Nop())
	out, err := s.RunNow(context.Background(), "sweep", func(context.Context) (any, error) {
		return 3, nil
	})
	if err != nil || out != 3 {
		t.Fatalf("unexpected result %v %v", out, err)
	}

	boom := errors.New("boom")
	if _, err := s.RunNow(context.Background(), "sweep", func(context.Context) (any, error) { return nil, boom }); !errors.Is(err, boom) {
		t.Fatalf("expected job error, got %v", err)
	}
}

func TestEnqueueRunsOnWorker(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s := New(zerolog.Nop())
	s.Start(ctx)

	done := make(chan struct{})
	if !s.Enqueue("ping", func(context.Context) (any, error) {
		close(done)
		return nil, nil
	}) {
		t.Fatal("enqueue rejected")
	}
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("job did not run")
	}
}

func TestEnqueueFullQueue(t *testing.T) {
	s := New(zerolog.Nop())
	noop := func(context.Context) (any, error) { return nil, nil }
	for range queueSize {
		if !s.Enqueue("fill", noop) {
			t.Fatal("queue rejected before full")
		}
	}
	if s.Enqueue("overflow", noop) {
		t.Fatal("expected full queue to drop the job")
	}
}

func TestEveryTicks(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s := New(zerolog.Nop())
	s.Start(ctx)

	ran := make(chan struct{}, 4)
	s.Every(ctx, 5*time.Millisecond, "tick", func(context.Context) (any, error) {
		select {
		case ran <- struct{}{}:
		default:
		}
		return nil, nil
	})
	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("periodic job did not run")
	}
}
