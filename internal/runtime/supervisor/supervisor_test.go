package supervisor

import (
	"context"
	"errors"
	"testing"
	"time"

	logx "radiowatch/pkg/logx"
)

func TestGoAndStop(t *testing.T) {
	t.Parallel()
	s := New(context.Background(), WithLogger(logx.Nop()))

	ran := make(chan struct{})
	s.Go0("worker", func(ctx context.Context) {
		close(ran)
		<-ctx.Done()
	})

	<-ran
	if s.Active() != 1 {
		t.Fatalf("active = %d", s.Active())
	}
	if !s.Stop(5 * time.Second) {
		t.Fatal("stop timed out")
	}
	if s.Active() != 0 {
		t.Fatalf("active after stop = %d", s.Active())
	}
}

func TestCancelOnError(t *testing.T) {
	t.Parallel()
	s := New(context.Background(), WithLogger(logx.Nop()), WithCancelOnError(true))

	boom := errors.New("boom")
	s.Go("failing", func(ctx context.Context) error { return boom })

	select {
	case <-s.Context().Done():
	case <-time.After(5 * time.Second):
		t.Fatal("first error did not cancel context")
	}
	if !errors.Is(s.Err(), boom) {
		t.Fatalf("Err = %v", s.Err())
	}
}

func TestPanicIsRecovered(t *testing.T) {
	t.Parallel()
	s := New(context.Background(), WithLogger(logx.Nop()), WithCancelOnError(true))

	s.Go0("panicky", func(ctx context.Context) { panic("oh no") })

	select {
	case <-s.Context().Done():
	case <-time.After(5 * time.Second):
		t.Fatal("panic did not cancel context")
	}
	if s.Err() == nil {
		t.Fatal("panic not recorded as error")
	}
	s.Wait()
}

func TestCleanContextExit(t *testing.T) {
	t.Parallel()
	s := New(context.Background(), WithLogger(logx.Nop()), WithCancelOnError(true))

	s.Go("polite", func(ctx context.Context) error { return context.Canceled })
	s.Wait()

	if err := s.Err(); err != nil {
		t.Fatalf("context.Canceled recorded as failure: %v", err)
	}
}
