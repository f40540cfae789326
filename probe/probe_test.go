package probe_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/drblury/selftest/probe"

	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type stubMongoPinger struct {
	err        error
	lastCtx    context.Context
	lastReadPF *readpref.ReadPref
}

func (s *stubMongoPinger) Ping(ctx context.Context, rp *readpref.ReadPref) error {
	s.lastCtx = ctx
	s.lastReadPF = rp
	return s.err
}

func TestNewBinaryOpProbe(t *testing.T) {
	add := func(a, b int) int { return a + b }
	mul := func(a, b int) int { return a * b }
	sub := func(a, b int) int { return a - b }

	t.Run("nil operation", func(t *testing.T) {
		probeFunc := probe.NewBinaryOpProbe("add", nil, 1, 2, 3)
		if err := probeFunc(context.Background()); err == nil {
			t.Fatal("expected error when operation is nil")
		}
	})

	t.Run("passes on exact equality", func(t *testing.T) {
		probeFunc := probe.NewBinaryOpProbe("add", add, 1, 2, 3)
		if err := probeFunc(context.Background()); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	})

	t.Run("discriminating operands reject multiplication", func(t *testing.T) {
		probeFunc := probe.NewBinaryOpProbe("add", mul, 1, 2, 3)
		err := probeFunc(context.Background())
		if err == nil {
			t.Fatal("expected failure: 1*2 != 3")
		}
	})

	t.Run("discriminating operands reject subtraction", func(t *testing.T) {
		probeFunc := probe.NewBinaryOpProbe("add", sub, 1, 2, 3)
		if err := probeFunc(context.Background()); err == nil {
			t.Fatal("expected failure: 1-2 != 3")
		}
	})

	t.Run("ambiguous operands accept multiplication", func(t *testing.T) {
		// 2+2 and 2*2 both yield 4; a probe with these operands cannot
		// tell addition and multiplication apart.
		probeFunc := probe.NewBinaryOpProbe("add", mul, 2, 2, 4)
		if err := probeFunc(context.Background()); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	})

	t.Run("failure reports operands and result", func(t *testing.T) {
		probeFunc := probe.NewBinaryOpProbe("add", sub, 1, 2, 3)
		err := probeFunc(context.Background())
		if err == nil {
			t.Fatal("expected error")
		}
		want := "add probe: op(1, 2) = -1, want 3"
		if err.Error() != want {
			t.Fatalf("unexpected error message: got %q want %q", err.Error(), want)
		}
	})
}

func TestFlag(t *testing.T) {
	t.Run("nil probe", func(t *testing.T) {
		if got := probe.Flag(context.Background(), nil); got != 0 {
			t.Fatalf("expected flag 0 for nil probe, got %d", got)
		}
	})

	t.Run("pass yields 1", func(t *testing.T) {
		fn := probe.Func(func(ctx context.Context) error { return nil })
		if got := probe.Flag(context.Background(), fn); got != 1 {
			t.Fatalf("expected flag 1, got %d", got)
		}
	})

	t.Run("failure yields 0", func(t *testing.T) {
		fn := probe.Func(func(ctx context.Context) error { return errors.New("boom") })
		if got := probe.Flag(context.Background(), fn); got != 0 {
			t.Fatalf("expected flag 0, got %d", got)
		}
	})

	t.Run("idempotent across invocations", func(t *testing.T) {
		fn := probe.NewBinaryOpProbe("add", func(a, b int) int { return a + b }, 1, 2, 3)
		for i := 0; i < 5; i++ {
			if got := probe.Flag(context.Background(), fn); got != 1 {
				t.Fatalf("invocation %d: expected flag 1, got %d", i, got)
			}
		}
	})
}

func TestNewPingProbe(t *testing.T) {
	t.Run("nil function", func(t *testing.T) {
		probeFunc := probe.NewPingProbe("db", nil)
		if err := probeFunc(context.Background()); err == nil {
			t.Fatal("expected error when ping function is nil")
		}
	})

	t.Run("success", func(t *testing.T) {
		called := false
		probeFunc := probe.NewPingProbe("db", func(ctx context.Context) error {
			if ctx == nil {
				t.Fatal("expected non-nil context")
			}
			called = true
			return nil
		})

		if err := probeFunc(context.Background()); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if !called {
			t.Fatal("expected ping function to be called")
		}
	})

	t.Run("failure", func(t *testing.T) {
		sentinel := errors.New("boom")
		probeFunc := probe.NewPingProbe("db", func(ctx context.Context) error {
			return sentinel
		})
		err := probeFunc(context.Background())
		if !errors.Is(err, sentinel) {
			t.Fatalf("expected error to wrap sentinel, got %v", err)
		}
	})
}

func TestNewMongoPingProbe(t *testing.T) {
	t.Run("nil client", func(t *testing.T) {
		probeFunc := probe.NewMongoPingProbe(nil, nil)
		if err := probeFunc(context.Background()); err == nil {
			t.Fatal("expected error when client is nil")
		}
	})

	t.Run("success", func(t *testing.T) {
		stub := &stubMongoPinger{}
		probeFunc := probe.NewMongoPingProbe(stub, nil)
		if err := probeFunc(context.Background()); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if stub.lastCtx == nil {
			t.Fatal("expected context to be forwarded")
		}
		if stub.lastReadPF == nil {
			t.Fatal("expected read preference to be set")
		}
		if stub.lastReadPF.Mode() != readpref.PrimaryMode {
			t.Fatalf("expected primary read preference, got %v", stub.lastReadPF.Mode())
		}
	})

	t.Run("failure", func(t *testing.T) {
		sentinel := errors.New("unreachable")
		stub := &stubMongoPinger{err: sentinel}
		probeFunc := probe.NewMongoPingProbe(stub, readpref.Secondary())
		err := probeFunc(context.Background())
		if !errors.Is(err, sentinel) {
			t.Fatalf("expected wrapped sentinel, got %v", err)
		}
		if stub.lastReadPF.Mode() != readpref.SecondaryMode {
			t.Fatalf("expected secondary read preference, got %v", stub.lastReadPF.Mode())
		}
	})
}

func ExampleNewBinaryOpProbe() {
	add := func(a, b int) int { return a + b }

	probeFunc := probe.NewBinaryOpProbe("add", add, 1, 2, 3)
	fmt.Println(probe.Flag(context.Background(), probeFunc))

	mul := func(a, b int) int { return a * b }
	mutated := probe.NewBinaryOpProbe("add", mul, 1, 2, 3)
	fmt.Println(probe.Flag(context.Background(), mutated))

	// Output:
	// 1
	// 0
}
