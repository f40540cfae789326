package fixture_test

import (
	"context"
	"fmt"
	"reflect"
	"testing"

	"github.com/drblury/selftest/fixture"
	"github.com/drblury/selftest/probe"
)

func add(a, b int) int { return a + b }
func mul(a, b int) int { return a * b }
func sub(a, b int) int { return a - b }

func registryFor(t *testing.T, fn fixture.AddFunc) *probe.Registry {
	t.Helper()

	reg := probe.NewRegistry()
	fixture.Register(reg, fn)
	return reg
}

func invoke(t *testing.T, reg *probe.Registry, name string) int {
	t.Helper()

	flag, err := reg.Invoke(context.Background(), name)
	if err != nil {
		t.Fatalf("invoke %s: %v", name, err)
	}
	return flag
}

func TestRegisterExportsStableNames(t *testing.T) {
	reg := registryFor(t, add)

	want := []string{"test_add_1", "test_add_2"}
	if got := reg.NamesWithPrefix(probe.TestPrefix); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected export names: got %v want %v", got, want)
	}
}

func TestProbeOutcomes(t *testing.T) {
	tests := []struct {
		name     string
		op       fixture.AddFunc
		wantAdd1 int
		wantAdd2 int
	}{
		{"correct addition", add, 1, 1},
		{"multiplication substitution", mul, 0, 1},
		{"subtraction substitution", sub, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			reg := registryFor(t, tc.op)

			if got := invoke(t, reg, fixture.TestAdd1); got != tc.wantAdd1 {
				t.Fatalf("test_add_1: got flag %d, want %d", got, tc.wantAdd1)
			}
			if got := invoke(t, reg, fixture.TestAdd2); got != tc.wantAdd2 {
				t.Fatalf("test_add_2: got flag %d, want %d", got, tc.wantAdd2)
			}
		})
	}
}

func TestProbesAreIdempotent(t *testing.T) {
	reg := registryFor(t, add)

	for i := 0; i < 5; i++ {
		if got := invoke(t, reg, fixture.TestAdd1); got != 1 {
			t.Fatalf("invocation %d: got flag %d, want 1", i, got)
		}
	}
}

func TestMain_aggregates(t *testing.T) {
	tests := []struct {
		name string
		op   fixture.AddFunc
		want int
	}{
		{"correct addition exits zero", add, 0},
		{"multiplication fails the discriminating check", mul, 1},
		{"subtraction fails both checks", sub, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := fixture.Main(tc.op); got != tc.want {
				t.Fatalf("Main: got %d, want %d", got, tc.want)
			}
		})
	}
}

func ExampleMain() {
	fmt.Println(fixture.Main(func(a, b int) int { return a + b }))
	fmt.Println(fixture.Main(func(a, b int) int { return a * b }))

	// Output:
	// 0
	// 1
}
