package tablex_test

import (
	"testing"

	"github.com/comalice/tablex"
	"github.com/comalice/tablex/internal/fixture"
	"github.com/comalice/tablex/testutil"
)

// The YAML suites under testdata/ are the executable form of the bridge
// contract. Each case builds an input container, applies one operation, and
// checks the resulting entries or error class.
func TestConformanceSuites(t *testing.T) {
	files, err := fixture.LoadDir("testdata")
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatal("no conformance suites found under testdata")
	}

	for _, f := range files {
		t.Run(f.Suite, func(t *testing.T) {
			for _, c := range f.Cases {
				t.Run(c.Name, func(t *testing.T) {
					if err := c.Run(); err != nil {
						t.Error(err)
					}
				})
			}
		})
	}
}

// The same conversion properties hold no matter which source materialized
// the container.
func TestBridgeAcrossSources(t *testing.T) {
	for _, src := range testutil.Sources() {
		t.Run(src.Name(), func(t *testing.T) {
			seq, err := src.Sequence(10, 20, 30)
			if err != nil {
				t.Fatal(err)
			}

			back, err := tablex.AsArray(tablex.AsObject(seq))
			if err != nil {
				t.Fatal(err)
			}
			want := map[any]any{int64(1): 10, int64(2): 20, int64(3): 30}
			if diff := testutil.DiffEntries(want, testutil.EntriesOf(back)); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}

			set, err := src.Set("a", "b")
			if err != nil {
				t.Fatal(err)
			}
			again, err := tablex.AsSet(tablex.AsObject(set))
			if err != nil {
				t.Fatal(err)
			}
			if !again.Has("a") || !again.Has("b") {
				t.Errorf("set membership lost: %s", testutil.Dump(again))
			}
		})
	}
}
