package assert

import (
	"fmt"
	"testing"

	"github.com/iov-one/vane/errors"
)

type recorder struct {
	failed bool
}

func (r *recorder) Helper() {}
func (r *recorder) Fatal(...interface{}) { r.failed = true }
func (r *recorder) Fatalf(string, ...interface{}) { r.failed = true }

func TestNil(t *testing.T) {
	cases := map[string]struct {
		value    interface{}
		wantFail bool
	}{
		"nil":             {value: nil},
		"nil pointer":     {value: (*int)(nil)},
		"nil error":       {value: error(nil)},
		"integer":         {value: 4, wantFail: true},
		"non nil pointer": {value: new(int), wantFail: true},
		"error":           {value: fmt.Errorf("x"), wantFail: true},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var r recorder
			Nil(&r, tc.value)
			if r.failed != tc.wantFail {
				t.Fatalf("want fail=%v", tc.wantFail)
			}
		})
	}
}

func TestEqualAndIsErr(t *testing.T) {
	var r recorder
	Equal(&r, []byte("a"), []byte("a"))
	if r.failed {
		t.Fatal("equal values")
	}
	Equal(&r, 1, int64(1))
	if !r.failed {
		t.Fatal("different types must not be equal")
	}

	r = recorder{}
	IsErr(&r, errors.ErrNotFound, errors.Wrap(errors.ErrNotFound, "x"))
	if r.failed {
		t.Fatal("wrapped error must match")
	}
	IsErr(&r, errors.ErrEmpty, errors.ErrNotFound)
	if !r.failed {
		t.Fatal("different errors must not match")
	}
}

func TestPanics(t *testing.T) {
	var r recorder
	Panics(&r, func() { panic("boom") })
	if r.failed {
		t.Fatal("panic was not recovered")
	}
	Panics(&r, func() {})
	if !r.failed {
		t.Fatal("missing panic not reported")
	}
}
