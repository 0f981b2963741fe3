package app

import (
	"testing"
	"time"

	"github.com/iov-one/vane"
	"github.com/iov-one/vane/errors"
	"github.com/iov-one/vane/vanetest"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"
)

var now = time.Date(2019, 6, 1, 12, 0, 0, 0, time.UTC)

type panicHandler struct{}

func (panicHandler) Deliver(info vane.BlockInfo, db vane.KVStore, msg vane.Msg) (*vane.DeliverResult, error) {
	if err := db.Set([]byte("panic"), []byte("written")); err != nil {
		return nil, err
	}
	panic("boom")
}

func newTestApp(t *testing.T, r *Router, init vane.Initializer) (*Application, vane.CommitKVStore, func()) {
	t.Helper()
	db, cleanup := vanetest.CommitKVStore(t)
	a, err := NewApplication("test", db, r, init, nil, nil)
	if err != nil {
		cleanup()
		t.Fatalf("cannot create application: %s", err)
	}
	return a, db, cleanup
}

type optsRecorder struct {
	got vane.Options
}

func (o *optsRecorder) FromGenesis(opts vane.Options, db vane.KVStore) error {
	o.got = opts
	return db.Set([]byte("genesis"), []byte("done"))
}

func TestInitChain(t *testing.T) {
	init := &optsRecorder{}
	a, _, cleanup := newTestApp(t, NewRouter(), init)
	defer cleanup()

	err := a.InitChain("test-chain", nil)
	if !errors.ErrInput.Is(err) {
		t.Fatalf("unexpected error: %+v", err)
	}
	err = a.InitChain("test-chain", []byte(`not json`))
	if !errors.ErrInput.Is(err) {
		t.Fatalf("unexpected error: %+v", err)
	}
	err = a.InitChain("x", []byte(`{}`))
	if !errors.ErrInput.Is(err) {
		t.Fatalf("unexpected error: %+v", err)
	}

	require.NoError(t, a.InitChain("test-chain", []byte(`{"foo": {"bar": 1}}`)))
	assert.Equal(t, "test-chain", a.ChainID())
	assert.Equal(t, `{"bar": 1}`, string(init.got["foo"]))

	err = a.InitChain("test-chain", []byte(`{}`))
	if !errors.ErrState.Is(err) {
		t.Fatalf("unexpected error: %+v", err)
	}

	require.NoError(t, a.View(func(db vane.ReadOnlyKVStore) error {
		v, err := db.Get([]byte("genesis"))
		assert.Equal(t, "done", string(v))
		return err
	}))
}

func TestDeliverIsAtomic(t *testing.T) {
	r := NewRouter()
	ok := &vanetest.Handler{
		WriteKey:      []byte("ok"),
		WriteValue:    []byte("value"),
		DeliverResult: vane.DeliverResult{Data: []byte("result")},
	}
	failing := &vanetest.Handler{
		WriteKey:   []byte("failing"),
		WriteValue: []byte("value"),
		DeliverErr: errors.ErrUnauthorized,
	}
	r.Handle("ok", ok)
	r.Handle("failing", failing)
	r.Handle("panic", panicHandler{})

	a, _, cleanup := newTestApp(t, r, nil)
	defer cleanup()

	_, err := a.Deliver(&vanetest.Msg{RoutePath: "ok"})
	if !errors.ErrState.Is(err) {
		t.Fatalf("uninitialized chain must reject messages: %+v", err)
	}

	require.NoError(t, a.InitChain("test-chain", []byte(`{}`)))
	a.BeginBlock(abci.Header{Height: 1, Time: now})

	res, err := a.Deliver(&vanetest.Msg{RoutePath: "ok"})
	require.NoError(t, err)
	assert.Equal(t, []byte("result"), res.Data)
	assert.Equal(t, []string{"test.delivered"}, vanetest.EventTypes(res.Events))

	_, err = a.Deliver(&vanetest.Msg{RoutePath: "failing"})
	if !errors.ErrUnauthorized.Is(err) {
		t.Fatalf("unexpected error: %+v", err)
	}
	_, err = a.Deliver(&vanetest.Msg{RoutePath: "panic"})
	if !errors.ErrPanic.Is(err) {
		t.Fatalf("unexpected error: %+v", err)
	}
	_, err = a.Deliver(&vanetest.Msg{RoutePath: "ok", Err: errors.ErrInput})
	if !errors.ErrInput.Is(err) {
		t.Fatalf("unexpected error: %+v", err)
	}
	assert.Equal(t, 1, failing.DeliverCallCount())
	assert.Equal(t, 1, ok.DeliverCallCount())

	require.NoError(t, a.View(func(db vane.ReadOnlyKVStore) error {
		for key, want := range map[string]bool{"ok": true, "failing": false, "panic": false} {
			has, err := db.Has([]byte(key))
			require.NoError(t, err)
			assert.Equal(t, want, has, key)
		}
		return nil
	}))
}

func TestCommitPersists(t *testing.T) {
	r := NewRouter()
	r.Handle("ok", &vanetest.Handler{WriteKey: []byte("ok"), WriteValue: []byte("value")})
	a, db, cleanup := newTestApp(t, r, nil)
	defer cleanup()

	require.NoError(t, a.InitChain("test-chain", []byte(`{}`)))
	a.BeginBlock(abci.Header{Height: 1, Time: now})
	_, err := a.Deliver(&vanetest.Msg{RoutePath: "ok"})
	require.NoError(t, err)

	// Nothing is visible in the committed store before the commit.
	v, err := db.Get([]byte("ok"))
	require.NoError(t, err)
	assert.Nil(t, v)

	id, err := a.Commit()
	require.NoError(t, err)
	assert.EqualValues(t, 1, id.Version)
	assert.Equal(t, id, a.CommitInfo())

	v, err = db.Get([]byte("ok"))
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), v)

	// A restarted application recovers the chain id.
	restarted, err := NewApplication("test", db, r, nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "test-chain", restarted.ChainID())
	assert.EqualValues(t, 1, restarted.CommitInfo().Version)
}

func TestMetrics(t *testing.T) {
	r := NewRouter()
	r.Handle("ok", &vanetest.Handler{})
	r.Handle("failing", &vanetest.Handler{DeliverErr: errors.ErrUnauthorized})

	db, cleanup := vanetest.CommitKVStore(t)
	defer cleanup()
	reg := prometheus.NewRegistry()
	a, err := NewApplication("test", db, r, nil, nil, NewMetrics(reg))
	require.NoError(t, err)
	require.NoError(t, a.InitChain("test-chain", []byte(`{}`)))

	for i := 0; i < 3; i++ {
		_, err := a.Deliver(&vanetest.Msg{RoutePath: "ok"})
		require.NoError(t, err)
	}
	_, err = a.Deliver(&vanetest.Msg{RoutePath: "failing"})
	require.Error(t, err)

	families, err := reg.Gather()
	require.NoError(t, err)
	counts := make(map[string]float64)
	for _, f := range families {
		for _, m := range f.GetMetric() {
			if c := m.GetCounter(); c != nil {
				key := f.GetName()
				for _, l := range m.GetLabel() {
					key += "," + l.GetValue()
				}
				counts[key] = c.GetValue()
			}
		}
	}
	assert.Equal(t, 3.0, counts["vane_delivered_txs_total,ok,success"])
	assert.Equal(t, 1.0, counts["vane_delivered_txs_total,failing,failure"])
	assert.Equal(t, 3.0, counts["vane_events_total,test.delivered"])
}
