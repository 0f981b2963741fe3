package app

import (
	"testing"

	"github.com/iov-one/vane/errors"
	"github.com/iov-one/vane/vanetest"
	"github.com/iov-one/vane/vanetest/assert"
)

func TestRouter(t *testing.T) {
	r := NewRouter()
	counter := &vanetest.Handler{}
	failing := &vanetest.Handler{DeliverErr: errors.ErrUnauthorized}
	r.Handle("good/path", counter)
	r.Handle("bad", failing)

	// make sure invalid registrations panic
	assert.Panics(t, func() { r.Handle("good/path", counter) })
	assert.Panics(t, func() { r.Handle("l:7", counter) })

	info, _ := vanetest.BlockInfo(t, 1, now)
	_, err := r.Deliver(info, nil, &vanetest.Msg{RoutePath: "good/path"})
	assert.Nil(t, err)
	assert.Equal(t, 1, counter.DeliverCallCount())

	_, err = r.Deliver(info, nil, &vanetest.Msg{RoutePath: "bad"})
	assert.IsErr(t, errors.ErrUnauthorized, err)
	assert.Equal(t, 1, failing.DeliverCallCount())

	_, err = r.Deliver(info, nil, &vanetest.Msg{RoutePath: "missing"})
	assert.IsErr(t, errors.ErrNotFound, err)
	assert.Equal(t, 1, counter.DeliverCallCount())

	assert.Equal(t, 2, len(r.Paths()))
}
