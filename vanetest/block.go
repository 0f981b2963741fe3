package vanetest

import (
	"testing"
	"time"

	"github.com/iov-one/vane"
	abci "github.com/tendermint/tendermint/abci/types"
)

// ChainID is used by all block info created by this package.
const ChainID = "test-chain"

// BlockInfo returns a block info for given height and time with an attached
// event manager. Use the returned manager to inspect emitted events.
func BlockInfo(t testing.TB, height int64, now time.Time) (vane.BlockInfo, *vane.EventManager) {
	t.Helper()
	info, err := vane.NewBlockInfo(abci.Header{Height: height, Time: now}, ChainID, nil)
	if err != nil {
		t.Fatalf("cannot create block info: %s", err)
	}
	events := vane.NewEventManager()
	return info.WithEventManager(events), events
}

// EventTypes returns the types of all given events, in order.
func EventTypes(events []vane.Event) []string {
	types := make([]string, 0, len(events))
	for _, e := range events {
		types = append(types, e.Type)
	}
	return types
}
