package app

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/iov-one/vane"
	"github.com/iov-one/vane/errors"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// TxResult is the outcome of a successfully delivered message.
type TxResult struct {
	vane.DeliverResult
	// Events emitted by the message, in emission order.
	Events []vane.Event
}

// Application contains the state store, the message router and the genesis
// initializer. Messages are processed one at a time.
type Application struct {
	mu sync.Mutex

	// name is what is returned from abci.Info
	name string

	logger  log.Logger
	store   *CommitStore
	router  *Router
	init    vane.Initializer
	metrics *Metrics

	// chainID is loaded from db in initialization, saved once in InitChain
	chainID string

	// header of the block currently being processed, set by BeginBlock
	header abci.Header
}

// NewApplication loads the latest state from given store. Metrics is
// optional.
func NewApplication(
	name string,
	store vane.CommitKVStore,
	router *Router,
	init vane.Initializer,
	logger log.Logger,
	metrics *Metrics,
) (*Application, error) {
	cs, err := NewCommitStore(store)
	if err != nil {
		return nil, err
	}
	chainID, err := loadChainID(cs.DeliverStore())
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}
	a := &Application{
		name:    name,
		logger:  logger,
		store:   cs,
		router:  router,
		init:    init,
		metrics: metrics,
		chainID: chainID,
	}
	a.header = abci.Header{
		ChainID: chainID,
		Height:  cs.CommitInfo().Version,
	}
	return a, nil
}

// ChainID returns the chain id, or an empty string if the chain was not
// initialized yet.
func (a *Application) ChainID() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.chainID
}

// CommitInfo returns the version and hash of the last committed state.
func (a *Application) CommitInfo() vane.CommitID {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.store.CommitInfo()
}

// InitChain stores the chain id and initializes all extensions from the
// JSON encoded application state. It can be called only once in the
// lifetime of a chain.
func (a *Application) InitChain(chainID string, appState []byte) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.chainID != "" {
		return errors.Wrapf(errors.ErrState, "app state previously loaded for chain %s", a.chainID)
	}
	if len(appState) == 0 {
		return errors.Wrap(errors.ErrInput, "app state not set in genesis")
	}
	var opts vane.Options
	if err := json.Unmarshal(appState, &opts); err != nil {
		return errors.Wrapf(errors.ErrInput, "cannot parse app state: %s", err)
	}

	cache := a.store.DeliverStore().CacheWrap()
	if err := saveChainID(cache, chainID); err != nil {
		cache.Discard()
		return err
	}
	if a.init != nil {
		if err := a.init.FromGenesis(opts, cache); err != nil {
			cache.Discard()
			return errors.Wrap(err, "initialize from genesis")
		}
	}
	if err := cache.Write(); err != nil {
		return errors.Wrap(err, "write genesis state")
	}
	a.chainID = chainID
	a.header.ChainID = chainID
	a.logger.Info("chain initialized", "chain_id", chainID)
	return nil
}

// BeginBlock sets the header used by all messages delivered until the next
// call.
func (a *Application) BeginBlock(header abci.Header) {
	a.mu.Lock()
	defer a.mu.Unlock()
	header.ChainID = a.chainID
	a.header = header
}

// Deliver validates and executes a single message. All state changes are
// applied only when the handler succeeds, and only then emitted events are
// returned. A panic of the handler is reported as an error.
func (a *Application) Deliver(msg vane.Msg) (res *TxResult, err error) {
	if msg == nil {
		return nil, errors.Wrap(errors.ErrMsg, "nil message")
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	path := msg.Path()
	start := time.Now()
	var events []vane.Event
	defer func() {
		a.metrics.observe(path, err, events, time.Since(start))
	}()

	if err := msg.Validate(); err != nil {
		return nil, errors.Wrap(err, "validate")
	}
	if a.chainID == "" {
		return nil, errors.Wrap(errors.ErrState, "chain not initialized")
	}
	manager := vane.NewEventManager()
	info, err := vane.NewBlockInfo(a.header, a.chainID, a.logger)
	if err != nil {
		return nil, err
	}
	info = info.
		WithEventManager(manager).
		WithLogInfo("call", "deliver_tx", "path", path)

	cache := a.store.DeliverStore().CacheWrap()
	out, err := a.deliver(info, cache, msg)
	if err != nil {
		cache.Discard()
		info.Logger().Debug("message rejected", "err", err)
		return nil, err
	}
	if err := cache.Write(); err != nil {
		return nil, errors.Wrap(err, "write")
	}
	events = manager.Events()
	return &TxResult{DeliverResult: *out, Events: events}, nil
}

func (a *Application) deliver(info vane.BlockInfo, db vane.KVStore, msg vane.Msg) (res *vane.DeliverResult, err error) {
	defer errors.Recover(&err)
	res, err = a.router.Deliver(info, db, msg)
	if err == nil && res == nil {
		res = &vane.DeliverResult{}
	}
	return res, err
}

// Commit persists all state changes made by delivered messages.
func (a *Application) Commit() (vane.CommitID, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	id, err := a.store.Commit()
	if err != nil {
		return id, errors.Wrap(err, "commit")
	}
	a.logger.Debug("commit synced",
		"height", id.Version,
		"hash", fmt.Sprintf("%X", id.Hash))
	return id, nil
}

// View calls fn with a read only view of the current state, including
// delivered but not yet committed changes.
func (a *Application) View(fn func(db vane.ReadOnlyKVStore) error) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return fn(a.store.DeliverStore())
}
