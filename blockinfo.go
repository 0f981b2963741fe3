package vane

import (
	"regexp"
	"time"

	"github.com/iov-one/vane/errors"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

var (
	// DefaultLogger is used for all block info that have not set anything
	// themselves.
	DefaultLogger = log.NewNopLogger()

	// IsValidChainID is the RegExp to ensure valid chain IDs.
	IsValidChainID = regexp.MustCompile(`^[a-zA-Z0-9_\-]{6,20}$`).MatchString
)

// BlockInfo describes where a transaction is being executed: the block header
// (height and time), the chain and the logger. It also carries the event
// manager that collects notifications emitted by the transaction.
type BlockInfo struct {
	header  abci.Header
	chainID string
	logger  log.Logger
	events  *EventManager
}

// NewBlockInfo creates a BlockInfo struct with current context of where it
// is being executed.
func NewBlockInfo(header abci.Header, chainID string, logger log.Logger) (BlockInfo, error) {
	if !IsValidChainID(chainID) {
		return BlockInfo{}, errors.Wrap(errors.ErrInput, "chainID invalid")
	}
	if logger == nil {
		logger = DefaultLogger
	}
	return BlockInfo{
		header:  header,
		chainID: chainID,
		logger:  logger,
	}, nil
}

func (b BlockInfo) Header() abci.Header {
	return b.header
}

func (b BlockInfo) ChainID() string {
	return b.chainID
}

func (b BlockInfo) Height() int64 {
	return b.header.Height
}

func (b BlockInfo) BlockTime() time.Time {
	return b.header.Time
}

func (b BlockInfo) UnixTime() UnixTime {
	return AsUnixTime(b.header.Time)
}

func (b BlockInfo) Logger() log.Logger {
	if b.logger == nil {
		return DefaultLogger
	}
	return b.logger
}

// WithLogInfo accepts keyvalue pairs, and returns another block info like
// this, after passing all the keyvals to the Logger.
func (b BlockInfo) WithLogInfo(keyvals ...interface{}) BlockInfo {
	b.logger = b.Logger().With(keyvals...)
	return b
}

// WithEventManager returns a copy of this block info that emits events into
// given manager.
func (b BlockInfo) WithEventManager(m *EventManager) BlockInfo {
	b.events = m
	return b
}

// EmitEvent records an event for the currently executed transaction. Events
// are dropped when no manager is attached.
func (b BlockInfo) EmitEvent(e Event) {
	if b.events != nil {
		b.events.Emit(e)
	}
}
