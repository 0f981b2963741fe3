package app

import (
	"fmt"

	"github.com/iov-one/vane"
	"github.com/iov-one/vane/errors"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/common"
)

// ABCI exposes an Application as a tendermint ABCI application. Transactions
// are amino encoded messages.
//
// Errors on ABCI steps that do not take user input (InitChain, Commit)
// cannot be handled gracefully and cause a panic.
type ABCI struct {
	abci.BaseApplication
	app   *Application
	debug bool
}

var _ abci.Application = (*ABCI)(nil)

// NewABCI returns an ABCI adapter of given application. When debug is set,
// full error details are returned to the clients.
func NewABCI(app *Application, debug bool) *ABCI {
	return &ABCI{app: app, debug: debug}
}

// Info returns the height and hash of the last committed state.
func (a *ABCI) Info(req abci.RequestInfo) abci.ResponseInfo {
	id := a.app.CommitInfo()
	return abci.ResponseInfo{
		Data:             a.app.name,
		LastBlockHeight:  id.Version,
		LastBlockAppHash: id.Hash,
	}
}

func (a *ABCI) InitChain(req abci.RequestInitChain) abci.ResponseInitChain {
	if err := a.app.InitChain(req.ChainId, req.AppStateBytes); err != nil {
		panic(err)
	}
	return abci.ResponseInitChain{}
}

func (a *ABCI) BeginBlock(req abci.RequestBeginBlock) abci.ResponseBeginBlock {
	a.app.BeginBlock(req.Header)
	return abci.ResponseBeginBlock{}
}

// CheckTx performs only the stateless validation of the message.
func (a *ABCI) CheckTx(tx []byte) abci.ResponseCheckTx {
	msg, err := DecodeMsg(tx)
	if err == nil {
		err = msg.Validate()
	}
	if err != nil {
		code, log := errors.ABCIInfo(err, a.debug)
		return abci.ResponseCheckTx{Code: code, Log: log}
	}
	return abci.ResponseCheckTx{}
}

func (a *ABCI) DeliverTx(tx []byte) abci.ResponseDeliverTx {
	msg, err := DecodeMsg(tx)
	if err != nil {
		code, log := errors.ABCIInfo(err, a.debug)
		return abci.ResponseDeliverTx{Code: code, Log: log}
	}
	res, err := a.app.Deliver(msg)
	if err != nil {
		code, log := errors.ABCIInfo(err, a.debug)
		return abci.ResponseDeliverTx{Code: code, Log: log}
	}
	return abci.ResponseDeliverTx{
		Data: res.Data,
		Log:  res.Log,
		Tags: EventTags(res.Events),
	}
}

func (a *ABCI) Commit() abci.ResponseCommit {
	id, err := a.app.Commit()
	if err != nil {
		panic(err)
	}
	return abci.ResponseCommit{Data: id.Hash}
}

// DecodeMsg loads a message from its amino binary representation.
func DecodeMsg(tx []byte) (msg vane.Msg, err error) {
	defer errors.Recover(&err)
	if err := vane.UnmarshalBinary(tx, &msg); err != nil {
		return nil, errors.Wrap(errors.ErrMsg, err.Error())
	}
	if msg == nil {
		return nil, errors.Wrap(errors.ErrMsg, "empty transaction")
	}
	return msg, nil
}

// EncodeMsg returns the amino binary representation of given message.
func EncodeMsg(msg vane.Msg) ([]byte, error) {
	return vane.MarshalBinary(msg)
}

// EventTags flattens events into tags. Each attribute becomes a tag keyed by
// the event type and the attribute name joined with a dot.
func EventTags(events []vane.Event) common.KVPairs {
	var tags common.KVPairs
	for _, e := range events {
		for _, attr := range e.Attributes {
			tags = append(tags, common.KVPair{
				Key:   []byte(fmt.Sprintf("%s.%s", e.Type, attr.Key)),
				Value: attr.Value,
			})
		}
	}
	return tags
}
