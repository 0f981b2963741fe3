package main

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/iov-one/vane"
	"github.com/iov-one/vane/app"
	"github.com/iov-one/vane/errors"
	"github.com/iov-one/vane/store/iavl"
	"github.com/iov-one/vane/x/cash"
	"github.com/iov-one/vane/x/multipay"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

const appName = "vane"

// blockTime returns the time of a newly created block.
var blockTime = func() time.Time {
	return time.Now().UTC()
}

// newLogger returns a logger writing to stderr only messages of given level
// or above.
func newLogger(level string) (log.Logger, error) {
	opt, err := log.AllowLevel(level)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return log.NewFilter(log.NewTMLogger(log.NewSyncWriter(os.Stderr)), opt), nil
}

// openApp loads the application state stored in the home directory. The
// returned function must be called to release the database.
func openApp(home, logLevel string) (*app.Application, func(), error) {
	if home == "" {
		return nil, nil, errors.Wrap(errors.ErrInput, "home directory is required")
	}
	logger, err := newLogger(logLevel)
	if err != nil {
		return nil, nil, err
	}
	db, err := iavl.NewCommitStore(home, appName)
	if err != nil {
		return nil, nil, err
	}
	r := app.NewRouter()
	multipay.RegisterRoutes(r, cash.NewController())
	init := vane.ChainInitializers(
		cash.Initializer{},
		multipay.Initializer{},
	)
	a, err := app.NewApplication(appName, db, r, init, logger, nil)
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	return a, db.Close, nil
}

// deliverInBlock executes given message in a new block and commits the
// result.
func deliverInBlock(a *app.Application, msg vane.Msg) (*app.TxResult, error) {
	a.BeginBlock(abci.Header{
		Height: a.CommitInfo().Version + 1,
		Time:   blockTime(),
	})
	res, err := a.Deliver(msg)
	if err != nil {
		return nil, err
	}
	if _, err := a.Commit(); err != nil {
		return nil, err
	}
	return res, nil
}

type eventView struct {
	Type       string            `json:"type"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

func eventViews(events []vane.Event) []eventView {
	views := make([]eventView, 0, len(events))
	for _, e := range events {
		v := eventView{Type: e.Type}
		if len(e.Attributes) > 0 {
			v.Attributes = make(map[string]string, len(e.Attributes))
			for _, a := range e.Attributes {
				v.Attributes[string(a.Key)] = string(a.Value)
			}
		}
		views = append(views, v)
	}
	return views
}

func writeJSON(w io.Writer, v interface{}) error {
	raw, err := json.MarshalIndent(v, "", "\t")
	if err != nil {
		return errors.Wrapf(errors.ErrInput, "cannot serialize: %s", err)
	}
	raw = append(raw, '\n')
	_, err = w.Write(raw)
	return err
}
