package app

import (
	"encoding/json"
	"io/ioutil"

	"github.com/iov-one/vane"
	"github.com/iov-one/vane/errors"
)

// Genesis file format, designed to be overlayed with tendermint genesis.
type Genesis struct {
	ChainID  string       `json:"chain_id"`
	AppState vane.Options `json:"app_state"`
}

// LoadGenesis tries to load a given file into a Genesis struct.
func LoadGenesis(filePath string) (*Genesis, error) {
	raw, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "read genesis file: %s", err)
	}
	var gen Genesis
	if err := json.Unmarshal(raw, &gen); err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "parse genesis file: %s", err)
	}
	return &gen, nil
}

// AppStateBytes returns the JSON encoded application state, as given to
// InitChain.
func (g *Genesis) AppStateBytes() ([]byte, error) {
	raw, err := json.Marshal(g.AppState)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "encode app state: %s", err)
	}
	return raw, nil
}
