package vane

import (
	"encoding/json"

	"github.com/iov-one/vane/errors"
)

// Options are the genesis options. Each extension can look up its key and
// parse the json as desired.
type Options map[string]json.RawMessage

// ReadOptions reads the values stored under a given key, and parses the json
// into the given obj. Returns an error if it cannot parse. Noop and no error
// if key is missing.
func (o Options) ReadOptions(key string, obj interface{}) error {
	msg := o[key]
	if len(msg) == 0 {
		return nil
	}
	if err := json.Unmarshal(msg, obj); err != nil {
		return errors.Wrapf(errors.ErrInput, "cannot parse %q options: %s", key, err)
	}
	return nil
}

// Initializer implementations are used to initialize extensions from genesis
// file contents.
type Initializer interface {
	FromGenesis(Options, KVStore) error
}

// ChainInitializers lets you initialize many extensions with one function.
func ChainInitializers(inits ...Initializer) Initializer {
	return chainInitializer(inits)
}

type chainInitializer []Initializer

func (c chainInitializer) FromGenesis(opts Options, kv KVStore) error {
	for _, i := range c {
		if err := i.FromGenesis(opts, kv); err != nil {
			return err
		}
	}
	return nil
}
