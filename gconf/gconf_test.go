package gconf

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/vane"
	"github.com/iov-one/vane/errors"
	"github.com/iov-one/vane/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type myConfig struct {
	Schema uint32
	Number int64
	Text   string
}

func (c *myConfig) Marshal() ([]byte, error) { return vane.MarshalBinary(c) }
func (c *myConfig) Unmarshal(raw []byte) error { return vane.UnmarshalBinary(raw, c) }

func (c *myConfig) Validate() error {
	if c.Text == "" {
		return errors.Field("Text", errors.ErrEmpty, "required")
	}
	return nil
}

func TestSaveLoad(t *testing.T) {
	cases := map[string]struct {
		Conf        *myConfig
		WantSaveErr *errors.Error
	}{
		"valid": {
			Conf: &myConfig{Schema: 1, Number: 852151421, Text: "foo"},
		},
		"invalid configuration cannot be saved": {
			Conf:        &myConfig{Schema: 1, Number: 4},
			WantSaveErr: errors.ErrEmpty,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			if err := Save(db, "mypkg", tc.Conf); !tc.WantSaveErr.Is(err) {
				t.Fatalf("unexpected save error: %s", err)
			}
			if tc.WantSaveErr != nil {
				var got myConfig
				if err := Load(db, "mypkg", &got); !errors.ErrNotFound.Is(err) {
					t.Fatalf("unexpected load error: %v", err)
				}
				return
			}
			var got myConfig
			require.NoError(t, Load(db, "mypkg", &got))
			assert.Equal(t, tc.Conf, &got)
		})
	}
}

func TestInitConfig(t *testing.T) {
	cases := map[string]struct {
		Genesis string
		WantErr *errors.Error
		Want    *myConfig
	}{
		"configured": {
			Genesis: `{"conf": {"mypkg": {"Number": 7, "Text": "hello"}}}`,
			Want:    &myConfig{Number: 7, Text: "hello"},
		},
		"missing package": {
			Genesis: `{"conf": {"other": {}}}`,
			WantErr: errors.ErrNotFound,
		},
		"invalid content": {
			Genesis: `{"conf": {"mypkg": {"Number": 7}}}`,
			WantErr: errors.ErrEmpty,
		},
		"malformed json": {
			Genesis: `{"conf": {"mypkg": {"Number": "seven"}}}`,
			WantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var opts vane.Options
			require.NoError(t, json.Unmarshal([]byte(tc.Genesis), &opts))
			db := store.MemStore()
			var conf myConfig
			err := InitConfig(db, opts, "mypkg", &conf)
			if !tc.WantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if tc.WantErr != nil {
				return
			}
			var got myConfig
			require.NoError(t, Load(db, "mypkg", &got))
			assert.Equal(t, tc.Want, &got)
		})
	}
}
