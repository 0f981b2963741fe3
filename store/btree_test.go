package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBTreeCacheGetSet does basic sanity checks on our cache.
func TestBTreeCacheGetSet(t *testing.T) {
	base := MemStore()

	k, v := []byte("french"), []byte("fry")
	got, err := base.Get(k)
	require.NoError(t, err)
	assert.Nil(t, got)
	require.NoError(t, base.Set(k, v))
	got, err = base.Get(k)
	require.NoError(t, err)
	assert.Equal(t, v, got)

	// writing more data is only visible in the cache
	cache := base.CacheWrap()
	k2, v2 := []byte("LA"), []byte("Dodgers")
	require.NoError(t, cache.Set(k2, v2))
	assertValue(t, cache, k2, v2)
	assertValue(t, base, k2, nil)

	require.NoError(t, cache.Write())
	assertValue(t, base, k, v)
	assertValue(t, base, k2, v2)

	// we can discard one
	k3, v3 := []byte("Bayern"), []byte("Munich")
	c2 := base.CacheWrap()
	require.NoError(t, c2.Set(k3, v3))
	c2.Discard()
	assertValue(t, base, k3, nil)

	// and commit another with a delete
	c3 := base.CacheWrap()
	require.NoError(t, c3.Delete(k))
	assertValue(t, c3, k, nil)
	assertValue(t, base, k, v)
	require.NoError(t, c3.Write())
	assertValue(t, base, k, nil)
	assertValue(t, base, k2, v2)
}

func TestBTreeCacheConflicts(t *testing.T) {
	cases := map[string]struct {
		parent map[string]string
		child  func(KVStore) error
		want   map[string]string
	}{
		"overwrite one, delete another, add a third": {
			parent: map[string]string{"a": "1", "b": "2"},
			child: func(kv KVStore) error {
				if err := kv.Set([]byte("a"), []byte("11")); err != nil {
					return err
				}
				if err := kv.Delete([]byte("b")); err != nil {
					return err
				}
				return kv.Set([]byte("c"), []byte("3"))
			},
			want: map[string]string{"a": "11", "c": "3"},
		},
		"delete then set again": {
			parent: map[string]string{"a": "1"},
			child: func(kv KVStore) error {
				if err := kv.Delete([]byte("a")); err != nil {
					return err
				}
				return kv.Set([]byte("a"), []byte("2"))
			},
			want: map[string]string{"a": "2"},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			parent := MemStore()
			for k, v := range tc.parent {
				require.NoError(t, parent.Set([]byte(k), []byte(v)))
			}
			child := parent.CacheWrap()
			require.NoError(t, tc.child(child))

			// parent is not affected until written
			for k, v := range tc.parent {
				assertValue(t, parent, []byte(k), []byte(v))
			}
			require.NoError(t, child.Write())

			for _, k := range []string{"a", "b", "c"} {
				want, ok := tc.want[k]
				if !ok {
					assertValue(t, parent, []byte(k), nil)
					continue
				}
				assertValue(t, parent, []byte(k), []byte(want))
			}
		})
	}
}

func TestNonAtomicBatchKeepsOrder(t *testing.T) {
	out := NewMapStore()
	b := NewNonAtomicBatch(out)
	require.NoError(t, b.Set([]byte("k"), []byte("1")))
	require.NoError(t, b.Delete([]byte("k")))
	require.NoError(t, b.Set([]byte("k"), []byte("2")))

	ops := b.Ops()
	require.Len(t, ops, 3)
	assert.True(t, ops[0].IsSetOp())
	assert.False(t, ops[1].IsSetOp())
	assert.Equal(t, 0, out.Len())

	require.NoError(t, b.Write())
	assert.Empty(t, b.Ops())
	assertValue(t, out, []byte("k"), []byte("2"))
}

func assertValue(t testing.TB, kv ReadOnlyKVStore, key, want []byte) {
	t.Helper()
	got, err := kv.Get(key)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	has, err := kv.Has(key)
	require.NoError(t, err)
	assert.Equal(t, want != nil, has)
}
