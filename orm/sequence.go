package orm

import (
	"encoding/binary"

	"github.com/iov-one/vane"
	"github.com/iov-one/vane/errors"
)

// Sequence maintains a counter. Each value returned by NextInt is greater
// than the last, and so is its EncodeSequence form under bytes.Compare.
type Sequence struct {
	id []byte
}

// NewSequence returns a sequence counter. Sequence is using following pattern
// to construct a key:
//    _s.<bucket>:<name>
func NewSequence(bucket, name string) Sequence {
	id := "_s." + bucket + ":" + name
	return Sequence{
		id: []byte(id),
	}
}

// NextInt increments the sequence and returns its state as int.
func (s *Sequence) NextInt(db vane.KVStore) (int64, error) {
	return s.increment(db, 1)
}

// Latest returns the recently returned value of the sequence. This method does
// not modify the sequence state.
func (s *Sequence) Latest(db vane.ReadOnlyKVStore) (int64, error) {
	raw, err := db.Get(s.id)
	if err != nil {
		return 0, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return DecodeSequence(raw)
}

func (s *Sequence) increment(db vane.KVStore, inc int64) (int64, error) {
	val, err := s.Latest(db)
	if err != nil {
		return 0, err
	}
	val += inc
	if err := db.Set(s.id, EncodeSequence(val)); err != nil {
		return 0, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return val, nil
}

// DecodeSequence reads a big endian encoded sequence value. Missing value is
// zero.
func DecodeSequence(bz []byte) (int64, error) {
	if bz == nil {
		return 0, nil
	}
	if len(bz) != 8 {
		return 0, errors.Wrapf(errors.ErrState, "sequence must be 8 bytes, got %d", len(bz))
	}
	return int64(binary.BigEndian.Uint64(bz)), nil
}

// EncodeSequence returns the big endian representation of a sequence value.
func EncodeSequence(val int64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, uint64(val))
	return bz
}
