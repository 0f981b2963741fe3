package multipay

import (
	"github.com/iov-one/vane"
	"github.com/iov-one/vane/errors"
	"github.com/iov-one/vane/orm"
)

// LedgerBucketName is where executed calls are stored.
const LedgerBucketName = "mptx"

// TxnLedger is the AccountMultiTxns map: an append only sequence of
// CallExecuted records per payer. Each record is stored under its own key
// (payer followed by the big endian sequence number), so appending never
// rewrites earlier records.
type TxnLedger struct {
	bucket orm.ModelBucket
}

func NewTxnLedger() TxnLedger {
	return TxnLedger{bucket: orm.NewModelBucket(LedgerBucketName)}
}

func (l TxnLedger) seq(payer vane.Address) orm.Sequence {
	return orm.NewSequence(LedgerBucketName, string(payer))
}

func recordKey(payer vane.Address, seq int64) []byte {
	return append(append([]byte{}, payer...), orm.EncodeSequence(seq)...)
}

// Append adds the record at the end of the payer sequence and returns its
// sequence number. Numbering starts at 1.
func (l TxnLedger) Append(db vane.KVStore, c *CallExecuted) (int64, error) {
	if err := c.Validate(); err != nil {
		return 0, errors.Wrap(err, "invalid record")
	}
	s := l.seq(c.Payer)
	n, err := s.NextInt(db)
	if err != nil {
		return 0, errors.Wrap(err, "next sequence")
	}
	if err := l.bucket.Put(db, recordKey(c.Payer, n), c); err != nil {
		return 0, errors.Wrap(err, "cannot store record")
	}
	return n, nil
}

// Count returns the number of records of given payer.
func (l TxnLedger) Count(db vane.ReadOnlyKVStore, payer vane.Address) (int64, error) {
	s := l.seq(payer)
	return s.Latest(db)
}

// Get returns a single record. ErrNotFound is returned for an unknown
// sequence number.
func (l TxnLedger) Get(db vane.ReadOnlyKVStore, payer vane.Address, seq int64) (*CallExecuted, error) {
	var c CallExecuted
	if err := l.bucket.One(db, recordKey(payer, seq), &c); err != nil {
		return nil, errors.Wrapf(err, "record %d of %s", seq, payer)
	}
	return &c, nil
}

// All returns every record of given payer in the order they were appended.
func (l TxnLedger) All(db vane.ReadOnlyKVStore, payer vane.Address) ([]*CallExecuted, error) {
	n, err := l.Count(db, payer)
	if err != nil {
		return nil, err
	}
	res := make([]*CallExecuted, 0, n)
	for i := int64(1); i <= n; i++ {
		c, err := l.Get(db, payer, i)
		if err != nil {
			return nil, err
		}
		res = append(res, c)
	}
	return res, nil
}
