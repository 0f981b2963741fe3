package store

import "fmt"

type opKind int32

const (
	setKind opKind = iota + 1
	delKind
)

// Op is either set or delete.
type Op struct {
	kind  opKind
	key   []byte
	value []byte // only for set
}

// Apply writes this operation to given store.
func (o Op) Apply(out SetDeleter) error {
	switch o.kind {
	case setKind:
		return out.Set(o.key, o.value)
	case delKind:
		return out.Delete(o.key)
	default:
		panic(fmt.Sprintf("unknown kind: %d", o.kind))
	}
}

// IsSetOp returns true for a set operation.
func (o Op) IsSetOp() bool {
	return o.kind == setKind
}

// Key returns the key this operation writes to.
func (o Op) Key() []byte {
	return o.key
}

// NonAtomicBatch just piles up ops and executes them later on the underlying
// store. Can be used when there is no better option (for in-memory stores).
type NonAtomicBatch struct {
	out SetDeleter
	ops []Op
}

var _ Batch = (*NonAtomicBatch)(nil)

// NewNonAtomicBatch creates an empty batch to be later written to the
// KVStore.
func NewNonAtomicBatch(out SetDeleter) *NonAtomicBatch {
	return &NonAtomicBatch{out: out}
}

// Set adds a set operation to the batch.
func (b *NonAtomicBatch) Set(key, value []byte) error {
	b.ops = append(b.ops, Op{kind: setKind, key: key, value: value})
	return nil
}

// Delete adds a delete operation to the batch.
func (b *NonAtomicBatch) Delete(key []byte) error {
	b.ops = append(b.ops, Op{kind: delKind, key: key})
	return nil
}

// Write writes all the ops to the underlying store and resets.
func (b *NonAtomicBatch) Write() error {
	for _, op := range b.ops {
		if err := op.Apply(b.out); err != nil {
			return err
		}
	}
	b.ops = nil
	return nil
}

// Ops returns all operations in the order they were added.
func (b *NonAtomicBatch) Ops() []Op {
	return b.ops
}

// Reset drops all piled up operations.
func (b *NonAtomicBatch) Reset() {
	b.ops = nil
}

type resetter interface {
	Reset()
}
