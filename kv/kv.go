package kv

// Scope selects one of the store's two storage tiers. Instance holds small,
// frequently read contract configuration; Archival holds the growing
// per-option, per-voter, and per-vote data.
type Scope uint8

const (
	Instance Scope = iota
	Archival
)

func (s Scope) String() string {
	switch s {
	case Instance:
		return "instance"
	case Archival:
		return "archival"
	default:
		return "unknown"
	}
}

// Key addresses one value in the store.
type Key struct {
	Scope Scope
	Name  string
}

// Entry is one staged write.
type Entry struct {
	Key   Key
	Value []byte
}

// Store is the persistent key-value store backing the contract. Apply must
// commit the whole batch or none of it; a contract operation stages every
// write in a Batch and applies it exactly once, so a failed operation never
// leaves partial state behind.
type Store interface {
	// Get returns the stored value for key, or ok=false if absent.
	Get(key Key) (value []byte, ok bool, err error)

	// Apply atomically commits all writes in the batch.
	Apply(batch *Batch) error

	// Close releases any underlying resources.
	Close() error
}

// Batch accumulates writes for a single contract operation. Writes are kept
// in insertion order; setting a key twice keeps the order of the first set
// and the value of the last. Reads through Get let an operation observe its
// own staged writes before commit.
type Batch struct {
	entries []Entry
	index   map[Key]int
}

func NewBatch() *Batch {
	return &Batch{index: make(map[Key]int)}
}

// Set stages a write of value to key.
func (b *Batch) Set(key Key, value []byte) {
	if i, ok := b.index[key]; ok {
		b.entries[i].Value = value
		return
	}
	b.index[key] = len(b.entries)
	b.entries = append(b.entries, Entry{Key: key, Value: value})
}

// Get returns the staged value for key, if one exists.
func (b *Batch) Get(key Key) (value []byte, ok bool) {
	i, ok := b.index[key]
	if !ok {
		return nil, false
	}
	return b.entries[i].Value, true
}

// Len reports the number of staged writes.
func (b *Batch) Len() int {
	return len(b.entries)
}

// Entries returns the staged writes in insertion order.
func (b *Batch) Entries() []Entry {
	return b.entries
}
