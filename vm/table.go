package vm

// maxLoad is the load-factor cap; exceeding it on insert triggers a
// rehash into a table of doubled capacity (teacher repo's Chunk growth
// strategy is the same double-starting-small pattern, applied here to
// the table instead of a byte buffer).
const maxLoad = 0.75

type entry struct {
	key   *ObjString
	value Value
}

// Table is an open-addressed, linear-probing hash map keyed by interned
// string identity. It backs both the VM's globals and the GC's string
// intern set.
type Table struct {
	count   int // live entries plus tombstones; only a rehash drops tombstones from it
	entries []entry
}

func NewTable() *Table {
	return &Table{}
}

// findEntry returns the slot a key occupies (or would occupy): the
// first empty slot or a matching key, preferring the earliest tombstone
// seen along the probe chain for insertion.
func findEntry(entries []entry, key *ObjString) *entry {
	capacity := uint32(len(entries))
	index := key.Hash % capacity
	var tombstone *entry
	for {
		e := &entries[index]
		if e.key == nil {
			if e.value.IsNil() {
				// genuinely empty
				if tombstone != nil {
					return tombstone
				}
				return e
			}
			// tombstone (key=nil, value=true)
			if tombstone == nil {
				tombstone = e
			}
		} else if e.key == key {
			return e
		}
		index = (index + 1) % capacity
	}
}

func (t *Table) adjustCapacity(capacity int) {
	entries := make([]entry, capacity)
	for i := range entries {
		entries[i] = entry{key: nil, value: Nil}
	}
	t.count = 0
	for _, old := range t.entries {
		if old.key == nil {
			continue
		}
		dest := findEntry(entries, old.key)
		dest.key = old.key
		dest.value = old.value
		t.count++
	}
	t.entries = entries
}

// Get returns the value for key and whether it was present.
func (t *Table) Get(key *ObjString) (Value, bool) {
	if len(t.entries) == 0 {
		return Nil, false
	}
	e := findEntry(t.entries, key)
	if e.key == nil {
		return Nil, false
	}
	return e.value, true
}

// Set stores value under key, returning true if key was not already
// present (a "new key" result, which SET_GLOBAL's runtime check relies
// on to reject assignment to an undeclared global).
func (t *Table) Set(key *ObjString, value Value) bool {
	if float64(t.count+1) > float64(len(t.entries))*maxLoad {
		capacity := 8
		if len(t.entries) > 0 {
			capacity = len(t.entries) * 2
		}
		t.adjustCapacity(capacity)
	}
	e := findEntry(t.entries, key)
	isNewKey := e.key == nil
	if isNewKey && e.value.IsNil() {
		t.count++
	}
	e.key = key
	e.value = value
	return isNewKey
}

// Delete leaves a tombstone (key=nil, value=true) so later probe chains
// through this slot are not broken.
func (t *Table) Delete(key *ObjString) bool {
	if len(t.entries) == 0 {
		return false
	}
	e := findEntry(t.entries, key)
	if e.key == nil {
		return false
	}
	e.key = nil
	e.value = BoolVal(true)
	return true
}

// FindString walks the probe chain doing content equality (length, hash,
// byte compare) rather than pointer identity. It is used only during
// string interning, before a canonical *ObjString for this content is
// known to exist.
func (t *Table) FindString(chars string, hash uint32) *ObjString {
	if len(t.entries) == 0 {
		return nil
	}
	capacity := uint32(len(t.entries))
	index := hash % capacity
	for {
		e := &t.entries[index]
		if e.key == nil {
			if e.value.IsNil() {
				return nil
			}
		} else if e.key.Hash == hash && len(e.key.Chars) == len(chars) && e.key.Chars == chars {
			return e.key
		}
		index = (index + 1) % capacity
	}
}

// removeWhite deletes every key from the intern table whose backing
// object was not marked during the last trace — used by the collector
// so the intern set holds only weak references to otherwise-dead
// strings.
func (t *Table) removeWhite() {
	for i := range t.entries {
		e := &t.entries[i]
		if e.key != nil && !e.key.marked {
			e.key = nil
			e.value = BoolVal(true)
		}
	}
}
