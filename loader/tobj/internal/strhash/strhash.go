// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package strhash implements the open-addressed, quadratic-probed
// string-to-id table the material binder uses to resolve a "usemtl"
// name to its position in the material list. It is grounded on
// tinyobj_loader_c.h's hash_table_* family: DJB2 hashing, quadratic
// probing, geometric growth and a rehash-on-grow step. The original's
// "next" pointers chain entries that share a home slot so that a
// lookup does not have to reprobe the whole sequence; here that chain
// is expressed as slice indices (next == -1 for "no successor") since
// Go slices are reallocated wholesale on grow anyway and an index
// survives that the same way the original's rebuilt pointers did.
package strhash

const defaultCapacity = 10

type entry struct {
	hash   uint64
	filled bool
	value  int64
	next   int // index into entries, -1 if none
}

// Table maps strings to int64 values with DJB2 + quadratic probing.
type Table struct {
	entries  []entry
	hashes   []uint64 // insertion order, parallel to insertion count
	n        int
	capacity int
}

// New creates a table with the default starting capacity.
func New() *Table {
	return NewSize(defaultCapacity)
}

// NewSize creates a table with the given starting capacity; a value
// below 1 selects the default capacity.
func NewSize(startCapacity int) *Table {
	if startCapacity < 1 {
		startCapacity = defaultCapacity
	}
	return &Table{
		entries:  make([]entry, startCapacity),
		hashes:   make([]uint64, 0, startCapacity),
		capacity: startCapacity,
	}
}

// djb2 computes the DJB2 hash of name.
func djb2(name string) uint64 {
	var hash uint64 = 5381
	for i := 0; i < len(name); i++ {
		hash = ((hash << 5) + hash) + uint64(name[i])
	}
	return hash
}

// insertValue places hash/value using quadratic probing, chaining onto
// the home slot's list when the slot it lands in isn't the home slot.
// Returns false when no empty slot was found within capacity probes.
func (t *Table) insertValue(hash uint64, value int64) bool {
	startIndex := int(hash % uint64(t.capacity))
	index := startIndex
	for i := 1; t.entries[index].filled; i++ {
		if i >= t.capacity {
			return false
		}
		index = int((hash + uint64(i*i)) % uint64(t.capacity))
	}
	t.entries[index] = entry{hash: hash, filled: true, value: value, next: -1}
	if index != startIndex {
		t.entries[index].next = t.entries[startIndex].next
		t.entries[startIndex].next = index
	}
	return true
}

// insert inserts hash/value and records the hash in insertion order.
func (t *Table) insert(hash uint64, value int64) bool {
	if !t.insertValue(hash, value) {
		return false
	}
	t.hashes = append(t.hashes, hash)
	t.n++
	return true
}

// maybeGrow reallocates and rehashes the table when newN exceeds
// capacity, following the original's 2*max(2*capacity, newN) policy.
func (t *Table) maybeGrow(newN int) {
	if newN <= t.capacity {
		return
	}
	newCapacity := 2 * t.capacity
	if newN > newCapacity {
		newCapacity = newN
	}
	newCapacity *= 2

	oldHashes := t.hashes
	oldEntries := t.entries

	t.entries = make([]entry, newCapacity)
	t.capacity = newCapacity

	for _, h := range oldHashes {
		e := findInEntries(oldEntries, h)
		t.insertValue(h, e.value)
	}
}

// findInEntries walks the probe chain anchored at hash's home slot in
// the given entries array.
func findInEntries(entries []entry, hash uint64) entry {
	idx := int(hash % uint64(len(entries)))
	for idx != -1 {
		e := entries[idx]
		if !e.filled {
			break
		}
		if e.hash == hash {
			return e
		}
		idx = e.next
	}
	return entry{}
}

// find returns the entry for hash and whether it was present.
func (t *Table) find(hash uint64) (entry, bool) {
	idx := int(hash % uint64(t.capacity))
	for idx != -1 {
		e := t.entries[idx]
		if !e.filled {
			break
		}
		if e.hash == hash {
			return e, true
		}
		idx = e.next
	}
	return entry{}, false
}

// Get returns the value stored for name, or (0, false) if absent.
func (t *Table) Get(name string) (int64, bool) {
	e, ok := t.find(djb2(name))
	if !ok {
		return 0, false
	}
	return e.value, true
}

// Exists reports whether name has a binding in the table.
func (t *Table) Exists(name string) bool {
	_, ok := t.find(djb2(name))
	return ok
}

// Set stores value under name, overwriting any existing binding and
// growing the table as needed.
func (t *Table) Set(name string, value int64) {
	hash := djb2(name)
	if e, ok := t.find(hash); ok {
		idx := int(hash % uint64(t.capacity))
		for idx != -1 {
			if t.entries[idx].filled && t.entries[idx].hash == hash {
				t.entries[idx].value = value
				return
			}
			idx = t.entries[idx].next
		}
		_ = e
		return
	}
	for {
		t.maybeGrow(t.n + 1)
		if t.insert(hash, value) {
			return
		}
		// No free slot on the probe sequence: grow even though n+1
		// still fits within capacity.
		t.maybeGrow(t.capacity + 1)
	}
}

// Len returns the number of entries stored.
func (t *Table) Len() int {
	return t.n
}
