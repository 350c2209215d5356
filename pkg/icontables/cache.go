package icontables

import (
	"sync"

	"github.com/arthur-debert/fileicons/pkg/icons"
)

// Slot identifies one cache sub-map: a dimension paired with a table kind
type Slot int

const (
	SlotDirectoryName Slot = iota
	SlotDirectoryPath
	SlotFileName
	SlotFilePath
	SlotInterpreter
	SlotLanguage
	SlotScope
	SlotSignature

	slotCount
)

var slotNames = [slotCount]string{
	SlotDirectoryName: "directory_name",
	SlotDirectoryPath: "directory_path",
	SlotFileName:      "file_name",
	SlotFilePath:      "file_path",
	SlotInterpreter:   "interpreter",
	SlotLanguage:      "language",
	SlotScope:         "scope",
	SlotSignature:     "signature",
}

// String returns the slot's snake_case name, used as a metric label
func (s Slot) String() string {
	if s < 0 || s >= slotCount {
		return "unknown"
	}
	return slotNames[s]
}

// Slots lists every cache slot
func Slots() []Slot {
	slots := make([]Slot, 0, slotCount)
	for s := Slot(0); s < slotCount; s++ {
		slots = append(slots, s)
	}
	return slots
}

// Cache memoizes lookup winners per slot. Entries are never evicted.
type Cache struct {
	mu    sync.RWMutex
	slots [slotCount]map[string]*icons.Icon
}

// NewCache returns an empty cache
func NewCache() *Cache {
	c := &Cache{}
	c.Reset()
	return c
}

// Get returns the memoized icon for key in slot
func (c *Cache) Get(slot Slot, key string) (*icons.Icon, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	icon, ok := c.slots[slot][key]
	return icon, ok
}

// Put memoizes icon for key in slot. A nil icon is ignored: misses are
// never cached.
func (c *Cache) Put(slot Slot, key string, icon *icons.Icon) {
	if icon == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.slots[slot][key] = icon
}

// Len returns the number of entries in slot
func (c *Cache) Len(slot Slot) int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.slots[slot])
}

// Stats returns the entry count of every slot, keyed by slot name
func (c *Cache) Stats() map[string]int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	stats := make(map[string]int, slotCount)
	for s, entries := range c.slots {
		stats[Slot(s).String()] = len(entries)
	}
	return stats
}

// Reset drops every entry in every slot
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for s := range c.slots {
		c.slots[s] = make(map[string]*icons.Icon)
	}
}
