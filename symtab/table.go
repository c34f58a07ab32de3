package symtab

import (
	"github.com/elliotchance/orderedmap/v2"
	"github.com/jinzhu/copier"
	"github.com/pkg/errors"
)

// Table maps identifier names to their entries and remembers the order in
// which names were inserted.
type Table struct {
	entries *orderedmap.OrderedMap[string, *Entry]
}

// newTable creates an empty table.
func newTable() *Table {
	return &Table{entries: orderedmap.NewOrderedMap[string, *Entry]()}
}

// insert adds an entry at the end of the table.
func (t *Table) insert(entry *Entry) {
	t.entries.Set(entry.Name, entry)
}

// Lookup returns the entry for a name.
func (t *Table) Lookup(name string) (*Entry, bool) {
	return t.entries.Get(name)
}

// Len returns the number of distinct names in the table.
func (t *Table) Len() int {
	return t.entries.Len()
}

// Names returns the names in table order.
func (t *Table) Names() []string {
	return t.entries.Keys()
}

// Entries returns the entries in table order.
func (t *Table) Entries() []*Entry {
	entries := make([]*Entry, 0, t.entries.Len())
	for el := t.entries.Front(); el != nil; el = el.Next() {
		entries = append(entries, el.Value)
	}

	return entries
}

// snapshot returns deep copies of the entries in table order.  Views are
// derived from snapshots so that building them never touches the table.
func (t *Table) snapshot() ([]*Entry, error) {
	entries := t.Entries()
	copies := make([]*Entry, len(entries))

	for i, entry := range entries {
		copies[i] = &Entry{}
		if err := copier.CopyWithOption(copies[i], entry, copier.Option{DeepCopy: true}); err != nil {
			return nil, errors.Wrapf(err, "failed to copy entry `%s`", entry.Name)
		}
	}

	return copies, nil
}
