package symtab

import "sort"

// buildOrdered derives the name-ordered view of a base table snapshot.  The
// sort is stable and, when enabled, addresses are reassigned densely in name
// order.
func buildOrdered(entries []*Entry, opts Options) *Table {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})

	if opts.RenumberOrdered {
		addr := opts.BaseAddress
		for _, entry := range entries {
			entry.Address = addr
			addr += opts.AddressStep
		}
	}

	ordered := newTable()
	for _, entry := range entries {
		ordered.insert(entry)
	}

	return ordered
}
