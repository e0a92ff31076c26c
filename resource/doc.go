// Package resource provides handle tables for library objects.
//
// A table maps non-zero handles to Go values and remembers the kind each
// handle was created with, so a handle of one kind cannot be used where
// another is expected.
//
//	table := resource.NewTable()
//
//	// Insert a value, get a handle
//	h := table.Insert(abi.KindRecord, rec)
//
//	// Kind-checked retrieval
//	rec, ok := resource.Lookup[*record](table, h, abi.KindRecord) // ok
//	_, ok = table.GetTyped(h, abi.KindData)                       // !ok
//
//	// Remove and release
//	table.Remove(h)
//
// # Pinning
//
// An object owned by another object (a record inside a data store) is
// pinned by its owner. Remove refuses pinned handles, so a caller cannot
// destroy an object it only borrowed. The owner unpins before removing.
//
// # Observers
//
// Register observers to track lifecycle events:
//
//	type counter struct{ live int }
//
//	func (c *counter) OnResourceEvent(e resource.Event) {
//		switch e.Type {
//		case resource.EventCreated:
//			c.live++
//		case resource.EventDropped:
//			c.live--
//		}
//	}
//
//	table.Subscribe(&counter{})
//
// # Memory Management
//
// Resources are not automatically garbage collected. Every created handle
// must be removed explicitly or it leaks until the table is closed. Values
// implementing Dropper are notified when removed or when the table closes.
package resource
