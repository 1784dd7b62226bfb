// Package store owns the in-memory entity collections. Each store serializes
// its mutations behind a mutex and hands out snapshot copies, so all derived
// views (filtering, sorting, analytics) operate on read-only data.
package store

// Op identifies the kind of mutation a store performed.
type Op string

const (
	OpAdd    Op = "add"
	OpUpdate Op = "update"
	OpRemove Op = "remove"
	OpImport Op = "import"
)

// Change is the typed notification delivered to store observers after a
// successful mutation. Views subscribe explicitly to the stores they render;
// there is no ambient event bus.
type Change struct {
	Op Op
	ID string
}

type observers struct {
	fns []func(Change)
}

func (o *observers) subscribe(fn func(Change)) {
	o.fns = append(o.fns, fn)
}

// notify runs synchronously; callers hold no store lock at this point.
func (o *observers) notify(c Change) {
	for _, fn := range o.fns {
		fn(c)
	}
}
