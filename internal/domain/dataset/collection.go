package dataset

import "gestao_atendimentos/internal/domain/entities"

// Collection is an ordered, keyed, copy-on-write view over one of the
// dataset's slices. Append and ReplaceAt never touch the receiver.
type Collection[T any] struct {
	name  string
	items []T
	keyOf func(T) string
}

func newCollection[T any](name string, items []T, keyOf func(T) string) Collection[T] {
	return Collection[T]{name: name, items: items, keyOf: keyOf}
}

func Stages(ds entities.Dataset) Collection[entities.Stage] {
	return newCollection("stages", ds.Stages, func(s entities.Stage) string { return s.Code })
}

func Consultants(ds entities.Dataset) Collection[entities.Consultant] {
	return newCollection("consultants", ds.Consultants, func(c entities.Consultant) string { return c.Name })
}

func Proposals(ds entities.Dataset) Collection[entities.Proposal] {
	return newCollection("proposals", ds.Proposals, func(p entities.Proposal) string { return p.Number })
}

func Engagements(ds entities.Dataset) Collection[entities.Engagement] {
	return newCollection("engagements", ds.Engagements, func(e entities.Engagement) string { return e.ID })
}

func (c Collection[T]) Len() int { return len(c.items) }

// List returns the entries in insertion order.
func (c Collection[T]) List() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// FindByKey returns the first entry with the given key and its position.
func (c Collection[T]) FindByKey(key string) (T, int, bool) {
	for i, it := range c.items {
		if c.keyOf(it) == key {
			return it, i, true
		}
	}
	var zero T
	return zero, -1, false
}

func (c Collection[T]) Append(item T) (Collection[T], error) {
	key := c.keyOf(item)
	if _, _, ok := c.FindByKey(key); ok {
		return c, &KeyError{Collection: c.name, Key: key, Err: ErrDuplicateKey}
	}
	items := make([]T, len(c.items), len(c.items)+1)
	copy(items, c.items)
	c.items = append(items, item)
	return c, nil
}

func (c Collection[T]) ReplaceAt(index int, item T) (Collection[T], error) {
	if index < 0 || index >= len(c.items) {
		return c, ErrIndexOutOfRange
	}
	items := c.List()
	items[index] = item
	c.items = items
	return c, nil
}

// Items exposes the backing slice for writing back into a Dataset.
func (c Collection[T]) Items() []T { return c.items }
