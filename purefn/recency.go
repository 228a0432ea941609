package purefn

// recency is a doubly-linked list of entries ordered from least to most
// recently used. The zero value is not valid, use newRecency.
type recency[V any] struct {
	root entry[V]
	len  int
}

func newRecency[V any]() *recency[V] {
	r := new(recency[V])
	r.root.next = &r.root
	r.root.prev = &r.root
	return r
}

// pushBack links e as the most recently used entry.
func (r *recency[V]) pushBack(e *entry[V]) {
	e.prev = r.root.prev
	e.next = &r.root
	e.prev.next = e
	r.root.prev = e
	r.len++
}

// moveToBack promotes e to the most recently used position.
func (r *recency[V]) moveToBack(e *entry[V]) {
	if r.root.prev == e {
		return
	}
	e.prev.next = e.next
	e.next.prev = e.prev
	e.prev = r.root.prev
	e.next = &r.root
	e.prev.next = e
	r.root.prev = e
}

func (r *recency[V]) remove(e *entry[V]) {
	e.prev.next = e.next
	e.next.prev = e.prev
	e.next, e.prev = nil, nil
	r.len--
}

// front returns the least recently used entry, or nil if the list is empty.
func (r *recency[V]) front() *entry[V] {
	if r.len == 0 {
		return nil
	}
	return r.root.next
}

func (r *recency[V]) each(fn func(*entry[V])) {
	for e := r.root.next; e != &r.root; e = e.next {
		fn(e)
	}
}
