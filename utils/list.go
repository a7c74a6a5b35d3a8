package utils

// A plain doubly linked list with a sentinel ring, but generic, so callers
// keep their element type without round-tripping through interfaces.
// The zero value is ready to use.
// An Element is a stable handle: removal through it is O(1), as is push/pop
// at either end. Elements must not be moved between lists.

type Element[T any] struct {
	next, prev *Element[T]
	list       *List[T]
	Value      T
}

// Next returns the following element, or nil at the end of the list.
func (e *Element[T]) Next() *Element[T] {
	if n := e.next; e.list != nil && n != &e.list.root {
		return n
	}
	return nil
}

type List[T any] struct {
	root Element[T] // sentinel; root.next is front, root.prev is back
	len  int
}

func (l *List[T]) lazyInit() {
	if l.root.next == nil {
		l.root.next = &l.root
		l.root.prev = &l.root
	}
}

func (l *List[T]) Len() int { return l.len }

func (l *List[T]) IsEmpty() bool { return l.len == 0 }

// Front returns the first element, or nil if the list is empty.
func (l *List[T]) Front() *Element[T] {
	if l.len == 0 {
		return nil
	}
	return l.root.next
}

// Back returns the last element, or nil if the list is empty.
func (l *List[T]) Back() *Element[T] {
	if l.len == 0 {
		return nil
	}
	return l.root.prev
}

// PushBack appends v and returns its handle.
func (l *List[T]) PushBack(v T) *Element[T] {
	l.lazyInit()
	e := &Element[T]{Value: v, list: l}
	at := l.root.prev
	e.prev = at
	e.next = at.next
	at.next.prev = e
	at.next = e
	l.len++
	return e
}

// Remove unlinks e from the list and returns its value.
// e must be an element of this list.
func (l *List[T]) Remove(e *Element[T]) T {
	if e.list == l {
		e.prev.next = e.next
		e.next.prev = e.prev
		e.next = nil // avoid leaking the ring through stale handles
		e.prev = nil
		e.list = nil
		l.len--
	}
	return e.Value
}

// PopFront removes and returns the first value. False if empty.
func (l *List[T]) PopFront() (v T, ok bool) {
	if l.len == 0 {
		return v, false
	}
	return l.Remove(l.root.next), true
}

// PopBack removes and returns the last value. False if empty.
func (l *List[T]) PopBack() (v T, ok bool) {
	if l.len == 0 {
		return v, false
	}
	return l.Remove(l.root.prev), true
}
