// Package list is a doubly linked list stored in an arena.
//
// Entries are addressed by Handles that carry a generation, so a handle to a
// removed entry never resolves to whatever reused its slot.
package list

import "iter"

// Handle addresses one entry. The zero Handle never resolves.
type Handle struct {
	index uint32
	gen   uint32
}

// IsZero reports whether h is the zero Handle.
func (h Handle) IsZero() bool { return h.gen == 0 }

const none = -1

type node[T any] struct {
	value      T
	prev, next int
	gen        uint32
	live       bool
}

// List is an insertion-ordered list. The zero value is ready to use.
type List[T any] struct {
	nodes []node[T]
	free  []int
	head  int
	tail  int
	n     int
	init  bool
}

func (l *List[T]) lazyInit() {
	if !l.init {
		l.head, l.tail = none, none
		l.init = true
	}
}

// Len returns the number of live entries.
func (l *List[T]) Len() int { return l.n }

func (l *List[T]) alloc(v T) int {
	if k := len(l.free); k > 0 {
		i := l.free[k-1]
		l.free = l.free[:k-1]
		nd := &l.nodes[i]
		nd.value = v
		nd.gen++
		nd.live = true
		return i
	}
	l.nodes = append(l.nodes, node[T]{value: v, gen: 1, live: true})
	return len(l.nodes) - 1
}

func (l *List[T]) handle(i int) Handle {
	return Handle{index: uint32(i), gen: l.nodes[i].gen}
}

func (l *List[T]) resolve(h Handle) (int, bool) {
	if h.IsZero() || int(h.index) >= len(l.nodes) {
		return 0, false
	}
	nd := &l.nodes[h.index]
	if !nd.live || nd.gen != h.gen {
		return 0, false
	}
	return int(h.index), true
}

func (l *List[T]) linkFront(i int) {
	nd := &l.nodes[i]
	nd.prev = none
	nd.next = l.head
	if l.head != none {
		l.nodes[l.head].prev = i
	}
	l.head = i
	if l.tail == none {
		l.tail = i
	}
}

func (l *List[T]) unlink(i int) {
	nd := &l.nodes[i]
	if nd.prev != none {
		l.nodes[nd.prev].next = nd.next
	} else {
		l.head = nd.next
	}
	if nd.next != none {
		l.nodes[nd.next].prev = nd.prev
	} else {
		l.tail = nd.prev
	}
	nd.prev, nd.next = none, none
}

// PushFront inserts v at the head and returns its handle.
func (l *List[T]) PushFront(v T) Handle {
	l.lazyInit()
	i := l.alloc(v)
	l.linkFront(i)
	l.n++
	return l.handle(i)
}

// Remove unlinks the entry and returns its value. Stale handles are ignored.
func (l *List[T]) Remove(h Handle) (T, bool) {
	var zero T
	i, ok := l.resolve(h)
	if !ok {
		return zero, false
	}
	l.unlink(i)
	nd := &l.nodes[i]
	v := nd.value
	nd.value = zero
	nd.live = false
	l.free = append(l.free, i)
	l.n--
	return v, true
}

// MoveToFront makes h the head of the list.
func (l *List[T]) MoveToFront(h Handle) bool {
	i, ok := l.resolve(h)
	if !ok {
		return false
	}
	if l.head == i {
		return true
	}
	l.unlink(i)
	l.linkFront(i)
	return true
}

// Get returns the value stored under h.
func (l *List[T]) Get(h Handle) (T, bool) {
	i, ok := l.resolve(h)
	if !ok {
		var zero T
		return zero, false
	}
	return l.nodes[i].value, true
}

// Contains reports whether h still resolves.
func (l *List[T]) Contains(h Handle) bool {
	_, ok := l.resolve(h)
	return ok
}

// Front returns the head handle, or the zero Handle when empty.
func (l *List[T]) Front() Handle {
	if l.n == 0 {
		return Handle{}
	}
	return l.handle(l.head)
}

// Back returns the tail handle, or the zero Handle when empty.
func (l *List[T]) Back() Handle {
	if l.n == 0 {
		return Handle{}
	}
	return l.handle(l.tail)
}

// Next returns the handle after h, or the zero Handle at the end.
func (l *List[T]) Next(h Handle) Handle {
	i, ok := l.resolve(h)
	if !ok || l.nodes[i].next == none {
		return Handle{}
	}
	return l.handle(l.nodes[i].next)
}

// Prev returns the handle before h, or the zero Handle at the head.
func (l *List[T]) Prev(h Handle) Handle {
	i, ok := l.resolve(h)
	if !ok || l.nodes[i].prev == none {
		return Handle{}
	}
	return l.handle(l.nodes[i].prev)
}

// All iterates head to tail. The list must not be modified during iteration
// except by removing the entry currently yielded.
func (l *List[T]) All() iter.Seq2[Handle, T] {
	return func(yield func(Handle, T) bool) {
		if l.n == 0 {
			return
		}
		for i := l.head; i != none; {
			next := l.nodes[i].next
			if !yield(l.handle(i), l.nodes[i].value) {
				return
			}
			i = next
		}
	}
}

// Values iterates the values head to tail.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range l.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Clear drops every entry. Outstanding handles become stale.
func (l *List[T]) Clear() {
	for h := range l.All() {
		l.Remove(h)
	}
}
