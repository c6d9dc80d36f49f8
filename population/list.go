package population

import (
	"container/list"
	"iter"
)

// List is a doubly linked list, it only supports forward iteration which makes it a purely sequential population.
type List[T any] struct {
	list *list.List
}

var _ Sequential[int] = (*List[int])(nil)

// NewList returns a list containing the given values in order.
func NewList[T any](values ...T) *List[T] {
	l := &List[T]{list: list.New()}

	for _, v := range values {
		l.PushBack(v)
	}

	return l
}

// PushBack adds v to the end of the list.
func (l *List[T]) PushBack(v T) {
	l.list.PushBack(v)
}

// PushFront adds v to the start of the list.
func (l *List[T]) PushFront(v T) {
	l.list.PushFront(v)
}

func (l *List[T]) Len() int {
	return l.list.Len()
}

func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := l.list.Front(); e != nil; e = e.Next() {
			if !yield(e.Value.(T)) {
				return
			}
		}
	}
}
