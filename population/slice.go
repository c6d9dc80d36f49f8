package population

import "iter"

// Slice adapts a Go slice, a pointer to a Slice is resizable.
type Slice[T any] []T

var (
	_ Swappable[int] = Slice[int]{}
	_ Resizable[int] = (*Slice[int])(nil)
)

// SliceOf returns a resizable population backed by the given slice, shuffling it permutes the caller's slice.
func SliceOf[S ~[]T, T any](s S) *Slice[T] {
	converted := Slice[T](s)
	return &converted
}

func (s Slice[T]) Len() int {
	return len(s)
}

func (s Slice[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s {
			if !yield(v) {
				return
			}
		}
	}
}

func (s Slice[T]) At(i int) T {
	return s[i]
}

func (s Slice[T]) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}

func (s Slice[T]) Set(i int, v T) {
	s[i] = v
}

func (s *Slice[T]) Append(v T) {
	*s = append(*s, v)
}

// Runes adapts a string as a resizable sequence of runes.
type Runes []rune

var _ Resizable[rune] = (*Runes)(nil)

// RunesOf returns a population containing the runes of the given string.
func RunesOf(s string) *Runes {
	r := Runes(s)
	return &r
}

func (r Runes) Len() int {
	return len(r)
}

func (r Runes) All() iter.Seq[rune] {
	return Slice[rune](r).All()
}

func (r Runes) At(i int) rune {
	return r[i]
}

func (r Runes) Swap(i, j int) {
	r[i], r[j] = r[j], r[i]
}

func (r Runes) Set(i int, v rune) {
	r[i] = v
}

func (r *Runes) Append(v rune) {
	*r = append(*r, v)
}

// String returns the runes as a string.
func (r Runes) String() string {
	return string(r)
}
