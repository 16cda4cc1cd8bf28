package util

// Stack is a generic LIFO used for iterative tree walks.
type Stack[T any] struct {
	items []T
}

// Push appends item to the top of the stack.
func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
}

// Pop removes and returns the top element; the zero value when empty.
func (s *Stack[T]) Pop() (item T) {
	if len(s.items) == 0 {
		return
	}
	idx := len(s.items) - 1
	item = s.items[idx]
	var zero T
	s.items[idx] = zero
	s.items = s.items[:idx]
	return
}

// Len returns the number of stored elements.
func (s *Stack[T]) Len() int {
	return len(s.items)
}
