package collections

type Set[V comparable] map[V]struct{}

// NewSet returns a Set holding the given values
func NewSet[V comparable](values ...V) Set[V] {
	set := make(Set[V], len(values))
	for _, value := range values {
		set.Add(value)
	}
	return set
}

// Add an element to the set, reporting whether it was newly added
func (set Set[V]) Add(value V) bool {
	if set.Contains(value) {
		return false
	}
	set[value] = struct{}{}
	return true
}

// Remove an element from the set, reporting whether it was present
func (set Set[V]) Remove(value V) bool {
	if !set.Contains(value) {
		return false
	}
	delete(set, value)
	return true
}

// Contains returns whether the element exists within the set
func (set Set[V]) Contains(value V) bool {
	_, contains := set[value]
	return contains
}

func (set Set[V]) Len() int {
	return len(set)
}

// Difference returns a new Set containing all elements from the calling set
// not present in the other set
func (set Set[V]) Difference(other Set[V]) Set[V] {
	difference := make(Set[V])
	for value := range set {
		if !other.Contains(value) {
			difference.Add(value)
		}
	}
	return difference
}
