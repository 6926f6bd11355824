// Package pile holds the shuffle and draw primitives shared by the draw pile,
// the monster deck and the leader pool.
package pile

// Shuffler randomizes the order of n elements through swap. *rand.Rand
// satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Pile is an ordered stack of items. The tail is the top: Draw takes from
// the end of the slice.
type Pile[T any] []T

// Size returns the number of items in the pile.
func (p *Pile[T]) Size() int {
	if p == nil {
		return 0
	}
	return len(*p)
}

// Shuffle randomizes the pile in place.
func (p *Pile[T]) Shuffle(s Shuffler) {
	if p.Size() < 2 || s == nil {
		return
	}
	items := *p
	s.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
}

// Draw removes and returns the top item. ok is false when the pile is empty.
func (p *Pile[T]) Draw() (T, bool) {
	var zero T
	n := p.Size()
	if n == 0 {
		return zero, false
	}
	item := (*p)[n-1]
	(*p)[n-1] = zero
	*p = (*p)[:n-1]
	return item, true
}

// DrawN draws up to n items, stopping early when the pile runs out.
func (p *Pile[T]) DrawN(n int) []T {
	drawn := make([]T, 0, n)
	for i := 0; i < n; i++ {
		item, ok := p.Draw()
		if !ok {
			break
		}
		drawn = append(drawn, item)
	}
	return drawn
}

// Add puts an item on top of the pile.
func (p *Pile[T]) Add(items ...T) {
	*p = append(*p, items...)
}

// RemoveFunc removes and returns the first item matching fn.
func (p *Pile[T]) RemoveFunc(fn func(T) bool) (T, bool) {
	var zero T
	for i, item := range *p {
		if fn(item) {
			*p = append((*p)[:i], (*p)[i+1:]...)
			return item, true
		}
	}
	return zero, false
}

// RemoveAt removes and returns the item at index.
func (p *Pile[T]) RemoveAt(index int) (T, bool) {
	var zero T
	if index < 0 || index >= p.Size() {
		return zero, false
	}
	item := (*p)[index]
	*p = append((*p)[:index], (*p)[index+1:]...)
	return item, true
}

// Find returns the first item matching fn without removing it.
func (p *Pile[T]) Find(fn func(T) bool) (T, bool) {
	var zero T
	for _, item := range *p {
		if fn(item) {
			return item, true
		}
	}
	return zero, false
}

// Items returns a copy of the pile contents, bottom first.
func (p *Pile[T]) Items() []T {
	out := make([]T, p.Size())
	copy(out, *p)
	return out
}
