package browser

// RecentLimit caps the recently viewed list.
const RecentLimit = 10

// Recent is a bounded, most-recent-first list of entry ids without
// duplicates.
type Recent struct {
	ids []int
}

// Push moves id to the front, dropping any earlier occurrence and anything
// past RecentLimit.
func (r *Recent) Push(id int) {
	next := make([]int, 0, RecentLimit)
	next = append(next, id)
	for _, existing := range r.ids {
		if existing == id {
			continue
		}
		if len(next) == RecentLimit {
			break
		}
		next = append(next, existing)
	}
	r.ids = next
}

// IDs returns a copy of the list, most recent first.
func (r *Recent) IDs() []int {
	out := make([]int, len(r.ids))
	copy(out, r.ids)
	return out
}

func (r *Recent) Len() int {
	return len(r.ids)
}

func (r *Recent) reset(ids []int) {
	r.ids = nil
	for i := len(ids) - 1; i >= 0; i-- {
		r.Push(ids[i])
	}
}
