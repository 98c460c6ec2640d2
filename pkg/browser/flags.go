package browser

import "sort"

// Flags is an id-keyed boolean set. A missing id and an id mapped to false
// mean the same thing.
type Flags map[int]bool

// Toggle flips id and returns its new value.
func (f Flags) Toggle(id int) bool {
	v := !f[id]
	if v {
		f[id] = true
	} else {
		delete(f, id)
	}
	return v
}

func (f Flags) Has(id int) bool {
	return f[id]
}

// IDs returns the set members in ascending order.
func (f Flags) IDs() []int {
	out := make([]int, 0, len(f))
	for id, on := range f {
		if on {
			out = append(out, id)
		}
	}
	sort.Ints(out)
	return out
}

func (f Flags) Count() int {
	n := 0
	for _, on := range f {
		if on {
			n++
		}
	}
	return n
}

func flagsFrom(ids []int) Flags {
	f := make(Flags, len(ids))
	for _, id := range ids {
		f[id] = true
	}
	return f
}
