package browser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRecentPush(t *testing.T) {
	var r Recent
	r.Push(1)
	r.Push(2)
	r.Push(1)
	if diff := cmp.Diff([]int{1, 2}, r.IDs()); diff != "" {
		t.Fatalf("ids (-want +got):\n%s", diff)
	}
}

func TestRecentReset(t *testing.T) {
	var r Recent
	r.reset([]int{5, 4, 5, 3, 2, 1, 6, 7, 8, 9, 10, 11, 12})
	want := []int{5, 4, 3, 2, 1, 6, 7, 8, 9, 10}
	if diff := cmp.Diff(want, r.IDs()); diff != "" {
		t.Fatalf("ids (-want +got):\n%s", diff)
	}
}
