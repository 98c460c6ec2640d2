package debounce

import (
	"testing"
	"time"
)

func TestOnlyLatestTicketFires(t *testing.T) {
	d := New(0)
	if d.Delay() != DefaultDelay {
		t.Fatalf("expected default delay %v, got %v", DefaultDelay, d.Delay())
	}

	a := d.Schedule()
	b := d.Schedule()
	c := d.Schedule()

	if d.Fire(a) || d.Fire(b) {
		t.Fatalf("stale tickets must not fire")
	}
	if !d.Fire(c) {
		t.Fatalf("latest ticket should fire")
	}
	if d.Fire(c) {
		t.Fatalf("ticket fired twice")
	}
	if d.Pending() {
		t.Fatalf("expected nothing pending after fire")
	}
}

func TestCancel(t *testing.T) {
	d := New(50 * time.Millisecond)
	tk := d.Schedule()
	d.Cancel()
	if d.Fire(tk) {
		t.Fatalf("cancelled ticket fired")
	}

	next := d.Schedule()
	if !d.Fire(next) {
		t.Fatalf("ticket scheduled after cancel should fire")
	}
}
