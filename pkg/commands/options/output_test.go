package options

import (
	"bytes"
	"errors"
	"testing"
)

func TestHandleErrorJSON(t *testing.T) {
	var buf bytes.Buffer
	o := &OutputOptions{JSON: true, Out: &buf}
	if err := o.HandleError(errors.New("boom")); err != nil {
		t.Fatalf("expected error to be reported as JSON, got %v", err)
	}
	if got, want := buf.String(), "{\"error\":\"boom\"}\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestHandleErrorText(t *testing.T) {
	o := &OutputOptions{}
	want := errors.New("boom")
	if err := o.HandleError(want); err != want {
		t.Fatalf("expected the original error, got %v", err)
	}
	if err := o.HandleError(nil); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestParseIDArg(t *testing.T) {
	o := &IDOptions{}
	parse := ParseIDArg(o, nil)
	if err := parse(nil, []string{"7"}); err != nil || o.ID != 7 {
		t.Fatalf("expected id 7, got %d (%v)", o.ID, err)
	}
	for _, args := range [][]string{{}, {"x"}, {"0"}, {"1", "2"}} {
		if err := parse(nil, args); err == nil {
			t.Fatalf("expected error for %v", args)
		}
	}
}

func TestParseIDArgInteractive(t *testing.T) {
	o := &IDOptions{}
	parse := ParseIDArg(o, &InteractiveOptions{Interactive: true})
	if err := parse(nil, nil); err != nil || o.ID != 0 {
		t.Fatalf("expected no id for an interactive pick, got %d (%v)", o.ID, err)
	}
	if err := parse(nil, []string{"3"}); err != nil || o.ID != 3 {
		t.Fatalf("expected an explicit id to win, got %d (%v)", o.ID, err)
	}
}
