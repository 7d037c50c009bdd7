package graph

import (
	"errors"
	"testing"
)

func TestNewStateNodeNilCheckAlwaysMatches(t *testing.T) {
	n, err := NewStateNode("a", nil, "no checker")
	if err != nil {
		t.Fatalf("NewStateNode: %v", err)
	}
	if !n.Check(Context{"anything": true}) {
		t.Fatal("expected nil checker to always match")
	}
	if !n.Check(Context{}) {
		t.Fatal("expected nil checker to always match an empty context")
	}
}

func TestNewStateNodeEmptyIDRejected(t *testing.T) {
	_, err := NewStateNode("", alwaysTrue, "")
	if !errors.Is(err, ErrEmptyID) {
		t.Fatalf("expected ErrEmptyID, got %v", err)
	}
}
