package store

import (
	"errors"
	"testing"
)

func TestNewCopiesOriginal(t *testing.T) {
	src := []byte("hello")
	s := New(src, 0)
	src[0] = 'X'

	if string(s.Read(Original, 0, 5)) != "hello" {
		t.Errorf("store shares caller's bytes: %q", s.Read(Original, 0, 5))
	}
	if s.OriginalLen() != 5 {
		t.Errorf("expected original length 5, got %d", s.OriginalLen())
	}
}

func TestAppendReturnsRange(t *testing.T) {
	s := New(nil, 0)

	start, length, err := s.Append([]byte("abc"))
	if err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if start != 0 || length != 3 {
		t.Errorf("expected range (0, 3), got (%d, %d)", start, length)
	}

	start, length, err = s.Append([]byte("de"))
	if err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if start != 3 || length != 2 {
		t.Errorf("expected range (3, 2), got (%d, %d)", start, length)
	}
	if s.AddLen() != 5 {
		t.Errorf("expected add length 5, got %d", s.AddLen())
	}
	if string(s.Read(Add, 0, 5)) != "abcde" {
		t.Errorf("expected %q, got %q", "abcde", s.Read(Add, 0, 5))
	}
}

func TestAppendOffsetsSurviveGrowth(t *testing.T) {
	s := New(nil, 0)

	start, _, err := s.Append([]byte("first"))
	if err != nil {
		t.Fatalf("append failed: %v", err)
	}
	// Force plenty of growth; earlier offsets must keep resolving.
	for i := 0; i < 1000; i++ {
		if _, _, err := s.Append([]byte("xxxxxxxxxx")); err != nil {
			t.Fatalf("append failed: %v", err)
		}
	}
	if string(s.Read(Add, start, 5)) != "first" {
		t.Errorf("expected %q, got %q", "first", s.Read(Add, start, 5))
	}
}

func TestAppendCap(t *testing.T) {
	s := New(nil, 4)

	if _, _, err := s.Append([]byte("abcd")); err != nil {
		t.Fatalf("append within cap failed: %v", err)
	}
	_, _, err := s.Append([]byte("e"))
	if !errors.Is(err, ErrAllocationFailed) {
		t.Fatalf("expected ErrAllocationFailed, got %v", err)
	}
	// Prior state is untouched.
	if s.AddLen() != 4 {
		t.Errorf("expected add length 4, got %d", s.AddLen())
	}
	if string(s.Read(Add, 0, 4)) != "abcd" {
		t.Errorf("expected %q, got %q", "abcd", s.Read(Add, 0, 4))
	}
}

func TestSlotString(t *testing.T) {
	if Original.String() != "original" || Add.String() != "add" {
		t.Errorf("unexpected slot names: %q, %q", Original, Add)
	}
}
