package utils

import (
	"testing"
	"time"
)

func TestParseYMD(t *testing.T) {
	got, err := ParseYMD("2024-03-15")
	if err != nil {
		t.Fatal(err)
	}
	want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	if got.Location() != time.UTC {
		t.Fatal("dates must be UTC midnight")
	}
}

func TestParseYMDRejects(t *testing.T) {
	for _, s := range []string{"15/03/2024", "2024-3-5", "2024-13-01", "yesterday", ""} {
		if _, err := ParseYMD(s); err == nil {
			t.Errorf("ParseYMD(%q) should fail", s)
		}
	}
}
