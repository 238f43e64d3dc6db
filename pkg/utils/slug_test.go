package utils

import (
	"strings"
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"Demo Bank":             "demo-bank",
		"  AWS  ":               "aws",
		"Reporting & Analytics": "reporting-analytics",
		"---":                   "",
	}
	for in, want := range tests {
		if got := Slugify(in); got != want {
			t.Errorf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNewIDPrefixAndLength(t *testing.T) {
	id := NewID("ext")
	if !strings.HasPrefix(id, "ext-") || len(id) != len("ext-")+36 {
		t.Errorf("NewID(ext) = %q", id)
	}
	if NewID("") == NewID("") {
		t.Error("NewID returned the same id twice")
	}
}
