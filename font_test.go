package main

import (
	"testing"

	"golang.org/x/image/font/basicfont"
)

func TestFitLines(t *testing.T) {
	face := basicfont.Face7x13
	s := "one\ntwo\nthree"

	if got := fitLines(face, s, 26); got != "one\ntwo" {
		t.Errorf("Expected first two lines, got %q", got)
	}
	if got := fitLastLines(face, s, 26); got != "two\nthree" {
		t.Errorf("Expected last two lines, got %q", got)
	}
	if got := fitLines(face, s, 5); got != "" {
		t.Errorf("Expected nothing to fit, got %q", got)
	}
	if got := fitLastLines(face, s, 100); got != s {
		t.Errorf("Expected everything to fit, got %q", got)
	}
}
