package ui

import "testing"

func TestButtonsAnchoredTopRight(t *testing.T) {
	a := &Button{Label: "a", W: 40, H: 30}
	b := &Button{Label: "b", W: 30, H: 30}
	ui := NewUISystem(nil, func() (int, int) { return 200, 100 }, nil, a, b)

	if b.X != 160 || a.X != 110 {
		t.Errorf("Expected buttons at x=110 and x=160, got %v and %v", a.X, b.X)
	}
	if a.Y != 10 || b.Y != 10 {
		t.Errorf("Expected buttons on the top margin, got %v and %v", a.Y, b.Y)
	}
	if !ui.IsMouseOver(170, 20) || ui.IsMouseOver(5, 5) {
		t.Errorf("Unexpected hover result")
	}
}

func TestClickFiresButton(t *testing.T) {
	clicks := 0
	btn := &Button{Label: "+", W: 30, H: 30, OnClick: func() { clicks++ }}
	ui := NewUISystem(nil, func() (int, int) { return 100, 100 }, nil, btn)

	if !ui.Click(75, 25) {
		t.Fatalf("Expected click to be consumed")
	}
	if ui.Click(10, 90) {
		t.Errorf("Expected click outside the buttons to pass through")
	}
	if clicks != 1 {
		t.Errorf("Expected 1 click, got %d", clicks)
	}
}
