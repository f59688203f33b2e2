package ansihtml

import (
	"testing"
)

func TestStyleFlags(t *testing.T) {
	var s Style

	s.SetFlag(StyleFlagBold)
	if !s.HasFlag(StyleFlagBold) {
		t.Error("expected bold flag")
	}

	s.SetFlag(StyleFlagItalic)
	if !s.HasFlag(StyleFlagBold) || !s.HasFlag(StyleFlagItalic) {
		t.Error("expected both flags")
	}

	s.ClearFlag(StyleFlagBold)
	if s.HasFlag(StyleFlagBold) {
		t.Error("expected bold flag to be cleared")
	}
	if !s.HasFlag(StyleFlagItalic) {
		t.Error("expected italic flag to remain")
	}
}

func TestStyleIsDefault(t *testing.T) {
	var s Style
	if !s.IsDefault() {
		t.Error("zero style should be default")
	}

	s.SetFlag(StyleFlagDim)
	if s.IsDefault() {
		t.Error("style with dim should not be default")
	}

	s.ClearFlag(StyleFlagDim)
	fg := IndexedColor(1)
	s.Fg = &fg
	if s.IsDefault() {
		t.Error("style with foreground should not be default")
	}

	s.Fg = nil
	if !s.IsDefault() {
		t.Error("cleared style should be default again")
	}
}

func TestStyleCSSOrder(t *testing.T) {
	fg := IndexedColor(1)
	bg := TrueColor(10, 20, 30)
	s := Style{
		Fg:    &fg,
		Bg:    &bg,
		Flags: StyleFlagBold | StyleFlagDim | StyleFlagItalic | StyleFlagUnderline,
	}

	expected := "color:#cd3131;background-color:rgb(10,20,30);font-weight:bold;font-style:italic;text-decoration:underline;opacity:0.6"
	if got := s.css(); got != expected {
		t.Errorf("css() = %q, want %q", got, expected)
	}
}

func TestStyleCSSSingleDeclaration(t *testing.T) {
	s := Style{Flags: StyleFlagUnderline}
	if got := s.css(); got != "text-decoration:underline" {
		t.Errorf("css() = %q, want text-decoration:underline", got)
	}
}
