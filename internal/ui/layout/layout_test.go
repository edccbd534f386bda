package layout

import (
	"strings"
	"testing"
)

func TestDDayLabel(t *testing.T) {
	tests := []struct {
		days int
		want string
	}{
		{24, "D-24"},
		{1, "D-1"},
		{0, "D-Day"},
		{-3, "D+3"},
	}
	for _, tt := range tests {
		if got := DDayLabel(tt.days); got != tt.want {
			t.Errorf("DDayLabel(%d) = %q, want %q", tt.days, got, tt.want)
		}
	}
}

func TestRenderHeader(t *testing.T) {
	out := RenderHeader("홈", HeaderStats{DDay: 24, Streak: 5}, 80)
	for _, want := range []string{"문학 O/X", "홈", "D-24", "5일"} {
		if !strings.Contains(out, want) {
			t.Errorf("header missing %q:\n%s", want, out)
		}
	}
}

func TestIsTooSmall(t *testing.T) {
	if !IsTooSmall(MinWidth-1, MinHeight) {
		t.Error("narrow terminal should be too small")
	}
	if IsTooSmall(MinWidth, MinHeight) {
		t.Error("minimum size should fit")
	}
}
