package cmd

import (
	"testing"

	"github.com/crossplay/xword/pkg/grid"
)

func TestParseDifficulty(t *testing.T) {
	cases := []struct {
		in   string
		want grid.Difficulty
	}{
		{"easy", grid.Easy},
		{"EASY", grid.Easy},
		{"medium", grid.Medium},
		{"hard", grid.Hard},
		{"expert", grid.Expert},
	}
	for _, c := range cases {
		got, err := parseDifficulty(c.in)
		if err != nil {
			t.Fatalf("parseDifficulty(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("parseDifficulty(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseDifficulty_Invalid(t *testing.T) {
	if _, err := parseDifficulty("impossible"); err == nil {
		t.Fatal("expected an error for an unknown difficulty")
	}
}
