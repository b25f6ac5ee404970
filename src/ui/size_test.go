package ui

import "testing"

func TestHumanSize(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{2048, "2.0 KB"},
		{1536, "1.5 KB"},
		{3 * 1024 * 1024, "3.0 MB"},
	}
	for _, c := range cases {
		if got := HumanSize(c.in); got != c.want {
			t.Fatalf("HumanSize(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}
