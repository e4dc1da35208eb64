package textnorm

import "testing"

func TestClean(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Accounts Clerk – Harare", "Accounts Clerk - Harare"},
		{"“Urgent” hire…", `"Urgent" hire`},
		{"It’s a remote role", "It's a remote role"},
		{"Café Manager", "Caf Manager"},
		{"  spaced  out \n text ", "spaced out text"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := Clean(tc.in); got != tc.want {
			t.Fatalf("Clean(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCleanIdempotent(t *testing.T) {
	inputs := []string{
		"Senior Accountant — ABC Bank",
		"plain ascii already",
		"‘quoted’ … trailing",
		"tabs\tand\nnewlines",
	}

	for _, in := range inputs {
		once := Clean(in)
		twice := Clean(once)
		if once != twice {
			t.Fatalf("Clean not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}
