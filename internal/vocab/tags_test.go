package vocab

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestMergeTags(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want string
	}{
		{"no input", nil, ""},
		{"single", []string{"animals"}, "animals"},
		{"union of two", []string{"animals", "home"}, "animals home"},
		{"sorted output", []string{"verbs food", "animals"}, "animals food verbs"},
		{"duplicates collapse", []string{"a b", "b a", "a"}, "a b"},
		{"extra whitespace ignored", []string{"  a \t b  ", "c\n"}, "a b c"},
		{"empty strings ignored", []string{"", "x", ""}, "x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MergeTags(tt.in...))
		})
	}
}

func TestSplitTags(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, SplitTags(" a  b "))
	assert.Empty(t, SplitTags("   "))
}

func tagStringGenerator() *rapid.Generator[string] {
	return rapid.StringMatching(`( ?[a-d]{1,3}){0,4} ?`)
}

func TestMergeTags_Properties(t *testing.T) {
	if testing.Short() {
		t.Skip("property check")
	}
	rapid.Check(t, func(t *rapid.T) {
		in := rapid.SliceOf(tagStringGenerator()).Draw(t, "tags")
		merged := MergeTags(in...)
		toks := SplitTags(merged)

		if !sort.StringsAreSorted(toks) {
			t.Fatalf("tokens not sorted: %q", merged)
		}
		for i := 1; i < len(toks); i++ {
			if toks[i] == toks[i-1] {
				t.Fatalf("duplicate token %q in %q", toks[i], merged)
			}
		}
		if strings.Join(toks, " ") != merged {
			t.Fatalf("merged string not single-space joined: %q", merged)
		}

		want := make(map[string]bool)
		for _, s := range in {
			for _, tok := range SplitTags(s) {
				want[tok] = true
			}
		}
		if len(want) != len(toks) {
			t.Fatalf("got %d tokens, want %d", len(toks), len(want))
		}
		for _, tok := range toks {
			if !want[tok] {
				t.Fatalf("unexpected token %q", tok)
			}
		}

		if MergeTags(merged) != merged {
			t.Fatalf("merging is not idempotent for %q", merged)
		}
	})
}
