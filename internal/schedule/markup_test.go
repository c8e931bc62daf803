package schedule

import "testing"

func TestStripMarkup(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "plain", in: "Morgenjournal", want: "Morgenjournal"},
		{name: "tags", in: "<b>News</b> und <i>Wetter</i>", want: "News und Wetter"},
		{name: "entities", in: "News &amp; Wetter &quot;heute&quot; &#39;jetzt&#39;", want: `News & Wetter "heute" 'jetzt'`},
		{name: "angle entities", in: "a &lt; b &gt; c", want: "a < b > c"},
		{name: "nbsp", in: "a&nbsp;b", want: "a b"},
		{name: "whitespace collapse", in: "  a \n\t b   c  ", want: "a b c"},
		{name: "tag removal no injected spaces", in: "Vor<br>mittag", want: "Vormittag"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := StripMarkup(tt.in)
			if got != tt.want {
				t.Fatalf("StripMarkup(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStripMarkupIdempotent(t *testing.T) {
	t.Parallel()
	inputs := []string{
		"<b>News</b> &amp; Wetter",
		"Vor<br>mittag  mit   Musik",
		"plain text",
		"",
	}
	for _, in := range inputs {
		once := StripMarkup(in)
		twice := StripMarkup(once)
		if once != twice {
			t.Fatalf("StripMarkup not stable for %q: %q -> %q", in, once, twice)
		}
	}
}
