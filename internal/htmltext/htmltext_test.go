package htmltext

import "testing"

func TestStrip(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain", "no markup here", "no markup here"},
		{"tags", "<p>OpenAI <b>released</b> a model</p>", "OpenAI released a model"},
		{"nested", "<div><a href='x'>link text</a> trailing</div>", "link text trailing"},
		{"whitespace", "  spread \n\n  out \t text  ", "spread out text"},
		{"entities", "A &amp; B", "A & B"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Strip(tt.in); got != tt.want {
				t.Errorf("Strip(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("Truncate under limit = %q", got)
	}
	if got := Truncate("exactly ten", 11); got != "exactly ten" {
		t.Errorf("Truncate at limit = %q", got)
	}
	if got := Truncate("this runs well past the cap", 9); got != "this runs..." {
		t.Errorf("Truncate = %q, want %q", got, "this runs...")
	}
	// rune-safe on CJK
	if got := Truncate("人工智能新闻摘要", 4); got != "人工智能..." {
		t.Errorf("Truncate CJK = %q, want %q", got, "人工智能...")
	}
}

func TestSnippet(t *testing.T) {
	in := "<p>A very long description that keeps going and going</p>"
	if got := Snippet(in, 11); got != "A very long..." {
		t.Errorf("Snippet = %q, want %q", got, "A very long...")
	}
}
