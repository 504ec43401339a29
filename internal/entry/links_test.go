package entry

import "testing"

func TestExtractLinks(t *testing.T) {
	content := "See [notes](notes/a.md#top) and ![photo](pics/x%20y.png).\n" +
		"\n" +
		"`[code](code.md)`\n" +
		"\n" +
		"[site](https://example.com) [anchor](#later) [abs](/etc/hosts)\n"

	links := ExtractLinks(content)
	if len(links) != 5 {
		t.Fatalf("got %d links, want 5: %+v", len(links), links)
	}

	tests := []struct {
		dest   string
		line   int
		local  bool
		target string
	}{
		{"notes/a.md#top", 1, true, "notes/a.md"},
		{"pics/x%20y.png", 1, true, "pics/x y.png"},
		{"https://example.com", 5, false, "https://example.com"},
		{"#later", 5, false, ""},
		{"/etc/hosts", 5, false, "/etc/hosts"},
	}
	for i, tc := range tests {
		l := links[i]
		if l.Destination != tc.dest {
			t.Errorf("links[%d].Destination = %q, want %q", i, l.Destination, tc.dest)
		}
		if l.Line != tc.line {
			t.Errorf("links[%d].Line = %d, want %d", i, l.Line, tc.line)
		}
		if l.IsLocal() != tc.local {
			t.Errorf("links[%d].IsLocal() = %v, want %v", i, l.IsLocal(), tc.local)
		}
		if l.Target() != tc.target {
			t.Errorf("links[%d].Target() = %q, want %q", i, l.Target(), tc.target)
		}
	}
}
