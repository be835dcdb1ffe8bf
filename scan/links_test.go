package scan

import (
	"testing"
)

func TestLinks(t *testing.T) {
	links := Links("look: https://example.com/a?b=c, and http://giphy.com/x.")
	if len(links) != 2 || links[0] != "https://example.com/a?b=c" || links[1] != "http://giphy.com/x" {
		t.Errorf("unexpected links: %v", links)
	}
	if Links("no links") != nil {
		t.Error("expected no links")
	}
}

func TestLinksWithoutScheme(t *testing.T) {
	testCases := []struct {
		name     string
		text     string
		expected []string
		gif      bool
	}{
		{"www gif", "look: www.example.com/cat.gif", []string{"https://www.example.com/cat.gif"}, true},
		{"www gif host", "www.giphy.com/abc", []string{"https://www.giphy.com/abc"}, true},
		{"www page", "see www.example.org.", []string{"https://www.example.org"}, false},
		{"bare domain", "example.com is not a link", nil, false},
		{"other scheme", "ftp://example.com/file mailto:a@b.com", nil, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			links := Links(tc.text)
			if len(links) != len(tc.expected) {
				t.Fatalf("got %v, expected %v", links, tc.expected)
			}
			for i := range links {
				if links[i] != tc.expected[i] {
					t.Errorf("got %v, expected %v", links, tc.expected)
				}
			}
			if len(links) > 0 && IsGIF(links[0]) != tc.gif {
				t.Errorf("IsGIF(%q) != %v", links[0], tc.gif)
			}
		})
	}
}

func TestIsGIF(t *testing.T) {
	testCases := []struct {
		link string
		gif  bool
	}{
		{"https://example.com/cat.GIF", true},
		{"https://media.tenor.com/abc", true},
		{"https://i.imgur.com/abc.png", true},
		{"https://example.com/cat.png", false},
		{"https://notgiphy.com/", false},
		{"://bad", false},
	}
	for _, tc := range testCases {
		t.Run(tc.link, func(t *testing.T) {
			if IsGIF(tc.link) != tc.gif {
				t.Errorf("IsGIF(%q) != %v", tc.link, tc.gif)
			}
		})
	}
}

func TestTruncateURL(t *testing.T) {
	short := "https://example.com"
	if TruncateURL(short, 50) != short {
		t.Error("short link was changed")
	}
	long := "https://example.com/aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	got := TruncateURL(long, 50)
	if len([]rune(got)) != 50 || got[47:] != "..." {
		t.Errorf("unexpected truncation: %q", got)
	}
	if TruncateURL(long, 0) != got {
		t.Error("zero length must fall back to the default")
	}
}
