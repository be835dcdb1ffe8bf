package scan

import (
	"net/url"
	"strings"

	"mvdan.cc/xurls/v2"
)

const DefaultURLLength = 50

var (
	relaxedURLs = xurls.Relaxed()
	gifHosts    = []string{"giphy.com", "gifs.com", "tenor.com", "imgur.com", "reddit.com"}
)

// Links returns the http(s) links found in a decoded message. Links
// starting with "www." get an https scheme, other schemes and bare domains
// are ignored.
func Links(s string) []string {
	var links []string
	for _, l := range relaxedURLs.FindAllString(s, -1) {
		lower := strings.ToLower(l)
		switch {
		case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
			links = append(links, l)
		case strings.HasPrefix(lower, "www."):
			links = append(links, "https://"+l)
		}
	}
	return links
}

// IsGIF reports whether the link most likely points to an animation.
func IsGIF(link string) bool {
	u, err := url.Parse(link)
	if err != nil {
		return false
	}
	if strings.HasSuffix(strings.ToLower(u.Path), ".gif") {
		return true
	}
	host := strings.ToLower(u.Hostname())
	for _, h := range gifHosts {
		if host == h || strings.HasSuffix(host, "."+h) {
			return true
		}
	}
	return false
}

// TruncateURL shortens long links for display.
func TruncateURL(link string, max int) string {
	if max <= 3 {
		max = DefaultURLLength
	}
	runes := []rune(link)
	if len(runes) <= max {
		return link
	}
	return string(runes[:max-3]) + "..."
}
