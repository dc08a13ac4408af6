package crawldex

import (
	"net/url"
	"strings"
)

// skipExtensions lists path suffixes that never contain indexable HTML.
var skipExtensions = []string{
	".pdf", ".jpg", ".jpeg", ".png", ".gif", ".mp4",
	".mp3", ".zip", ".tar", ".gz", ".exe", ".dmg",
}

// NormalizeURL canonicalizes rawURL so that two spellings of the same
// resource compare equal: scheme and host are lowercased, default ports
// and fragments are dropped, and an empty path becomes "/". The frontier's
// seen-set and the inverted index are both keyed on this form.
// Returns EINVALID if rawURL does not parse as an absolute URL.
func NormalizeURL(rawURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", Errorf(EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", Errorf(EINVALID, "URL %q is not absolute", rawURL)
	}

	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	switch {
	case u.Scheme == "http" && strings.HasSuffix(u.Host, ":80"):
		u.Host = strings.TrimSuffix(u.Host, ":80")
	case u.Scheme == "https" && strings.HasSuffix(u.Host, ":443"):
		u.Host = strings.TrimSuffix(u.Host, ":443")
	}
	u.Fragment = ""
	if u.Path == "" {
		u.Path = "/"
	}

	return u.String(), nil
}

// IsCrawlable reports whether a URL is worth fetching: http or https
// scheme and not a known binary file extension.
func IsCrawlable(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	path := strings.ToLower(u.Path)
	for _, ext := range skipExtensions {
		if strings.HasSuffix(path, ext) {
			return false
		}
	}
	return true
}
