package github

import (
	"net/http"
	"strings"
)

// nextPageUrl returns the target of the rel="next" entry of the Link headers, or
// an empty string when the response is the last page.
func nextPageUrl(header http.Header) string {
	for _, value := range header.Values("Link") {
		for _, link := range strings.Split(value, ",") {
			segments := strings.Split(strings.TrimSpace(link), ";")
			if len(segments) < 2 {
				continue
			}

			target := strings.TrimSpace(segments[0])
			if !strings.HasPrefix(target, "<") || !strings.HasSuffix(target, ">") {
				continue
			}

			for _, param := range segments[1:] {
				key, rels, ok := strings.Cut(strings.TrimSpace(param), "=")
				if !ok || strings.TrimSpace(key) != "rel" {
					continue
				}
				// rel may hold several space separated relation types
				for _, rel := range strings.Fields(strings.Trim(strings.TrimSpace(rels), `"`)) {
					if rel == "next" {
						return target[1 : len(target)-1]
					}
				}
			}
		}
	}
	return ""
}
