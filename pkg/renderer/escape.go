package renderer

import (
	"net/url"
	"strings"
)

// memegen.link reserves "-", "_" and "/" in caption slugs; they must be
// doubled or substituted before percent-encoding so the encoding step does
// not mangle the substitutions.
var captionReplacer = strings.NewReplacer(
	"-", "--",
	"_", "__",
	"/", "~s",
)

// escapeCaption converts one caption line into a memegen URL path segment.
// Empty captions become the "_" placeholder the API expects for blank lines.
func escapeCaption(caption string) string {
	if caption == "" {
		return "_"
	}
	return url.PathEscape(captionReplacer.Replace(caption))
}

// captionPath joins caption lines into the slug portion of a memegen image
// URL. Zero captions still need one placeholder segment or the URL would
// collapse to the blank template path.
func captionPath(texts []string) string {
	if len(texts) == 0 {
		return "_"
	}
	parts := make([]string, len(texts))
	for i, t := range texts {
		parts[i] = escapeCaption(t)
	}
	return strings.Join(parts, "/")
}
