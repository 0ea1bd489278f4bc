package pathutil

import (
	"regexp"
	"strings"
)

const uuidPattern = `[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`

// idSegment matches an ID-like path segment: a UUID, or anything under a
// resource collection that is not a known sub-resource name.
var idSegment = regexp.MustCompile(`^/(authors|magazines|articles)/(` + uuidPattern + `|[^/]+)(/[a-z-]+)?$`)

// NormalizePath converts paths carrying IDs into templates, so metrics
// labels stay bounded:
//
//	NormalizePath("/authors/2b1c…/articles")  // "/authors/:id/articles"
//	NormalizePath("/magazines/xyz")           // "/magazines/:id"
//	NormalizePath("/health")                  // "/health"
//
// Query strings and trailing slashes are stripped.
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	m := idSegment.FindStringSubmatch(path)
	if m == nil {
		return path
	}
	return "/" + m[1] + "/:id" + m[3]
}
