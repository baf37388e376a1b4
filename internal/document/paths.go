package document

import (
	"sort"
	"strings"

	"github.com/MKhiriev/go-utils/guard"
)

// PathKind labels what a dotted path points at inside a document.
type PathKind string

const (
	KindComposite PathKind = "composite"
	KindSequence  PathKind = "sequence"
	KindLeaf      PathKind = "leaf"
)

// PathInfo describes one addressable path of a document.
type PathInfo struct {
	Path string
	Kind PathKind
}

// Paths lists every dotted path of doc, sorted lexicographically. These
// are the paths a strategy table can address.
func Paths(doc map[string]any) []PathInfo {
	var infos []PathInfo
	collect(doc, "", &infos)

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Path < infos[j].Path
	})

	return infos
}

// Lookup resolves a dotted path inside doc. The second result is false
// when a segment is missing or a middle segment is not a composite.
func Lookup(doc map[string]any, path string) (any, bool) {
	if path == "" {
		return doc, true
	}

	var current any = doc
	for _, segment := range strings.Split(path, ".") {
		node, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = node[segment]
		if !ok {
			return nil, false
		}
	}

	return current, true
}

func collect(node map[string]any, prefix string, infos *[]PathInfo) {
	for key, value := range node {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}

		switch {
		case guard.IsComposite(value):
			*infos = append(*infos, PathInfo{Path: path, Kind: KindComposite})
			collect(value.(map[string]any), path, infos)
		case guard.IsSequence(value):
			*infos = append(*infos, PathInfo{Path: path, Kind: KindSequence})
		default:
			*infos = append(*infos, PathInfo{Path: path, Kind: KindLeaf})
		}
	}
}
