//go:build !nofs

package core

import (
	"sort"
	"strings"
)

// zoneNode is one component of a zone name, such as "America" in
// "America/Argentina/Salta".
type zoneNode struct {
	children map[string]*zoneNode
	zone     bool
}

// ZoneTree renders zone names as a tree grouped by area:
//
//	├── America/
//	│   ├── Argentina/
//	│   │   └── Salta
//	│   └── Lima
//	└── UTC
//
// maxDepth limits how many levels are shown; 0 means no limit. Returns the
// tree and the number of zones and groups shown.
func ZoneTree(names []string, maxDepth int) (string, int, int) {
	root := &zoneNode{}
	for _, name := range names {
		node := root
		for _, part := range strings.Split(name, "/") {
			if node.children == nil {
				node.children = make(map[string]*zoneNode)
			}
			child, ok := node.children[part]
			if !ok {
				child = &zoneNode{}
				node.children[part] = child
			}
			node = child
		}
		node.zone = true
	}

	var sb strings.Builder
	var zoneCount, groupCount int
	buildTree(&sb, root, "", 0, maxDepth, &zoneCount, &groupCount)
	return sb.String(), zoneCount, groupCount
}

// buildTree recursively builds the tree structure.
func buildTree(sb *strings.Builder, node *zoneNode, prefix string, depth, maxDepth int, zoneCount, groupCount *int) {
	if maxDepth > 0 && depth >= maxDepth {
		return
	}

	names := make([]string, 0, len(node.children))
	for name := range node.children {
		names = append(names, name)
	}
	sort.Strings(names)

	for i, name := range names {
		child := node.children[name]
		isLast := i == len(names)-1

		var connector, childPrefix string
		if isLast {
			connector = "└── "
			childPrefix = prefix + "    "
		} else {
			connector = "├── "
			childPrefix = prefix + "│   "
		}

		// A name can be both a zone and a group.
		label := name
		if len(child.children) > 0 {
			label += "/"
			*groupCount++
		}
		if child.zone {
			*zoneCount++
		}

		sb.WriteString(prefix)
		sb.WriteString(connector)
		sb.WriteString(label)
		sb.WriteString("\n")

		if len(child.children) > 0 {
			buildTree(sb, child, childPrefix, depth+1, maxDepth, zoneCount, groupCount)
		}
	}
}
