package combine

import (
	"fmt"
	"sort"
	"strings"
)

// treeNode is a directory (children != nil) or a file in a path tree.
type treeNode struct {
	name     string
	children map[string]*treeNode
}

func (n *treeNode) isDir() bool {
	return n.children != nil
}

// RenderTree renders slash-separated relative paths as a directory tree.
// Directories come first, then files, each group sorted case-insensitively.
func RenderTree(paths []string) string {
	root := &treeNode{children: map[string]*treeNode{}}
	for _, p := range paths {
		node := root
		parts := strings.Split(p, "/")
		for i, part := range parts {
			if part == "" {
				continue
			}
			child, ok := node.children[part]
			if !ok {
				child = &treeNode{name: part}
				node.children[part] = child
			}
			if i < len(parts)-1 && child.children == nil {
				child.children = map[string]*treeNode{}
			}
			node = child
		}
	}

	var lines []string
	generateTreeRecursively(root, "", &lines)
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// generateTreeRecursively appends one line per node below dir.
func generateTreeRecursively(dir *treeNode, prefix string, lines *[]string) {
	entries := make([]*treeNode, 0, len(dir.children))
	for _, child := range dir.children {
		entries = append(entries, child)
	}

	// Sort entries: directories first, then files, alphabetically
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].isDir() != entries[j].isDir() {
			return entries[i].isDir()
		}
		li, lj := strings.ToLower(entries[i].name), strings.ToLower(entries[j].name)
		if li != lj {
			return li < lj
		}
		return entries[i].name < entries[j].name
	})

	for i, entry := range entries {
		connector := "├── "
		extension := "│   "
		if i == len(entries)-1 {
			connector = "└── "
			extension = "    "
		}

		if entry.isDir() {
			*lines = append(*lines, fmt.Sprintf("%s%s%s/", prefix, connector, entry.name))
			generateTreeRecursively(entry, prefix+extension, lines)
			continue
		}
		*lines = append(*lines, prefix+connector+entry.name)
	}
}
