// Package trie implements an uncompressed dictionary trie over lowercase
// ASCII letters.
//
// A string counts as present only while its last node is a leaf: inserting a
// longer string that extends it makes it unfindable again. Render output uses
// the nested notation where a non-branching run prints flat and every branch
// is wrapped in parentheses, e.g. "a(b)(c)".
package trie

import (
	"fmt"
	"io"
	"iter"
)

// Trie is not safe for concurrent use.
type Trie struct {
	root *node
	size int
}

func New() *Trie {
	return &Trie{root: newNode(0, 0)}
}

// Insert adds k to the trie. It reports true when at least one node was
// created, and false when the whole path of k already existed, either from an
// earlier insert of k or as a prefix of a longer string.
func (t *Trie) Insert(k string) (bool, error) {
	if err := validate(k); err != nil {
		return false, err
	}
	node := t.root
	for i := 0; i < len(k); i++ {
		child := node.Child(k[i])
		if child == nil {
			// everything below a new node is new as well
			for ; i < len(k); i++ {
				node = node.set(k[i])
				t.size++
			}
			return true, nil
		}
		node = child
	}
	return false, nil
}

// Find reports whether the path of k exists and ends in a leaf.
func (t *Trie) Find(k string) (bool, error) {
	if err := validate(k); err != nil {
		return false, err
	}
	node := t.findNode(k)
	return node != nil && node.IsTerminal(), nil
}

func (t *Trie) findNode(k string) *node {
	node := t.root
	for i := 0; i < len(k); i++ {
		if node = node.Child(k[i]); node == nil {
			return nil
		}
	}
	return node
}

// Len returns the number of nodes below the root.
func (t *Trie) Len() int {
	return t.size
}

func (t *Trie) Reset() {
	t.root = newNode(0, 0)
	t.size = 0
}

// Leaves yields the path of every leaf in alphabetical order.
func (t *Trie) Leaves() iter.Seq[string] {
	return func(yield func(string) bool) {
		var walk func(node *node, path []byte) bool
		walk = func(node *node, path []byte) bool {
			if node.IsTerminal() {
				return yield(string(path))
			}
			for _, child := range node.children {
				if child == nil {
					continue
				}
				if !walk(child, append(path, child.label)) {
					return false
				}
			}
			return true
		}
		walk(t.root, make([]byte, 0, 16))
	}
}

// Print writes one line per node to w, drawn as an indented tree. Leaves are
// marked with a trailing '.'.
func (t *Trie) Print(w io.Writer) error {
	var err error
	var printNode func(node *node, prefix string)
	printNode = func(node *node, prefix string) {
		last := lastChild(node)
		for i, child := range node.children {
			if child == nil || err != nil {
				continue
			}
			branch, indent := "├── ", "│   "
			if i == last {
				branch, indent = "└── ", "    "
			}
			leafMark := ""
			if child.IsTerminal() {
				leafMark = "."
			}
			if _, err = fmt.Fprintf(w, "%s%s%c%s\n", prefix, branch, child.label, leafMark); err != nil {
				return
			}
			printNode(child, prefix+indent)
		}
	}
	printNode(t.root, "")
	return err
}

func lastChild(n *node) int {
	for i := len(n.children) - 1; i >= 0; i-- {
		if n.children[i] != nil {
			return i
		}
	}
	return -1
}
