package trie

const alphabetSize = 'z' - 'a' + 1

type node struct {
	children   [alphabetSize]*node
	childCount int
	label      byte
	depth      int
}

func newNode(label byte, depth int) *node {
	return &node{
		label: label,
		depth: depth,
	}
}

func (n *node) ChildCount() int {
	return n.childCount
}

// Child returns the child labelled c, or nil when c does not continue from n.
func (n *node) Child(c byte) *node {
	return n.children[c-'a']
}

func (n *node) Label() byte {
	return n.label
}

func (n *node) Depth() int {
	return n.depth
}

func (n *node) IsRoot() bool {
	return n.depth == 0
}

// IsTerminal reports whether no inserted string extends the path ending at n.
func (n *node) IsTerminal() bool {
	return n.depth > 0 && n.childCount == 0
}

// set installs a new child for c. The slot must be empty.
func (n *node) set(c byte) *node {
	child := newNode(c, n.depth+1)
	n.children[c-'a'] = child
	n.childCount++
	return child
}
