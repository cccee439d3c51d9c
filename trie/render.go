package trie

// String returns the rendering of the whole trie.
func (t *Trie) String() string {
	return string(t.AppendRender(nil))
}

// AppendRender appends the rendering of the whole trie to dst.
//
// Every child of the root is wrapped in parentheses. Below the root a node
// with a single child is followed directly by that child, and a node with
// several children is followed by each child in parentheses. Children are
// always visited in alphabetical order.
func (t *Trie) AppendRender(dst []byte) []byte {
	return t.root.appendTo(dst)
}

// Render returns the rendering of the subtree whose path is prefix, starting
// with prefix's last letter. An empty prefix renders the whole trie. The
// result is false when prefix is not a path in the trie.
func (t *Trie) Render(prefix string) (string, bool, error) {
	if prefix == "" {
		return t.String(), true, nil
	}
	if err := validate(prefix); err != nil {
		return "", false, err
	}
	node := t.findNode(prefix)
	if node == nil {
		return "", false, nil
	}
	return string(node.appendTo(nil)), true, nil
}

func (n *node) appendTo(b []byte) []byte {
	if !n.IsRoot() {
		b = append(b, n.label)
	}
	switch {
	case n.childCount == 0:
		return b
	case n.childCount == 1 && !n.IsRoot():
		for _, child := range n.children {
			if child != nil {
				return child.appendTo(b)
			}
		}
	}
	for _, child := range n.children {
		if child == nil {
			continue
		}
		b = append(b, '(')
		b = child.appendTo(b)
		b = append(b, ')')
	}
	return b
}
