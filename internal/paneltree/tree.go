package paneltree

// Every function in this package treats its tree argument as immutable: a
// changed result is always a fresh node with copy-on-write ancestors, so
// callers can keep the previous tree as a fallback.

// FindPanel returns the node with id via depth-first search, or nil.
func FindPanel(tree Node, id string) Node {
	if tree == nil || id == "" {
		return nil
	}
	switch n := tree.(type) {
	case *Leaf:
		if n.ID == id {
			return n
		}
	case *Group:
		if n.ID == id {
			return n
		}
		for _, child := range n.Children {
			if found := FindPanel(child, id); found != nil {
				return found
			}
		}
	}
	return nil
}

// FindLeaf returns the leaf with id, or nil if id is absent or a group.
func FindLeaf(tree Node, id string) *Leaf {
	leaf, _ := FindPanel(tree, id).(*Leaf)
	return leaf
}

// FirstLeaf returns the depth-first first leaf of the tree, or nil.
func FirstLeaf(tree Node) *Leaf {
	switch n := tree.(type) {
	case *Leaf:
		return n
	case *Group:
		for _, child := range n.Children {
			if leaf := FirstLeaf(child); leaf != nil {
				return leaf
			}
		}
	}
	return nil
}

// Leaves returns all leaves of the tree in depth-first order.
func Leaves(tree Node) []*Leaf {
	var out []*Leaf
	collectLeaves(tree, &out)
	return out
}

func collectLeaves(tree Node, out *[]*Leaf) {
	switch n := tree.(type) {
	case *Leaf:
		*out = append(*out, n)
	case *Group:
		for _, child := range n.Children {
			collectLeaves(child, out)
		}
	}
}

// FindLeafWithTab returns the leaf containing tabID, or nil.
func FindLeafWithTab(tree Node, tabID string) *Leaf {
	for _, leaf := range Leaves(tree) {
		if leaf.TabIndex(tabID) >= 0 {
			return leaf
		}
	}
	return nil
}

// Update locates the node with id and replaces it with updater(node). A
// miss returns the tree unchanged; updater returning nil drops the node
// from its parent (the caller is expected to run Cleanup afterwards).
func Update(tree Node, id string, updater func(Node) Node) Node {
	if tree == nil || updater == nil {
		return tree
	}
	switch n := tree.(type) {
	case *Leaf:
		if n.ID == id {
			return updater(n)
		}
		return n
	case *Group:
		if n.ID == id {
			return updater(n)
		}
		changed := false
		children := make([]Node, 0, len(n.Children))
		sizes := make([]float64, 0, len(n.Sizes))
		for i, child := range n.Children {
			next := Update(child, id, updater)
			if next != child {
				changed = true
			}
			if next == nil {
				continue
			}
			children = append(children, next)
			if i < len(n.Sizes) {
				sizes = append(sizes, n.Sizes[i])
			}
		}
		if !changed {
			return n
		}
		out := n.clone()
		out.Children = children
		out.Sizes = sizes
		return out
	}
	return tree
}

// UpdateLeaf is Update restricted to leaves; updater misses on groups.
func UpdateLeaf(tree Node, id string, updater func(*Leaf) *Leaf) Node {
	return Update(tree, id, func(n Node) Node {
		leaf, ok := n.(*Leaf)
		if !ok {
			return n
		}
		next := updater(leaf)
		if next == nil {
			return nil
		}
		return next
	})
}

// Cleanup runs the bottom-up structural pass: a leaf with zero tabs
// collapses to nil, a group sheds collapsed children, and a group left
// with exactly one child is replaced by that child. It returns nil only
// when the whole tree collapsed; callers keep the previous tree then.
func Cleanup(tree Node) Node {
	switch n := tree.(type) {
	case nil:
		return nil
	case *Leaf:
		if len(n.Tabs) == 0 {
			return nil
		}
		return n
	case *Group:
		children := make([]Node, 0, len(n.Children))
		sizes := make([]float64, 0, len(n.Sizes))
		changed := false
		for i, child := range n.Children {
			next := Cleanup(child)
			if next != child {
				changed = true
			}
			if next == nil {
				continue
			}
			children = append(children, next)
			if i < len(n.Sizes) {
				sizes = append(sizes, n.Sizes[i])
			}
		}
		if len(children) == 0 {
			return nil
		}
		if len(children) == 1 {
			return children[0]
		}
		if !changed {
			return n
		}
		out := n.clone()
		out.Children = children
		out.Sizes = normalizeSizes(sizes, children)
		return out
	}
	return tree
}

// normalizeSizes keeps sizes aligned with children after a child was shed,
// falling back to an even split when the remaining weights are unusable.
func normalizeSizes(sizes []float64, children []Node) []float64 {
	if len(sizes) == len(children) {
		return sizes
	}
	out := make([]float64, len(children))
	for i := range out {
		out[i] = 100 / float64(len(children))
	}
	return out
}

// WellFormed reports whether the tree satisfies the structural invariants:
// groups hold at least two children with matching size weights, and every
// non-empty leaf's active tab resolves.
func WellFormed(tree Node) bool {
	switch n := tree.(type) {
	case nil:
		return false
	case *Leaf:
		if len(n.Tabs) == 0 {
			return true
		}
		return n.TabIndex(n.ActiveTabID) >= 0
	case *Group:
		if len(n.Children) < 2 || len(n.Sizes) != len(n.Children) {
			return false
		}
		for _, child := range n.Children {
			if !WellFormed(child) {
				return false
			}
		}
		return true
	}
	return false
}
