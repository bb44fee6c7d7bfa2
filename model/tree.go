package model

// RemoveChild unlinks c from m's children. It is a no-op if c is not
// currently one of m's children.
func (m *Model) RemoveChild(c *Model) {
	for i, existing := range m.children {
		if existing == c {
			m.children = append(m.children[:i], m.children[i+1:]...)
			return
		}
	}
}

// IsAntecedent reports whether m is an ancestor of other (strictly above
// it in the tree, so a model is never its own antecedent).
func (m *Model) IsAntecedent(other *Model) bool {
	for p := other.parent; p != nil; p = p.parent {
		if p == m {
			return true
		}
	}
	return false
}

// IsDescendent reports whether m is a descendant of other.
func (m *Model) IsDescendent(other *Model) bool {
	return other.IsAntecedent(m)
}

// Root walks up the parent chain and returns the topmost ancestor (m
// itself if it has no parent).
func (m *Model) Root() *Model {
	r := m
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// IsRelated reports whether m and other share a root, which covers
// self, ancestor/descendant pairs, and siblings/cousins under the same
// root alike.
func (m *Model) IsRelated(other *Model) bool {
	return m.Root() == other.Root()
}
