package component

import "slices"

// Node is a composite's ordered list of live child entities. Children are
// stored as raw entity values so this package stays independent of the world.
type Node struct {
	Children []uint64
}

// AddChild appends child.
func (n *Node) AddChild(child uint64) {
	n.Children = append(n.Children, child)
}

// RemoveChild deletes the first occurrence of child and reports whether it
// was present.
func (n *Node) RemoveChild(child uint64) bool {
	i := slices.Index(n.Children, child)
	if i < 0 {
		return false
	}
	n.Children = slices.Delete(n.Children, i, i+1)
	return true
}

// ParentNode is a non-owning back-link from a child to its container.
type ParentNode struct {
	Parent uint64
}

var (
	NodeComponent       = NewComponent[Node]()
	ParentNodeComponent = NewComponent[ParentNode]()
)
