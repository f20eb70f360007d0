package menu

import (
	"sort"
	"strings"

	"github.com/atomicstack/git-branch-control/internal/branch"
)

// RootID identifies the implicit root of the menu tree.
const RootID = "root"

// Node represents a menu entry definition within the registry tree.
type Node struct {
	ID            string
	Label         string
	Command       Command
	BranchCommand branch.Command
	Children      map[string]*Node
	order         int
}

// Leaf reports whether selecting the node runs an action instead of opening
// a submenu.
func (n *Node) Leaf() bool {
	return len(n.Children) == 0
}

// Registry exposes lookup utilities for menu definitions.
type Registry struct {
	nodes map[string]*Node
}

// BuildRegistry constructs the registry from the menu definitions.
func BuildRegistry() *Registry {
	nodes := make(map[string]*Node)

	ensure := func(id string) *Node {
		if node, ok := nodes[id]; ok {
			return node
		}
		node := &Node{ID: id, Children: make(map[string]*Node)}
		nodes[id] = node
		return node
	}

	ensure(RootID)
	for i, def := range definitions {
		node := ensure(def.id)
		node.Label = def.label
		node.Command = def.command
		node.BranchCommand = def.branch
		node.order = i
	}

	for id, node := range nodes {
		if id == RootID {
			continue
		}
		parentID, key := parentKey(id)
		parent := ensure(parentID)
		parent.Children[key] = node
	}

	return &Registry{nodes: nodes}
}

// Find locates a node by ID.
func (r *Registry) Find(id string) (*Node, bool) {
	node, ok := r.nodes[id]
	return node, ok
}

// Items lists the children of parentID in declaration order.
func (r *Registry) Items(parentID string) []Item {
	parent, ok := r.nodes[parentID]
	if !ok {
		return nil
	}
	children := make([]*Node, 0, len(parent.Children))
	for _, child := range parent.Children {
		children = append(children, child)
	}
	sort.Slice(children, func(i, j int) bool { return children[i].order < children[j].order })
	items := make([]Item, len(children))
	for i, child := range children {
		items[i] = Item{ID: child.ID, Label: child.Label}
	}
	return items
}

func parentKey(id string) (string, string) {
	if id == "" {
		return RootID, ""
	}
	if !strings.Contains(id, ":") {
		return RootID, id
	}
	idx := strings.LastIndex(id, ":")
	return id[:idx], id[idx+1:]
}
