package hierarchy

import (
	"github.com/mohitkumar/streamhub/model"
)

// NodeSource lazily loads organization nodes and their children.
type NodeSource interface {
	Node(id int64) (*model.OrganizationNode, error)
	Children(parentId int64) ([]model.OrganizationNode, error)
}

// Traverser walks the organization tree rooted at a given node, accumulating
// the set of visited nodes. It keeps visited state for exactly one traversal
// and is not safe for concurrent use; obtain a fresh instance per run from
// TraverserBuilder.
type Traverser struct {
	source  NodeSource
	visited map[int64]struct{}
	nodes   []model.OrganizationNode
}

type TraverserBuilder struct {
	source NodeSource
}

func NewTraverserBuilder(source NodeSource) *TraverserBuilder {
	return &TraverserBuilder{source: source}
}

func (b *TraverserBuilder) Build() *Traverser {
	return &Traverser{
		source:  b.source,
		visited: make(map[int64]struct{}),
		nodes:   make([]model.OrganizationNode, 0),
	}
}

// Traverse walks the tree rooted at root. Each node is visited at most once;
// a node reachable twice (malformed or cyclic data) is skipped on the second
// encounter rather than looping.
func (t *Traverser) Traverse(root model.OrganizationNode) error {
	work := []model.OrganizationNode{root}
	for len(work) > 0 {
		node := work[0]
		work = work[1:]
		if _, seen := t.visited[node.Id]; seen {
			continue
		}
		t.visited[node.Id] = struct{}{}
		t.nodes = append(t.nodes, node)

		children, err := t.children(node)
		if err != nil {
			return err
		}
		for _, child := range children {
			if _, seen := t.visited[child.Id]; !seen {
				work = append(work, child)
			}
		}
	}
	return nil
}

func (t *Traverser) children(node model.OrganizationNode) ([]model.OrganizationNode, error) {
	if node.ChildIds == nil {
		// children not loaded yet
		return t.source.Children(node.Id)
	}
	children := make([]model.OrganizationNode, 0, len(node.ChildIds))
	for _, childId := range node.ChildIds {
		if _, seen := t.visited[childId]; seen {
			continue
		}
		child, err := t.source.Node(childId)
		if err != nil {
			return nil, err
		}
		children = append(children, *child)
	}
	return children, nil
}

// Nodes returns the de-duplicated set of visited nodes in visit order.
func (t *Traverser) Nodes() []model.OrganizationNode {
	return t.nodes
}

// OrganizationIds returns the ids of every visited node in visit order.
func (t *Traverser) OrganizationIds() []int64 {
	ids := make([]int64, 0, len(t.nodes))
	for _, n := range t.nodes {
		ids = append(ids, n.Id)
	}
	return ids
}

// Statistics are aggregate counts folded over the visited set.
type Statistics struct {
	OrganizationCount int
	OrganizationIds   []int64
}

func (t *Traverser) Statistics() Statistics {
	return Statistics{
		OrganizationCount: len(t.nodes),
		OrganizationIds:   t.OrganizationIds(),
	}
}
