package searcher

const noNode = -1

// node holds the statistics of one position. Values are seen from the
// player who made the move leading into the node.
type node struct {
	parent   int // non-owning; noNode for the root
	action   int
	prior    float64
	visits   int
	value    float64 // W
	q        float64 // W/N
	children []int   // in creation order
}

// tree is a flat arena of nodes addressed by index; the root is node 0.
type tree struct {
	nodes []node
	cPuct float64
}

func newTree(cPuct float64) *tree {
	return &tree{
		nodes: []node{{parent: noNode, action: noNode}},
		cPuct: cPuct,
	}
}

func (t *tree) root() *node {
	return &t.nodes[0]
}

func (t *tree) isLeaf(i int) bool {
	return len(t.nodes[i].children) == 0
}

func (t *tree) addChild(parent, action int, prior float64) int {
	i := len(t.nodes)
	t.nodes = append(t.nodes, node{parent: parent, action: action, prior: prior})
	t.nodes[parent].children = append(t.nodes[parent].children, i)
	return i
}

// child looks up the child reached by action.
func (t *tree) child(parent, action int) (int, bool) {
	for _, c := range t.nodes[parent].children {
		if t.nodes[c].action == action {
			return c, true
		}
	}
	return noNode, false
}

// selectChild returns the child with the highest PUCT score. Ties go to
// the child created first.
func (t *tree) selectChild(parent int) int {
	p := &t.nodes[parent]
	best := noNode
	bestScore := 0.0
	for _, c := range p.children {
		child := &t.nodes[c]
		score := puct(child.q, child.prior, p.visits, child.visits, t.cPuct)
		if best == noNode || score > bestScore {
			best = c
			bestScore = score
		}
	}
	return best
}

// backup adds value to the leaf and every ancestor, flipping its sign at
// each ply.
func (t *tree) backup(leaf int, value float64) {
	for i := leaf; i != noNode; i = t.nodes[i].parent {
		n := &t.nodes[i]
		n.visits++
		n.value += value
		n.q = n.value / float64(n.visits)
		value = -value
	}
}

// rootVisits lists the root children's actions and visit counts in
// creation order.
func (t *tree) rootVisits() (actions []int, visits []int) {
	for _, c := range t.root().children {
		actions = append(actions, t.nodes[c].action)
		visits = append(visits, t.nodes[c].visits)
	}
	return actions, visits
}
