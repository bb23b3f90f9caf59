package graph

// Graph-level attribute names with contract semantics. All other attributes
// are opaque and passed through untouched.
const (
	AttrCRS            = "crs"
	AttrStreetsPerNode = "streets_per_node"
)

// EdgeID identifies one edge of a multigraph: source, target and the key
// distinguishing parallel edges.
type EdgeID struct {
	U   int64
	V   int64
	Key int
}

// MultiDiGraph is a directed multigraph whose nodes and edges carry
// free-form attribute maps, plus one graph-level attribute map. Nodes and
// edges keep insertion order.
type MultiDiGraph struct {
	Attrs map[string]interface{}

	nodes     map[int64]map[string]interface{}
	nodeOrder []int64
	edges     map[EdgeID]map[string]interface{}
	edgeOrder []EdgeID
}

func New() *MultiDiGraph {
	return &MultiDiGraph{
		Attrs: make(map[string]interface{}),
		nodes: make(map[int64]map[string]interface{}),
		edges: make(map[EdgeID]map[string]interface{}),
	}
}

// AddNode inserts or replaces a node and its attributes. A nil attrs is
// stored as an empty map.
func (g *MultiDiGraph) AddNode(id int64, attrs map[string]interface{}) {
	if attrs == nil {
		attrs = make(map[string]interface{})
	}
	if _, exists := g.nodes[id]; !exists {
		g.nodeOrder = append(g.nodeOrder, id)
	}
	g.nodes[id] = attrs
}

func (g *MultiDiGraph) HasNode(id int64) bool {
	_, ok := g.nodes[id]
	return ok
}

// NodeAttrs returns the attribute map of a node. The map is shared, not a
// copy.
func (g *MultiDiGraph) NodeAttrs(id int64) (map[string]interface{}, bool) {
	attrs, ok := g.nodes[id]
	return attrs, ok
}

// NodeIDs returns the node identifiers in insertion order.
func (g *MultiDiGraph) NodeIDs() []int64 {
	out := make([]int64, len(g.nodeOrder))
	copy(out, g.nodeOrder)
	return out
}

// AddEdge inserts an edge from u to v under the next free parallel key and
// returns that key. Endpoints are created when missing.
func (g *MultiDiGraph) AddEdge(u, v int64, attrs map[string]interface{}) int {
	key := 0
	for {
		if _, exists := g.edges[EdgeID{U: u, V: v, Key: key}]; !exists {
			break
		}
		key++
	}
	g.SetEdge(EdgeID{U: u, V: v, Key: key}, attrs)
	return key
}

// SetEdge inserts or replaces the edge with the exact (u, v, key) identity.
// Endpoints are created when missing.
func (g *MultiDiGraph) SetEdge(id EdgeID, attrs map[string]interface{}) {
	if attrs == nil {
		attrs = make(map[string]interface{})
	}
	if !g.HasNode(id.U) {
		g.AddNode(id.U, nil)
	}
	if !g.HasNode(id.V) {
		g.AddNode(id.V, nil)
	}
	if _, exists := g.edges[id]; !exists {
		g.edgeOrder = append(g.edgeOrder, id)
	}
	g.edges[id] = attrs
}

// EdgeAttrs returns the attribute map of an edge. The map is shared, not a
// copy.
func (g *MultiDiGraph) EdgeAttrs(id EdgeID) (map[string]interface{}, bool) {
	attrs, ok := g.edges[id]
	return attrs, ok
}

// EdgeIDs returns the edge identities in insertion order.
func (g *MultiDiGraph) EdgeIDs() []EdgeID {
	out := make([]EdgeID, len(g.edgeOrder))
	copy(out, g.edgeOrder)
	return out
}

func (g *MultiDiGraph) NumberOfNodes() int {
	return len(g.nodes)
}

func (g *MultiDiGraph) NumberOfEdges() int {
	return len(g.edges)
}

// Copy duplicates the graph. Attribute maps are copied so that mutating the
// copy's maps never touches the original; attribute values themselves are
// treated as immutable.
func (g *MultiDiGraph) Copy() *MultiDiGraph {
	out := New()
	out.Attrs = copyAttrs(g.Attrs)
	for _, id := range g.nodeOrder {
		out.AddNode(id, copyAttrs(g.nodes[id]))
	}
	for _, id := range g.edgeOrder {
		out.SetEdge(id, copyAttrs(g.edges[id]))
	}
	return out
}

// Clear removes all nodes and edges. Graph-level attributes stay.
func (g *MultiDiGraph) Clear() {
	g.nodes = make(map[int64]map[string]interface{})
	g.nodeOrder = nil
	g.edges = make(map[EdgeID]map[string]interface{})
	g.edgeOrder = nil
}

func copyAttrs(attrs map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(attrs))
	for k, v := range attrs {
		out[k] = v
	}
	return out
}
