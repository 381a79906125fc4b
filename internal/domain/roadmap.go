package domain

// RoadmapNode is one topic in a learning roadmap. Nodes form a forest;
// every non-root node's ParentID equals its actual parent's ID.
type RoadmapNode struct {
	ID             string        `json:"id"`
	Title          string        `json:"title"`
	Description    string        `json:"description"`
	Level          Level         `json:"level"`
	Category       string        `json:"category"`
	Importance     Importance    `json:"importance"`
	EstimatedHours float64       `json:"estimatedHours"`
	ParentID       string        `json:"parentId,omitempty"`
	Children       []RoadmapNode `json:"children,omitempty"`
}

// Milestone marks a checkpoint within a roadmap.
type Milestone struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	NodeIDs     []string `json:"nodeIds,omitempty"`
}

// Roadmap is a full learning roadmap: a forest of topic nodes plus milestones.
type Roadmap struct {
	ID                  string        `json:"id"`
	Title               string        `json:"title"`
	Description         string        `json:"description"`
	GoalDescription     string        `json:"goalDescription"`
	EstimatedTotalHours float64       `json:"estimatedTotalHours"`
	Nodes               []RoadmapNode `json:"nodes"`
	Milestones          []Milestone   `json:"milestones"`
}

// MicroTask is a small concrete task attached to a roadmap node.
type MicroTask struct {
	ID               string          `json:"id"`
	RoadmapNodeID    string          `json:"roadmapNodeId"`
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	Type             MicroTaskType   `json:"type"`
	Difficulty       Difficulty      `json:"difficulty"`
	EstimatedMinutes int             `json:"estimatedMinutes"`
	Instructions     []string        `json:"instructions"`
	Resources        []string        `json:"resources"`
	Hints            []string        `json:"hints"`
	Status           MicroTaskStatus `json:"status"`
}

// WalkNodes visits every node in the forest depth-first.
func (r *Roadmap) WalkNodes(visit func(node *RoadmapNode, parent *RoadmapNode)) {
	var walk func(nodes []RoadmapNode, parent *RoadmapNode)
	walk = func(nodes []RoadmapNode, parent *RoadmapNode) {
		for i := range nodes {
			visit(&nodes[i], parent)
			walk(nodes[i].Children, &nodes[i])
		}
	}
	walk(r.Nodes, nil)
}
