package planner

import (
	"context"
	"strings"
	"time"

	"github.com/akiyamakenta/manabiya/internal/domain"
	"github.com/akiyamakenta/manabiya/internal/llm"
	"github.com/google/uuid"
)

// RoadmapRequest describes the learning goal a roadmap should cover.
type RoadmapRequest struct {
	Goal        string
	Timeframe   string
	UserLevel   string
	Preferences []string
}

// RoadmapGenerator builds a topic-tree learning roadmap for a goal.
// The result always contains at least one node with a fresh unique id.
type RoadmapGenerator interface {
	Generate(ctx context.Context, req RoadmapRequest) domain.Roadmap
}

type roadmapGenerator struct {
	client llm.CompletionClient
	now    func() time.Time
}

// NewRoadmapGenerator creates a RoadmapGenerator backed by the given client.
func NewRoadmapGenerator(client llm.CompletionClient) RoadmapGenerator {
	return &roadmapGenerator{client: client, now: time.Now}
}

type roadmapNodeWire struct {
	Title          string            `json:"title"`
	Description    string            `json:"description"`
	Level          string            `json:"level"`
	Category       string            `json:"category"`
	Importance     string            `json:"importance"`
	EstimatedHours any               `json:"estimatedHours"`
	Children       []roadmapNodeWire `json:"children"`
}

type milestoneWire struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	NodeIDs     []string `json:"nodeIds"`
}

type roadmapWire struct {
	Title               string            `json:"title"`
	Description         string            `json:"description"`
	GoalDescription     string            `json:"goalDescription"`
	EstimatedTotalHours any               `json:"estimatedTotalHours"`
	Nodes               []roadmapNodeWire `json:"nodes"`
	Milestones          []milestoneWire   `json:"milestones"`
}

func (s *roadmapGenerator) Generate(ctx context.Context, req RoadmapRequest) domain.Roadmap {
	resp, err := s.client.Complete(ctx, llm.CompletionRequest{
		Task:         llm.TaskRoadmap,
		SystemPrompt: roadmapSystemPrompt,
		UserPrompt:   buildRoadmapUserPrompt(req),
	})
	if err != nil {
		return DefaultRoadmap(req.Goal)
	}

	wire, err := llm.ExtractJSON[roadmapWire](resp.Text, nil)
	if err != nil {
		return DefaultRoadmap(req.Goal)
	}

	nodes := repairNodes(wire.Nodes, "")
	if len(nodes) == 0 {
		return DefaultRoadmap(req.Goal)
	}

	total := floatOrDefault(wire.EstimatedTotalHours, 0)
	if total <= 0 {
		total = sumNodeHours(nodes)
	}

	milestones := make([]domain.Milestone, 0, len(wire.Milestones))
	for _, m := range wire.Milestones {
		if strings.TrimSpace(m.Title) == "" {
			continue
		}
		milestones = append(milestones, domain.Milestone{
			Title:       m.Title,
			Description: strings.TrimSpace(m.Description),
			NodeIDs:     m.NodeIDs,
		})
	}

	return domain.Roadmap{
		ID:                  uuid.NewString(),
		Title:               stringOrDefault(wire.Title, req.Goal+"の学習ロードマップ"),
		Description:         strings.TrimSpace(wire.Description),
		GoalDescription:     stringOrDefault(wire.GoalDescription, req.Goal),
		EstimatedTotalHours: total,
		Nodes:               nodes,
		Milestones:          milestones,
	}
}

// repairNodes recursively repairs a wire node tree: title-less nodes are
// dropped with their subtrees, every surviving node gets a fresh id and a
// ParentID pointing at its actual parent.
func repairNodes(wires []roadmapNodeWire, parentID string) []domain.RoadmapNode {
	nodes := make([]domain.RoadmapNode, 0, len(wires))
	for _, w := range wires {
		if strings.TrimSpace(w.Title) == "" {
			continue
		}
		node := domain.RoadmapNode{
			ID:             uuid.NewString(),
			Title:          w.Title,
			Description:    strings.TrimSpace(w.Description),
			Level:          domain.CoerceLevel(w.Level),
			Category:       stringOrDefault(w.Category, "general"),
			Importance:     domain.CoerceImportance(w.Importance),
			EstimatedHours: floatOrDefault(w.EstimatedHours, 5),
			ParentID:       parentID,
		}
		node.Children = repairNodes(w.Children, node.ID)
		nodes = append(nodes, node)
	}
	return nodes
}

func sumNodeHours(nodes []domain.RoadmapNode) float64 {
	var total float64
	for _, n := range nodes {
		total += n.EstimatedHours
		total += sumNodeHours(n.Children)
	}
	return total
}
