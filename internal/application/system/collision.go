package system

import "github.com/younwookim/tilewalk/internal/domain/entity"

// CollisionSystem accepts or rejects candidate positions against the stage
type CollisionSystem struct {
	stage *entity.Stage
}

// NewCollisionSystem creates a collision system for stage
func NewCollisionSystem(stage *entity.Stage) *CollisionSystem {
	return &CollisionSystem{stage: stage}
}

// Resolve commits the candidate if its bounding box is clear of solid tiles.
// A rejected candidate is simply not committed.
func (s *CollisionSystem) Resolve(m *entity.Motion) bool {
	if s.stage.Blocks(m.BoundingBox()) {
		return false
	}
	m.CommitCandidate()
	return true
}
