package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/pennyflow/backend/internal/models"
)

// GoalEditable represents all user configurable parameters of a
// savings goal.
type GoalEditable struct {
	Description   string     `json:"description" example:"Emergency fund"`
	TargetAmount  *Amount    `json:"target_amount" example:"5000.00"`
	CurrentAmount *Amount    `json:"current_amount" example:"1250.00"`
	Deadline      *time.Time `json:"deadline" example:"2024-12-31T00:00:00Z"`
}

// Goal is a savings goal as it is returned by the API.
type Goal struct {
	ID            uuid.UUID  `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	Description   string     `json:"description" example:"Emergency fund"`
	TargetAmount  Amount     `json:"target_amount" example:"5000.00"`
	CurrentAmount Amount     `json:"current_amount" example:"1250.00"`
	Deadline      *time.Time `json:"deadline" example:"2024-12-31T00:00:00Z"`
}

func newGoal(goal models.Goal) Goal {
	return Goal{
		ID:            goal.ID,
		Description:   goal.Description,
		TargetAmount:  newAmount(goal.TargetAmount),
		CurrentAmount: newAmount(goal.CurrentAmount),
		Deadline:      goal.Deadline,
	}
}

type GoalResponse struct {
	Data  Goal    `json:"data"`  // The goal data
	Error *string `json:"error"` // The error, if any occurred
}

type GoalListResponse struct {
	Data  []Goal  `json:"data"`  // List of goals
	Error *string `json:"error"` // The error, if any occurred
}
