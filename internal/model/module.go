package model

// Difficulty of a learning module
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// LearningModule is a unit of static reading content
type LearningModule struct {
	ID            string     `json:"id" bson:"id"`
	Title         string     `json:"title" bson:"title"`
	Description   string     `json:"description" bson:"description"`
	Content       string     `json:"content" bson:"content"` // markdown
	Category      string     `json:"category" bson:"category"`
	Stage         Stage      `json:"user_stage" bson:"user_stage"`
	EstimatedTime int        `json:"estimated_time" bson:"estimated_time"` // minutes
	Difficulty    Difficulty `json:"difficulty" bson:"difficulty"`
	XPReward      int        `json:"xp_reward" bson:"xp_reward"`
	OrderIndex    int        `json:"order_index" bson:"order_index"`
}

// ModuleCompletion is returned from POST /api/modules/{id}/complete. An
// already-completed module is answered with Message alone.
type ModuleCompletion struct {
	Message   string   `json:"message"`
	XPEarned  *int     `json:"xp_earned,omitempty"`
	NewBadges []string `json:"new_badges"`
	NewLevel  *int     `json:"new_level,omitempty"`

	AlreadyCompleted bool `json:"-"`
}
