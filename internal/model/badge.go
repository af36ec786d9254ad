package model

// Badge is a static achievement definition
type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Requirement string `json:"requirement"`
	XPReward    int    `json:"xp_reward"`
}
