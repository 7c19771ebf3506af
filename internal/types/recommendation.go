package types

// Recommendation is a single AI-suggested skill to learn.
type Recommendation struct {
	Title            string `json:"title"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	Category         string `json:"category"`
	ProficiencyLevel string `json:"proficiencyLevel"`
}
