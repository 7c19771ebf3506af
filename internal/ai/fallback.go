package ai

import "github.com/skillswap/skillswap-api/internal/types"

// FallbackRecommendations returns the fixed recommendation set used whenever
// the AI provider is unavailable, rate-limited, or returns something that
// fails validation.
func FallbackRecommendations() []types.Recommendation {
	return []types.Recommendation{
		{
			Title:            "Communication Skills",
			Name:             "Communication Skills",
			Category:         "Soft Skills",
			ProficiencyLevel: "Beginner",
			Description:      "Essential for professional growth across all domains",
		},
		{
			Title:            "Digital Marketing",
			Name:             "Digital Marketing",
			Category:         "Business",
			ProficiencyLevel: "Beginner",
			Description:      "Valuable skill for understanding online business strategies",
		},
		{
			Title:            "Data Analysis",
			Name:             "Data Analysis",
			Category:         "Technical",
			ProficiencyLevel: "Beginner",
			Description:      "Crucial for making data-driven decisions in any field",
		},
		{
			Title:            "Project Management",
			Name:             "Project Management",
			Category:         "Professional Skills",
			ProficiencyLevel: "Intermediate",
			Description:      "Helps in organizing and leading complex projects",
		},
		{
			Title:            "Emotional Intelligence",
			Name:             "Emotional Intelligence",
			Category:         "Soft Skills",
			ProficiencyLevel: "Beginner",
			Description:      "Improves interpersonal relationships and leadership",
		},
	}
}

// localChatResponses maps keywords to canned answers, checked in order so
// responses are deterministic.
var localChatResponses = []struct {
	keyword  string
	response string
}{
	{"hello", "Hi there! I'm your SkillSwap AI Assistant. How can I help you develop your skills today?"},
	{"skills", "SkillSwap is all about helping you discover, learn, and exchange skills. What specific skills are you interested in?"},
	{"programming", "Programming is a fantastic skill to develop! Would you like recommendations on learning languages or frameworks?"},
	{"mentor", "Finding a mentor can accelerate your skill development. SkillSwap can help connect you with experienced professionals."},
	{"network", "Professional networking is crucial for skill growth. I can provide tips on effective networking strategies."},
}

const genericChatResponse = "Interesting query! While I don't have a specific response, I'm here to support your skill development journey."
