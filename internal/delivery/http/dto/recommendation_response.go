package dto

type JobMatchResponse struct {
	ID         int     `json:"id"`
	Title      string  `json:"title"`
	Company    string  `json:"company"`
	MatchScore float64 `json:"match_score"`
}

type RecommendationResponse struct {
	MarketRecommendations        []string           `json:"market_recommendations"`
	CollaborativeRecommendations []string           `json:"collaborative_recommendations"`
	Analysis                     string             `json:"analysis"`
	JobMatches                   []JobMatchResponse `json:"job_matches"`
}

type SkillGapResponse struct {
	Skill      string  `json:"skill"`
	Importance float64 `json:"importance"`
}

type SkillGapsResponse struct {
	SkillGaps []SkillGapResponse `json:"skill_gaps"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresAt   string `json:"expires_at"`
}
