package scoring

import "github.com/sachin9536/SEM-Campaign-Automation/types"

// Relevance computes the overall relevance score in [0,1]:
// 0.3 x volume (capped at 10k), 0.4 x inverse competition,
// 0.3 x commercial intent.
func Relevance(searchVolume int, competition, commercialIntent float64) float64 {
	volumeScore := float64(searchVolume) / 10000
	if volumeScore > 1.0 {
		volumeScore = 1.0
	}
	competitionScore := 1.0 - competition

	return volumeScore*0.3 + competitionScore*0.4 + commercialIntent*0.3
}

// ScoreRelevance fills a record's relevance score from its stored metrics.
func ScoreRelevance(r *types.KeywordRecord) {
	r.RelevanceScore = Relevance(r.SearchVolume, r.Competition, r.CommercialIntent)
}
