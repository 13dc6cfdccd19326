package recommendation

// scoreOutcome is the tagged result of one scoring stage: either a vector of
// per-candidate scores or a degradation that the orchestrator replaces with
// the uniform neutral vector. Stages never abort the request.
type scoreOutcome struct {
	scores   []float64
	degraded bool
	reason   string
}

func scored(scores []float64) scoreOutcome {
	return scoreOutcome{scores: scores}
}

func degraded(reason string) scoreOutcome {
	return scoreOutcome{degraded: true, reason: reason}
}

const neutralScore = 0.5

// resolve returns the stage scores, substituting the uniform neutral vector
// when the stage degraded.
func (o scoreOutcome) resolve(n int) []float64 {
	if o.degraded || len(o.scores) != n {
		scores := make([]float64, n)
		for i := range scores {
			scores[i] = neutralScore
		}
		return scores
	}
	return o.scores
}
