package season

const (
	finishingMargin     = 0.2
	playmakingThreshold = 0.3
)

type FinishingVerdict string

const (
	FinishingOutperforms   FinishingVerdict = "outperforms"
	FinishingUnderperforms FinishingVerdict = "underperforms"
	FinishingMatches       FinishingVerdict = "matches"
)

type PlaymakingVerdict string

const (
	PlaymakingHigh PlaymakingVerdict = "high"
	PlaymakingLow  PlaymakingVerdict = "low"
)

var finishingSentences = map[FinishingVerdict]string{
	FinishingOutperforms:   "outperforms expected goals, efficient finisher.",
	FinishingUnderperforms: "underperforms expected goals, finishing can improve.",
	FinishingMatches:       "goal output matches expectation.",
}

var playmakingSentences = map[PlaymakingVerdict]string{
	PlaymakingHigh: "high assist contribution, strong creative role.",
	PlaymakingLow:  "low assist contribution, limited creative role.",
}

// Commentary is the short rule-based verdict on one player.
type Commentary struct {
	Finishing  FinishingVerdict
	Playmaking PlaymakingVerdict
	Text       string
}

// CommentOn evaluates the finishing and playmaking rules on the per-90
// fields of row. Both comparisons are strict, so boundary values fall to the
// "matches" and "low" branches.
func CommentOn(row PlayerRow) Commentary {
	finishing := FinishingMatches
	switch {
	case row.Per90Gls > row.Per90XG+finishingMargin:
		finishing = FinishingOutperforms
	case row.Per90Gls < row.Per90XG-finishingMargin:
		finishing = FinishingUnderperforms
	}

	playmaking := PlaymakingLow
	if row.Per90Ast > playmakingThreshold {
		playmaking = PlaymakingHigh
	}

	return Commentary{
		Finishing:  finishing,
		Playmaking: playmaking,
		Text:       finishingSentences[finishing] + " " + playmakingSentences[playmaking],
	}
}
