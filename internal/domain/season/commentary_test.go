package season

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommentOn(t *testing.T) {
	tests := []struct {
		name       string
		row        PlayerRow
		finishing  FinishingVerdict
		playmaking PlaymakingVerdict
	}{
		{
			name:       "difference exactly at margin matches expectation",
			row:        PlayerRow{Per90Gls: 1.0, Per90XG: 0.8, Per90Ast: 0.1},
			finishing:  FinishingMatches,
			playmaking: PlaymakingLow,
		},
		{
			name:       "difference above margin outperforms",
			row:        PlayerRow{Per90Gls: 1.01, Per90XG: 0.8, Per90Ast: 0.1},
			finishing:  FinishingOutperforms,
			playmaking: PlaymakingLow,
		},
		{
			name:       "goals well below xG underperforms",
			row:        PlayerRow{Per90Gls: 0.2, Per90XG: 0.6, Per90Ast: 0.1},
			finishing:  FinishingUnderperforms,
			playmaking: PlaymakingLow,
		},
		{
			name:       "assists at threshold are low",
			row:        PlayerRow{Per90Gls: 0.5, Per90XG: 0.5, Per90Ast: 0.3},
			finishing:  FinishingMatches,
			playmaking: PlaymakingLow,
		},
		{
			name:       "assists above threshold are high",
			row:        PlayerRow{Per90Gls: 0.5, Per90XG: 0.5, Per90Ast: 0.31},
			finishing:  FinishingMatches,
			playmaking: PlaymakingHigh,
		},
		{
			name:       "all zero",
			row:        PlayerRow{},
			finishing:  FinishingMatches,
			playmaking: PlaymakingLow,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := CommentOn(tc.row)
			assert.Equal(t, tc.finishing, got.Finishing)
			assert.Equal(t, tc.playmaking, got.Playmaking)
			assert.Equal(t, finishingSentences[tc.finishing]+" "+playmakingSentences[tc.playmaking], got.Text)
		})
	}
}

func TestCommentOn_TextOrderAndPurity(t *testing.T) {
	row := PlayerRow{Per90Gls: 1.2, Per90XG: 0.5, Per90Ast: 0.4, Per90XAG: 0.2}

	first := CommentOn(row)
	second := CommentOn(row)
	assert.Equal(t, first, second)

	assert.True(t, strings.HasPrefix(first.Text, "outperforms expected goals"))
	assert.True(t, strings.HasSuffix(first.Text, "high assist contribution, strong creative role."))
	assert.Equal(t, 1, strings.Count(first.Text, ". "))
}
