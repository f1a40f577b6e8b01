package postgres

import (
	"regexp"
	"strings"

	"github.com/riskibarqy/season-insights/internal/platform/tracing"
)

const maxTracedQueryLength = 512

var (
	tracer          = tracing.New("infrastructure/repository/postgres")
	whitespaceRunRe = regexp.MustCompile(`\s+`)
)

// FormatQueryForTrace collapses whitespace and caps the statement recorded
// on spans.
func FormatQueryForTrace(query string) string {
	query = whitespaceRunRe.ReplaceAllString(strings.TrimSpace(query), " ")
	if len(query) <= maxTracedQueryLength {
		return query
	}
	return query[:maxTracedQueryLength] + "..."
}
