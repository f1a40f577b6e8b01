package export

import "github.com/riskibarqy/season-insights/internal/platform/tracing"

var tracer = tracing.New("infrastructure/export")
