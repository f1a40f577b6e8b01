package usecase

import "github.com/riskibarqy/season-insights/internal/platform/tracing"

var tracer = tracing.New("usecase")
