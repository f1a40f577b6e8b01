package httpapi

import "github.com/riskibarqy/season-insights/internal/platform/tracing"

// Only handler methods open spans; middleware and response helpers run
// inside the otelhttp server span.
var tracer = tracing.New("interfaces/httpapi")
