package ruledsl

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'revta.ruledsl'.
func tracer() tracing.Trace {
	return tracing.Select("revta.ruledsl")
}
