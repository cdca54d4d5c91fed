package tm

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'revta.tm'.
func tracer() tracing.Trace {
	return tracing.Select("revta.tm")
}
