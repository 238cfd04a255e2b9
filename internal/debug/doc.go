// Package debug provides the diagnostics sinks used by the adjuster.
//
// Diagnostics are fire-and-forget: nothing a sink does changes the outcome of
// a query, and the [Nop] sink produces identical results. [FileSink] appends
// timestamped lines to a file; [SlogSink] forwards to a structured logger.
package debug
