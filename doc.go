// Package notch adjusts the rectangle a device reports for its top screen
// cutout (notch or camera island) using caller-supplied override rules.
//
// Users import this single package for the complete public API: geometry
// types, rules, the [Adjuster] holding the process-wide rules, and
// [Consumer] contexts holding per-consumer rules.
//
// Rules are resolved in a fixed order, stopping at the first match:
// consumer exact, consumer prefix, process-wide exact, process-wide prefix.
// The matching rule scales the rectangle around its horizontal center and
// keeps its top edge. With no matching rule the reported rectangle is
// returned unchanged.
package notch
