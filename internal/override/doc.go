// Package override resolves which adjustment rule applies to a device.
//
// Rules live in two independent [RuleSet]s: a process-wide set held by a
// [Registry] and a consumer-scoped set held by each [Scope]. [Resolve] walks
// a fixed sequence of [Tier]s (local exact, local prefix, global exact,
// global prefix) and returns the first matching rule. RuleSets are immutable;
// setters swap the whole set so readers never see a partial list.
package override
