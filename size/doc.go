// Package size describes what is statically knowable about the number of
// elements a sequence will still yield.
//
// An Info is produced by an enumerator's Measure method and combined by
// pipeline stages (Add for concatenation, LimitTo for take, Subtract for
// skip, Filtered for filters). Terminal operators use the result to skip
// work: Count returns an Exact value without iterating, Any answers from a
// provably empty or provably non-empty measure.
//
// Every combinator is conservative. An Info never claims more than holds
// for the real yielded count.
//
//	a := size.ExactOf(3)
//	b := size.AtMost(10)
//	a.Add(b)               // KnownBound(13)
//	a.ProvesDifferent(b)   // false, 3 fits under 10
package size
