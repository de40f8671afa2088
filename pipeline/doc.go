// Package pipeline provides lazy, composable, pull-based sequence pipelines.
//
// A Pipeline is a cheap description of a sequence. No work happens until a
// terminal operator (Count, First, Sum, ToList, ...) asks it for an
// Enumerator and drives it. Each stage wraps the enumerator of the stage
// before it, so a traversal is a chain of direct calls with no goroutines
// and no buffering beyond what a stage needs (Sort, Distinct).
//
// Every enumerator also reports a size.Info through Measure. Stages combine
// their upstream measure with the size algebra, and terminal operators use
// it to skip work: Count returns an exact measure without iterating, Any
// answers without running an upstream sort, AreEqual rejects sequences whose
// sizes provably differ.
//
// # Operators
//
// Sources: FromSlice, FromSliceRef, FromSeq, FromChan, Range, Repeat,
// RepeatForever, Generate, Empty, Of, FromEnumerator.
//
// Stages: Map, Filter, TakeWhile, SkipWhile, Take, Skip, Tap, Deref,
// Convert, FlatMap, Chunk, Window, Sort, SortStable, Concat, Zip, Distinct, Union, Intersect,
// Except. Custom stages plug in through Chain and ChainJoined.
//
// Terminals: First, Single, Last and their Optional-returning forms,
// Count, Any, All, AllEqual, AreEqual, Sum, Avg, Min, Max, Reduce, ForEach,
// ToList, ToSet, ToMaterialized, ToSnapshot, Snapshot, Preview.
//
// # Usage
//
//	src := pipeline.Range(1, 11, 1)
//	evens := pipeline.Filter(src, func(n int) bool { return n%2 == 0 })
//	squares := pipeline.Map(evens, func(n int) int { return n * n })
//	total := pipeline.Sum(squares) // 220
//
// # Purity
//
// Pipelines carry a caller-asserted purity flag. Sources are pure unless
// documented otherwise; Tap and stages chained WithSideEffects make the
// result impure. Preview refuses impure pipelines so debugging never runs a
// side effect twice.
//
// Enumerators are single-pass and must not be shared between goroutines.
// A Pipeline may be enumerated any number of times, each time with a fresh
// enumerator.
package pipeline
