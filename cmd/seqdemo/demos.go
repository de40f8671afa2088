package main

import (
	"cmp"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/inspect"
	"github.com/kbukum/seqkit/logger"
	"github.com/kbukum/seqkit/observability"
	"github.com/kbukum/seqkit/pipeline"
)

// demoEnv is what a demo may use besides the pipeline package. tracer and
// metrics are nil unless telemetry is enabled.
type demoEnv struct {
	log     *logger.Logger
	inspect inspect.Config
	tracer  trace.Tracer
	metrics *observability.Metrics
}

type demo struct {
	name string
	run  func(env *demoEnv) (string, error)
}

var demos = []demo{
	{"range-filter-sum", rangeFilterSum},
	{"compensated-sum", compensatedSum},
	{"stable-min", stableMin},
	{"mixed-concat", mixedConcat},
	{"equality-shortcut", equalityShortcut},
}

// observe dumps p when inspection is enabled, then returns p wrapped in
// the configured telemetry stages. The dump runs first because the
// wrapped pipeline is impure.
func observe[T any](env *demoEnv, name string, p *pipeline.Pipeline[T]) (*pipeline.Pipeline[T], error) {
	if err := inspect.Dump(env.log, name, p, env.inspect); err != nil {
		return nil, err
	}
	if env.tracer != nil {
		p = observability.Traced(p, env.tracer, name)
	}
	if env.metrics != nil {
		p = observability.Instrumented(p, env.metrics, name)
	}
	return p, nil
}

func rangeFilterSum(env *demoEnv) (string, error) {
	evens := pipeline.Filter(pipeline.Range(1, 101, 1), func(n int) bool { return n%2 == 0 })
	squares := pipeline.Map(evens, func(n int) int { return n * n })

	p, err := observe(env, "even-squares", squares)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("sum of even squares in [1,100] = %d (measure before: %s)", pipeline.Sum(p), squares.Measure()), nil
}

func compensatedSum(env *demoEnv) (string, error) {
	values := []float64{1e16, 1, -1e16}
	naive := 0.0
	for _, v := range values {
		naive += v
	}

	p, err := observe(env, "cancelling-floats", pipeline.FromSlice(values))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("naive = %g, compensated = %g", naive, pipeline.Sum(p)), nil
}

type runner struct {
	name    string
	seconds int
}

func stableMin(env *demoEnv) (string, error) {
	runners := []runner{{"ada", 62}, {"bo", 58}, {"cy", 71}, {"di", 58}, {"ed", 60}}

	p, err := observe(env, "runners", pipeline.FromSlice(runners))
	if err != nil {
		return "", err
	}
	fastest := pipeline.Min(p, func(a, b runner) bool { return a.seconds < b.seconds })
	w, ok := fastest.Get()
	if !ok {
		return "", errors.Empty("Min")
	}
	return fmt.Sprintf("fastest = %s (%ds), first of the tied runners", w.name, w.seconds), nil
}

func mixedConcat(env *demoEnv) (string, error) {
	ints := pipeline.FromSlice([]int{1, 2, 3})
	halves := pipeline.FromSlice([]float32{0.5, 1.5})
	big := pipeline.FromSlice([]float64{1e10})
	all := pipeline.Concat[float64](pipeline.Convert[float64](ints), pipeline.Convert[float64](halves), big)

	p, err := observe(env, "mixed-numbers", all)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d values (%s), sum = %.1f", pipeline.Count(all), all.Measure(), pipeline.Sum(p)), nil
}

func equalityShortcut(env *demoEnv) (string, error) {
	var pulls int
	counted := func(n int) *pipeline.Pipeline[int] {
		return pipeline.Tap(pipeline.Range(0, n, 1), func(int) { pulls++ })
	}

	var lines []string
	for _, pair := range [][2]int{{1000, 1001}, {1000, 1000}} {
		pulls = 0
		equal := pipeline.AreEqual(counted(pair[0]), counted(pair[1]))
		lines = append(lines, fmt.Sprintf("range(%d) == range(%d): %v after %d pulls", pair[0], pair[1], equal, pulls))
	}
	env.log.Debug("equality checked", logger.Fields(logger.FieldOperation, "AreEqual"))
	return strings.Join(lines, "; "), nil
}

// sortedNames lists the demos for the --only help text.
func sortedNames() []string {
	names := pipeline.Map(pipeline.FromSlice(demos), func(d demo) string { return d.name })
	return pipeline.ToList(pipeline.Sort(names, cmp.Compare[string]))
}
