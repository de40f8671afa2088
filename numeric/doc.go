// Package numeric provides the number constraints and the summation
// strategies used by seqkit's aggregating terminal operators.
//
// Floating point sums use Neumaier's variant of Kahan summation: a running
// error term collects the low-order bits lost by each addition and is
// added back at the end. Integer sums accumulate directly.
//
//	var acc numeric.Neumaier[float64]
//	for _, v := range []float64{1e16, 1, -1e16} {
//	    acc.Add(v)
//	}
//	acc.Result() // 1, where naive addition gives 0
package numeric
