package numeric

import (
	"math"
	"testing"
)

type celsius float64

type vec struct{ x, y int }

func (v vec) Add(o vec) vec { return vec{v.x + o.x, v.y + o.y} }

func TestIsFloat(t *testing.T) {
	if !IsFloat[float64]() || !IsFloat[float32]() || !IsFloat[celsius]() {
		t.Error("expected float kinds to report true")
	}
	if IsFloat[int]() || IsFloat[uint8]() || IsFloat[int64]() {
		t.Error("expected integer kinds to report false")
	}
}

func TestNeumaier_MagnitudeDisparity(t *testing.T) {
	terms := []float64{1e16, 1, -1e16}

	naive := 0.0
	var acc Neumaier[float64]
	for _, v := range terms {
		naive += v
		acc.Add(v)
	}

	if naive != 0 {
		t.Fatalf("expected naive sum to lose the 1, got %v", naive)
	}
	if got := acc.Result(); got != 1 {
		t.Errorf("compensated sum = %v, want 1", got)
	}
	if acc.Len() != 3 {
		t.Errorf("Len() = %d, want 3", acc.Len())
	}
}

func TestNeumaier_ManySmallTerms(t *testing.T) {
	var acc Neumaier[float64]
	naive := 0.0
	for i := 0; i < 1_000_000; i++ {
		acc.Add(0.1)
		naive += 0.1
	}
	exact := 100000.0
	if math.Abs(acc.Result()-exact) > math.Abs(naive-exact) {
		t.Errorf("compensated error %g exceeds naive error %g",
			math.Abs(acc.Result()-exact), math.Abs(naive-exact))
	}
	if math.Abs(acc.Result()-exact) > 1e-6 {
		t.Errorf("compensated sum %v too far from %v", acc.Result(), exact)
	}
}

func TestNeumaier_Float32(t *testing.T) {
	var acc Neumaier[float32]
	for _, v := range []float32{1e8, 1, -1e8} {
		acc.Add(v)
	}
	if got := acc.Result(); got != 1 {
		t.Errorf("float32 compensated sum = %v, want 1", got)
	}
}

func TestNeumaier_IntegersPlain(t *testing.T) {
	var acc Neumaier[int]
	for _, v := range []int{5, -2, 10} {
		acc.Add(v)
	}
	if acc.Result() != 13 || acc.Error() != 0 || acc.Sum() != 13 {
		t.Errorf("got sum=%d err=%d, want 13 and 0", acc.Sum(), acc.Error())
	}
}

func TestNeumaier_Empty(t *testing.T) {
	var acc Neumaier[float64]
	if acc.Result() != 0 {
		t.Errorf("empty sum = %v, want 0", acc.Result())
	}
	if _, ok := Mean(&acc); ok {
		t.Error("expected no mean for empty sum")
	}
}

func TestMean(t *testing.T) {
	var acc Neumaier[float64]
	for _, v := range []float64{1e16, 1, -1e16, 2} {
		acc.Add(v)
	}
	got, ok := Mean(&acc)
	if !ok {
		t.Fatal("expected a mean")
	}
	if got != 0.75 {
		t.Errorf("Mean = %v, want 0.75", got)
	}
}

func TestNeumaier_NonFinite(t *testing.T) {
	inf := math.Inf(1)
	tests := []struct {
		name  string
		terms []float64
		want  float64
	}{
		{"positive infinity", []float64{1, inf}, inf},
		{"negative infinity", []float64{math.Inf(-1), 2}, math.Inf(-1)},
		{"overflow", []float64{math.MaxFloat64, math.MaxFloat64}, inf},
		{"infinity then finite terms", []float64{inf, 1e16, 1, -1e16}, inf},
		{"opposite infinities", []float64{inf, math.Inf(-1)}, math.NaN()},
		{"NaN", []float64{1, math.NaN(), 2}, math.NaN()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var acc Neumaier[float64]
			naive := 0.0
			for _, v := range tt.terms {
				acc.Add(v)
				naive += v
			}
			got := acc.Result()
			if math.IsNaN(tt.want) {
				if !math.IsNaN(got) {
					t.Errorf("Result = %v, want NaN", got)
				}
				return
			}
			if got != tt.want || got != naive {
				t.Errorf("Result = %v, want %v (naive %v)", got, tt.want, naive)
			}
		})
	}
}

func TestMean_NonFinite(t *testing.T) {
	var acc Neumaier[float64]
	for _, v := range []float64{math.Inf(1), 2} {
		acc.Add(v)
	}
	if got, ok := Mean(&acc); !ok || !math.IsInf(got, 1) {
		t.Errorf("Mean = %v, want +Inf", got)
	}

	var f32 Neumaier[float32]
	f32.Add(math.MaxFloat32)
	f32.Add(math.MaxFloat32)
	if got, _ := Mean(&f32); !math.IsInf(float64(got), 1) {
		t.Errorf("float32 Mean = %v, want +Inf", got)
	}
}

func TestFold(t *testing.T) {
	f := NewFold(vec{})
	for _, v := range []vec{{1, 2}, {3, 4}, {-1, 0}} {
		f.Add(v)
	}
	if got := f.Result(); got != (vec{3, 6}) {
		t.Errorf("Fold = %v, want {3 6}", got)
	}
}
