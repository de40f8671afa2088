package pipeline

import (
	"slices"
	"strconv"
	"testing"

	"github.com/kbukum/seqkit/size"
)

func TestMap(t *testing.T) {
	got := ToList(Map(FromSlice([]int{1, 2, 3}), func(n int) int { return n * 2 }))
	want := []int{2, 4, 6}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestMap_TypeConversion(t *testing.T) {
	got := ToList(Map(FromSlice([]int{1, 2}), strconv.Itoa))
	want := []string{"1", "2"}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestMap_CallsOncePerElement(t *testing.T) {
	calls := 0
	mapped := Map(Range(0, 6, 1), func(n int) int {
		calls++
		return n * 10
	})
	got := ToList(Filter(mapped, func(n int) bool { return n%20 == 0 }))
	if !slices.Equal(got, []int{0, 20, 40}) {
		t.Errorf("got %v", got)
	}
	if calls != 6 {
		t.Errorf("fn called %d times, want 6", calls)
	}
}

func TestMap_KeepsMeasure(t *testing.T) {
	p := Map(Range(0, 4, 1), func(n int) string { return strconv.Itoa(n) })
	if m := p.Measure(); m != size.ExactOf(4) {
		t.Errorf("measure = %v, want Exact(4)", m)
	}
}

func TestFilter(t *testing.T) {
	p := Filter(FromSlice([]int{1, 2, 3, 4, 5}), func(n int) bool { return n%2 == 0 })
	if got := ToList(p); !slices.Equal(got, []int{2, 4}) {
		t.Errorf("got %v, want [2 4]", got)
	}
	if m := p.Measure(); m != size.AtMost(5) {
		t.Errorf("measure = %v, want KnownBound(5)", m)
	}
}

func TestFilter_None(t *testing.T) {
	got := ToList(Filter(FromSlice([]int{1, 3}), func(n int) bool { return n%2 == 0 }))
	if len(got) != 0 {
		t.Errorf("expected empty, got %v", got)
	}
}

func TestFilter_Terminable(t *testing.T) {
	even := func(n int) bool { return n%2 == 0 }
	naturals := Generate(func(i int) int { return i })
	if k := Filter(naturals, even).Measure().Kind; k != size.Unknown {
		t.Errorf("kind = %v, want Unknown", k)
	}
	p := Filter(naturals, even, Terminable())
	if k := p.Measure().Kind; k != size.Unbounded {
		t.Errorf("kind = %v, want Unbounded", k)
	}
	if !p.IsPure() {
		t.Error("Terminable should not affect purity")
	}
}

func TestTakeWhile(t *testing.T) {
	p := TakeWhile(Generate(func(i int) int { return i }), func(n int) bool { return n < 4 })
	if got := ToList(p); !slices.Equal(got, []int{0, 1, 2, 3}) {
		t.Errorf("got %v", got)
	}
}

func TestSkipWhile(t *testing.T) {
	p := SkipWhile(FromSlice([]int{1, 2, 5, 1, 7}), func(n int) bool { return n < 3 })
	if got := ToList(p); !slices.Equal(got, []int{5, 1, 7}) {
		t.Errorf("got %v", got)
	}
}

func TestTake(t *testing.T) {
	tests := []struct {
		name string
		src  *Pipeline[int]
		n    int
		want []int
	}{
		{"fewer than source", Range(0, 10, 1), 3, []int{0, 1, 2}},
		{"more than source", Range(0, 2, 1), 5, []int{0, 1}},
		{"zero", Range(0, 2, 1), 0, []int{}},
		{"negative", Range(0, 2, 1), -1, []int{}},
		{"infinite source", RepeatForever(7), 2, []int{7, 7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Take(tt.src, tt.n)
			if got := Count(p); got != len(tt.want) {
				t.Errorf("Count = %d, want %d", got, len(tt.want))
			}
			if got := ToList(p); !slices.Equal(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTake_DoesNotOverPull(t *testing.T) {
	pulls := 0
	ToList(Take(counted(Range(0, 100, 1), &pulls), 3))
	if pulls != 3 {
		t.Errorf("pulled %d elements, want 3", pulls)
	}
}

func TestSkip(t *testing.T) {
	p := Skip(Range(0, 5, 1), 2)
	if m := p.Measure(); m != size.ExactOf(3) {
		t.Errorf("measure = %v, want Exact(3)", m)
	}
	if got := ToList(p); !slices.Equal(got, []int{2, 3, 4}) {
		t.Errorf("got %v", got)
	}
	if got := ToList(Skip(Range(0, 2, 1), 5)); len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
}

func TestTap(t *testing.T) {
	var seen []int
	p := Tap(FromSlice([]int{1, 2, 3}), func(n int) { seen = append(seen, n) })
	if len(seen) != 0 {
		t.Fatal("Tap ran before traversal")
	}
	got := ToList(p)
	if !slices.Equal(got, []int{1, 2, 3}) || !slices.Equal(seen, got) {
		t.Errorf("got %v, seen %v", got, seen)
	}
}

func TestDeref(t *testing.T) {
	items := []string{"a", "b"}
	owned := ToList(Deref(FromSliceRef(items)))
	items[0] = "z"
	if !slices.Equal(owned, []string{"a", "b"}) {
		t.Errorf("got %v, want copies unaffected by later writes", owned)
	}
}

func TestConvert(t *testing.T) {
	got := ToList(Convert[float64](FromSlice([]int16{1, -2})))
	if !slices.Equal(got, []float64{1, -2}) {
		t.Errorf("got %v", got)
	}
}

func TestFlatMap(t *testing.T) {
	p := FlatMap(Range(1, 4, 1), func(n int) Enumerable[int] { return Repeat(n, n) })
	if got := ToList(p); !slices.Equal(got, []int{1, 2, 2, 3, 3, 3}) {
		t.Errorf("got %v", got)
	}
}

func TestFlatMap_EmptyInner(t *testing.T) {
	p := FlatMap(Range(0, 3, 1), func(int) Enumerable[string] { return Empty[string]() })
	if Any(p) {
		t.Error("expected no elements")
	}
}

func TestChunk(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want [][]int
	}{
		{"uneven", 2, [][]int{{0, 1}, {2, 3}, {4}}},
		{"exact multiple", 5, [][]int{{0, 1, 2, 3, 4}}},
		{"size one", 1, [][]int{{0}, {1}, {2}, {3}, {4}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Chunk(Range(0, 5, 1), tt.n)
			if got := Count(p); got != len(tt.want) {
				t.Errorf("Count = %d, want %d", got, len(tt.want))
			}
			if got := ToList(p); !nestedEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestChunk_Empty(t *testing.T) {
	if got := ToList(Chunk(Empty[int](), 3)); len(got) != 0 {
		t.Errorf("got %v, want no chunks", got)
	}
}

func TestChunk_RejectsNonPositive(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for zero chunk size")
		}
	}()
	Chunk(Range(0, 5, 1), 0)
}

func TestWindow(t *testing.T) {
	p := Window(Range(1, 5, 1), 2)
	if m := p.Measure(); m != size.ExactOf(3) {
		t.Errorf("measure = %v, want Exact(3)", m)
	}
	want := [][]int{{1, 2}, {2, 3}, {3, 4}}
	if got := ToList(p); !nestedEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestWindow_ShorterThanSize(t *testing.T) {
	p := Window(Range(0, 2, 1), 3)
	if m := p.Measure(); !m.IsEmpty() {
		t.Errorf("measure = %v, want Exact(0)", m)
	}
	if got := ToList(p); len(got) != 0 {
		t.Errorf("got %v, want none", got)
	}
}
