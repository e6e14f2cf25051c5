package arr

import "fmt"

// Tuple2 is the element type produced by [Product2].
type Tuple2[A, B any] struct {
	First  A
	Second B
}

// String returns "[first second]", matching how fmt prints a product tuple.
func (t Tuple2[A, B]) String() string {
	return fmt.Sprintf("[%v %v]", t.First, t.Second)
}

// Values returns the tuple as an untyped slice.
func (t Tuple2[A, B]) Values() []any { return []any{t.First, t.Second} }

// Tuple3 is the element type produced by [Product3].
type Tuple3[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

func (t Tuple3[A, B, C]) String() string {
	return fmt.Sprintf("[%v %v %v]", t.First, t.Second, t.Third)
}

// Values returns the tuple as an untyped slice.
func (t Tuple3[A, B, C]) Values() []any { return []any{t.First, t.Second, t.Third} }

// Tuple4 is the element type produced by [Product4].
type Tuple4[A, B, C, D any] struct {
	First  A
	Second B
	Third  C
	Fourth D
}

func (t Tuple4[A, B, C, D]) String() string {
	return fmt.Sprintf("[%v %v %v %v]", t.First, t.Second, t.Third, t.Fourth)
}

// Values returns the tuple as an untyped slice.
func (t Tuple4[A, B, C, D]) Values() []any {
	return []any{t.First, t.Second, t.Third, t.Fourth}
}
