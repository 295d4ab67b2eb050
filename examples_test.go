package purefn_test

import (
	"fmt"
	"strings"

	"github.com/Pure-Company/purefn"
)

// ============================================================================
// Example 1: Building functions from specifications
// ============================================================================

// Example_specifications shows the shapes Fn understands
func Example_specifications() {
	add, _ := purefn.Fn("+")
	inc, _ := purefn.Fn("+", 1)
	upper, _ := purefn.Fn(".upper")
	pair, _ := purefn.Fn(purefn.Tuple{0, 1})
	vowel, _ := purefn.Fn(purefn.NewSet("a", "e", "i", "o", "u"))

	v, _ := add.Call(3, 4)
	fmt.Println(v)
	v, _ = inc.Call(4)
	fmt.Println(v)
	v, _ = upper.Call("abc")
	fmt.Println(v)
	v, _ = pair.Call([]int{10, 20, 30})
	fmt.Println(v)
	v, _ = vowel.Call("e")
	fmt.Println(v)

	// Output:
	// 7
	// 5
	// ABC
	// [10 20]
	// true
}

// ============================================================================
// Example 2: Composition and partial application
// ============================================================================

// Example_composition chains ordinary Go functions with operators
func Example_composition() {
	shout := purefn.MustFn(strings.ToUpper).
		Then(purefn.MustFn("++", "!"))
	v, _ := shout.Call("hello")
	fmt.Println(v)

	// Left fixes leading arguments, Right trailing ones
	tenMinus := purefn.MustLFn("-", 10)
	minusTen := purefn.MustFn("-", 10)
	a, _ := tenMinus.Call(3)
	b, _ := minusTen.Call(3)
	fmt.Println(a, b)

	// Output:
	// HELLO!
	// 7 -7
}

// ============================================================================
// Example 3: Invertible functions
// ============================================================================

// Example_inverse solves 2x + 1 = 7
func Example_inverse() {
	f := purefn.MustFn("*", 2).Add(1)

	y, _ := f.Call(3)
	x, _ := f.Inverse().Call(7)
	fmt.Println(y, x)

	// Output:
	// 7 3
}

// ============================================================================
// Example 4: Operators on functions
// ============================================================================

// Example_operators combines functions called with the same arguments
func Example_operators() {
	sum := purefn.MustFn("f/", purefn.MustFn("+"))
	length := purefn.MustFn(func(xs []int) int { return len(xs) })
	mean := sum.Div(length)

	v, _ := mean.Call([]int{1, 2, 3, 4})
	fmt.Println(v)

	isEven := purefn.MustFn("%", 2).Eq(0)
	evens := purefn.MustFn("f<", isEven)
	v, _ = evens.Call([]int{1, 2, 3, 4})
	fmt.Println(v)

	// Output:
	// 2.5
	// [2 4]
}

// ============================================================================
// Example 5: Pipes
// ============================================================================

// Example_pipe threads a value through several steps
func Example_pipe() {
	v, err := purefn.NewPipe(5).
		IntoHead("+", 3). // 5 + 3
		IntoLast("-", 1). // 1 - 8
		Result()
	fmt.Println(v, err)

	_, err = purefn.NewPipe(1).IntoHead("/", 0).IntoHead("+", 1).Result()
	fmt.Println(err)

	// Output:
	// -7 <nil>
	// value: division by zero
}

// Example_optionalPipe stops once the value is empty
func Example_optionalPipe() {
	users := map[string]*struct{ Name string }{"u1": {Name: "ada"}}
	find := func(id string) *struct{ Name string } { return users[id] }

	for _, id := range []string{"u1", "u2"} {
		v, _ := purefn.NewOptionalPipe(id).
			IntoHead(find).
			IntoHead(".", "Name").
			IntoHead(".title").
			Result()
		fmt.Println(v)
	}

	// Output:
	// Ada
	// <nil>
}
