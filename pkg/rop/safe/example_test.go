package safe_test

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ib-77/ropsafe/pkg/rop"
	"github.com/ib-77/ropsafe/pkg/rop/safe"
)

func ExampleCall() {
	zero := 0.0
	r := safe.Call(func() float64 { return zero / zero })
	fmt.Println(r.IsSuccess(), r.Result())

	// Output: true NaN
}

func ExampleTry() {
	r := safe.Try(func() (any, error) {
		var v any
		return v, json.Unmarshal([]byte("{not json"), &v)
	})

	var se *json.SyntaxError
	fmt.Println(r.IsFailure(), errors.As(r.Err(), &se))

	// Output: true true
}

func ExampleCallOr() {
	n := safe.CallOr(func() int { panic("boom") }, safe.Default(-1))
	fmt.Println(n)

	// Output: -1
}

func Example_unwrap() {
	v := rop.Unwrap(safe.Call(func() string { panic("boom") }))
	fmt.Println(v.Empty())

	// Output: true
}

func Example_variant() {
	type kind string

	lookup := func(id int) rop.Result[string] {
		return safe.Try(func() (string, error) {
			switch id {
			case 1:
				return "", rop.NewVariant(kind("NotFound"), nil)
			case 2:
				return "", rop.NewVariant(kind("NotAllowed"), nil)
			}
			return "ada", nil
		})
	}

	for id := 1; id <= 3; id++ {
		r := lookup(id)
		switch tag, _ := rop.TagOf[kind](r.Err()); {
		case r.IsSuccess():
			fmt.Println(r.Result())
		case tag == "NotFound":
			fmt.Println("not found")
		case tag == "NotAllowed":
			fmt.Println("not allowed")
		}
	}

	// Output:
	// not found
	// not allowed
	// ada
}
