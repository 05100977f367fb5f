package assert_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/LerianStudio/lib-assert/assert"
)

func ExampleSetHandler() {
	// Install a handler that records failures and asks execution to continue.
	assert.SetHandler(func(expression, file string, line int, function string) int {
		fmt.Println("intercepted:", expression)
		return assert.StatusContinue
	})
	defer assert.ClearHandler()

	asserter := assert.New(context.Background(), nil, "orders", "checkout")

	err := asserter.That(context.Background(), false, "cart must not be empty")

	fmt.Println(errors.Is(err, assert.ErrAssertionFailed))
	// Output:
	// intercepted: cart must not be empty
	// true
}

func ExampleInvoke() {
	assert.SetHandler(func(expression, file string, line int, function string) int {
		fmt.Printf("%s at %s:%d in %s\n", expression, file, line, function)
		return assert.StatusContinue
	})
	defer assert.ClearHandler()

	status := assert.Invoke("x > 0", "foo.c", 42, "bar")

	fmt.Println(status == assert.StatusContinue)
	// Output:
	// x > 0 at foo.c:42 in bar
	// true
}
