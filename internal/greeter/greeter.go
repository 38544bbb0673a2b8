// Package greeter provides the core functionality for the cli application.
//
// This package contains the greeting logic called from the command-line
// interface. The greeting is a single line of text; whether a name was
// supplied at all changes the output, so presence travels alongside the
// value rather than being inferred from emptiness.
//
// Example usage:
//
//	import "github.com/toozej/cli/internal/greeter"
//
//	func main() {
//		greeter.Run(os.Stdout, "Alice", true)
//		// Output: Hello, Alice!
//	}
package greeter

import (
	"fmt"
	"io"
)

// Greeting returns the greeting line for name. When present is false the
// generic greeting is returned regardless of name.
//
// The name is used verbatim: no trimming, no case changes, no escaping. An
// empty but present name therefore yields "Hello, !".
func Greeting(name string, present bool) string {
	if !present {
		return "Hello, world!"
	}
	return fmt.Sprintf("Hello, %s!", name)
}

// Run writes the greeting for name to w, followed by a newline.
func Run(w io.Writer, name string, present bool) {
	fmt.Fprintln(w, Greeting(name, present))
}
