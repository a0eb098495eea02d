// Package errmsg provides a tiny error type that carries nothing but a message.
//
// It exposes a single concrete type ErrorMessage that implements contract.Message.
// Any error can be collapsed into one with From or Ensure, which makes it a convenient
// return type for a program's run function: the value prints as plain prose with no
// type name, quoting or structure around it.
//
// Key characteristics:
//   - Immutable value type, comparable with ==
//   - %v, %+v, %#v and %s all print the raw message
//   - Infallible construction from text, byte slices, errors and fmt.Stringer values
//   - Report and Main print "Error: <message>" and yield a failure exit status
//
// Typical use at an entry point:
//
//	func main() { errmsg.Main(run) }
//
//	func run() error {
//		data, err := os.ReadFile(path)
//		if err != nil {
//			return errmsg.From(err)
//		}
//		...
//	}
package errmsg
