// Package main demonstrates usage of the scg-errmsg package.
//
// It expects exactly one file path argument and prints the file's contents.
// Failures are printed as plain messages, e.g.
//
//	Error: Invalid input
//	Correct Usage: `example example/file/path.txt`
//
//	Error: open missing.txt: no such file or directory
package main

import (
	"fmt"
	"os"

	"github.com/next-trace/scg-errmsg/errmsg"
)

func main() {
	errmsg.Main(func() error { return run(os.Args[1:]) })
}

func run(args []string) error {
	path, err := pathArg(args)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return errmsg.From(err)
	}

	fmt.Print(string(data))

	return nil
}

// pathArg returns the only argument passed. If none or more were, it returns an ErrorMessage.
func pathArg(args []string) (string, error) {
	if len(args) != 1 {
		return "", errmsg.New("Invalid input\nCorrect Usage: `example example/file/path.txt`")
	}

	return args[0], nil
}
