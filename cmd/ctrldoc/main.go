// Command ctrldoc writes a Markdown summary of the HTTP handlers declared in
// one controller source file.
//
//	ctrldoc src/main/java/com/foodmobile/server/controllers/ItemController.java
//
// The document is written next to the input with ".md" appended.
package main

import (
	"context"
	"errors"
	"os"
)

// Exit codes.
const (
	exitOK     = 0
	exitRun    = 1
	exitConfig = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	var ce *configError
	switch {
	case err == nil:
		return exitOK
	case errors.As(err, &ce):
		return exitConfig
	default:
		return exitRun
	}
}
