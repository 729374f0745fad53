// The main package for the jobfeed executable.
package main

import "github.com/remotestarter/jobfeed/cmd"

// main is the entry point of the application.
// It defers all execution to the Cobra CLI library.
func main() {
	cmd.Execute()
}
