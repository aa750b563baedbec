package main

import (
	"os"

	"elbow/cmd/elbow/subcmds"
	"elbow/logging"
)

// _main takes the command line arguments and returns an error rather than
// exiting, so tests can drive it.
func _main(cmdlineArgs []string) error {
	rootCmd := subcmds.NewRootCommand()
	rootCmd.SetArgs(cmdlineArgs)
	return rootCmd.Execute()
}

func main() {
	if err := _main(os.Args[1:]); err != nil {
		logging.Init(logging.MediumVerbosity) // just in case it wasn't initialized earlier
		logging.Errorf("%v. exiting...", err)
		os.Exit(1)
	}
}
