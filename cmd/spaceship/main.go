// Command spaceship plans, optimises, verifies and displays spaceship tours.
//
// Usage:
//
//	spaceship solve PUZZLE [-o FILE] [--problem NAME]
//	spaceship optimize PUZZLE SOLUTION [-o FILE]
//	spaceship verify PUZZLE SOLUTION
//	spaceship view PUZZLE SOLUTION
//
// Settings come from flags, SPACESHIP_* environment variables and an optional
// config file, in that order of precedence.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
