// Command vecplay replays vector operation scripts and prints the container
// state after every step.
//
//	vecplay run growth.yaml --log-level debug
//	vecplay demo --color
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
