// Command girth generates random positioned graphs and reports their
// shortest cycles.
//
//	girth generate --vertices 12 --density 0.2 --seed 7 -o graph.yaml
//	girth cycle --graph graph.yaml --closest 0.4,0.6
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
