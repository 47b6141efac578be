// Command vocabdedup reconciles duplicate vocabulary entries across the CSV
// files of one directory.
package main

import "github.com/mesh-intelligence/vocabdedup/internal/cli"

func main() {
	cli.Execute()
}
