// Command folder folds whitespace separated values into a single result.
package main

import "github.com/npillmayer/folderer/internal/cli"

func main() {
	cli.Execute()
}
