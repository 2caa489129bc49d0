// Command siteui drives the page behaviours from a terminal: field
// validation, interactive forms, counter animation and offline page
// rendering.
package main

import "os"

func main() {
	os.Exit(execute(newCLI(os.Stdin, os.Stdout, os.Stderr), os.Args[1:]))
}
