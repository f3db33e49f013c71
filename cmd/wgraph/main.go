// Command wgraph reads graph commands from script files or stdin and
// writes the results to stdout.
package main

func main() {
	Execute()
}
