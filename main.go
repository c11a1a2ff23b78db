// sheetops is a CLI for automating Excel spreadsheet workflows.
package main

import "github.com/klytics/sheetops/cmd"

func main() {
	cmd.Execute()
}
