// Command reext renames files by extension, optionally gated by a regular
// expression over their contents.
package main

import "github.com/mouse-blink/reext/cmd"

func main() {
	cmd.Execute()
}
