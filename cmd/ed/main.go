// Command ed is a line-oriented text editor modeled on the classic Unix ed.
package main

import (
	"os"

	"src.elv.sh/ed/pkg/buildinfo"
	"src.elv.sh/ed/pkg/ed"
	"src.elv.sh/ed/pkg/prog"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(&buildinfo.Program{}, &ed.Program{})))
}
