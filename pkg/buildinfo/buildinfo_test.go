package buildinfo

import (
	"fmt"
	"testing"

	. "src.elv.sh/ed/pkg/prog/progtest"
)

func TestProgram(t *testing.T) {
	Test(t, &Program{},
		ThatEd("-version").WritesStdout(Value.Version+"\n"),
		ThatEd("-version", "-json").WritesStdout(mustToJSON(Value.Version)+"\n"),

		ThatEd("-buildinfo").WritesStdout(
			fmt.Sprintf(
				"Version: %v\nGo version: %v\nReproducible build: %v\n",
				Value.Version, Value.GoVersion, Value.Reproducible)),
		ThatEd("-buildinfo", "-json").WritesStdout(mustToJSON(Value)+"\n"),

		ThatEd().ExitsWith(1).WritesStderr("internal error: no suitable subprogram\n"),
	)
}
