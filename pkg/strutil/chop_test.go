package strutil

import (
	"testing"

	"src.elv.sh/ed/pkg/tt"
)

var It = tt.It

func TestChopTerminator(t *testing.T) {
	tt.Test(t, tt.Fn(ChopTerminator),
		It("keeps an empty string").Args("", byte('\n')).Rets(""),
		It("keeps text without terminator").Args("text", byte('\n')).Rets("text"),
		It("chops the terminator").Args("text\n", byte('\n')).Rets("text"),
		It("keeps \\r before \\n").Args("text\r\n", byte('\n')).Rets("text\r"),
		It("chops only one terminator").Args("text\n\n", byte('\n')).Rets("text\n"),
		It("preserves internal terminators").Args("a\nb\n", byte('\n')).Rets("a\nb"),
		It("supports other terminators").Args("text\x00", byte(0)).Rets("text"),
	)
}
