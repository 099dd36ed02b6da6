// Package storetest keeps test suites against storedefs.Store.
package storetest

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"src.elv.sh/ed/pkg/store/storedefs"
)

var (
	cmds     = []string{"1,2p", "a", "w", "1d", "wq"}
	wantCmds []storedefs.Cmd
)

func init() {
	for i, cmd := range cmds {
		wantCmds = append(wantCmds, storedefs.Cmd{Text: cmd, Seq: i + 1})
	}
}

// TestCmd tests the command history functionality of a Store.
func TestCmd(t *testing.T, store storedefs.Store) {
	startSeq, err := store.NextCmdSeq()
	if startSeq != 1 || err != nil {
		t.Errorf("store.NextCmdSeq() -> %v, %v, want %v, nil",
			startSeq, err, 1)
	}

	// AddCmd
	for i, cmd := range cmds {
		wantSeq := startSeq + i
		seq, err := store.AddCmd(cmd)
		if seq != wantSeq || err != nil {
			t.Errorf("store.AddCmd(%v) -> %v, %v, want %v, nil",
				cmd, seq, err, wantSeq)
		}
	}

	endSeq, err := store.NextCmdSeq()
	wantedEndSeq := startSeq + len(cmds)
	if endSeq != wantedEndSeq || err != nil {
		t.Errorf("store.NextCmdSeq() -> %v, %v, want %v, nil",
			endSeq, err, wantedEndSeq)
	}

	// CmdsWithSeq
	wantCmdWithSeqs := []struct {
		from, upto int
		want       []storedefs.Cmd
	}{
		{-1, -1, nil},
		{0, 0, nil},
		{0, 1, nil},
		{1, 2, wantCmds[:1]},
		{2, 4, wantCmds[1:3]},
		{1, 100, wantCmds},
	}
	for _, test := range wantCmdWithSeqs {
		cmds, err := store.CmdsWithSeq(test.from, test.upto)
		if err != nil {
			t.Errorf("store.CmdsWithSeq(%v, %v) -> error %v", test.from, test.upto, err)
		}
		if diff := cmp.Diff(test.want, cmds); diff != "" {
			t.Errorf("store.CmdsWithSeq(%v, %v) (-want +got):\n%s",
				test.from, test.upto, diff)
		}
	}

	// Cmd
	for i, wantCmd := range cmds {
		c, err := store.Cmd(i + 1)
		if c != wantCmd || err != nil {
			t.Errorf("store.Cmd(%v) -> %v, %v, want %v, nil",
				i+1, c, err, wantCmd)
		}
	}
	if _, err := store.Cmd(100); err != storedefs.ErrNoMatchingCmd {
		t.Errorf("store.Cmd(100) -> error %v, want ErrNoMatchingCmd", err)
	}

	// DelCmd
	if err := store.DelCmd(1); err != nil {
		t.Error("Failed to remove cmd")
	}
	if seq, err := store.Cmd(1); err != storedefs.ErrNoMatchingCmd {
		t.Errorf("Cmd(1) -> %v, %v, want ErrNoMatchingCmd", seq, err)
	}
}
