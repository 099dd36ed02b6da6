package store_test

import (
	"path/filepath"
	"testing"

	"src.elv.sh/ed/pkg/store"
	"src.elv.sh/ed/pkg/store/storetest"
	"src.elv.sh/ed/pkg/testutil"
)

func TestCmd(t *testing.T) {
	storetest.TestCmd(t, store.MustTempStore(t))
}

func TestCmd_PersistsAcrossOpens(t *testing.T) {
	dbname := filepath.Join(testutil.TempDir(t), "db")

	st, err := store.NewStore(dbname)
	if err != nil {
		t.Fatal(err)
	}
	st.AddCmd("1p")
	st.Close()

	st, err = store.NewStore(dbname)
	if err != nil {
		t.Fatal(err)
	}
	defer st.Close()
	if cmd, err := st.Cmd(1); cmd != "1p" || err != nil {
		t.Errorf("Cmd(1) after reopening -> %q, %v, want %q, nil", cmd, err, "1p")
	}
	if seq, _ := st.NextCmdSeq(); seq != 2 {
		t.Errorf("NextCmdSeq after reopening -> %d, want 2", seq)
	}
}

func TestNewStore_BadPath(t *testing.T) {
	_, err := store.NewStore(filepath.Join(testutil.TempDir(t), "no", "such", "db"))
	if err == nil {
		t.Errorf("NewStore with bad path -> nil error")
	}
}
