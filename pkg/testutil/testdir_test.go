package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"src.elv.sh/ed/pkg/must"
)

type cleanuper struct{ fns []func() }

func (c *cleanuper) Cleanup(fn func()) { c.fns = append(c.fns, fn) }

func (c *cleanuper) runCleanups() {
	for i := len(c.fns) - 1; i >= 0; i-- {
		c.fns[i]()
	}
}

func TestTempDir_DirIsValid(t *testing.T) {
	dir := TempDir(t)

	stat, err := os.Stat(dir)
	if err != nil {
		t.Errorf("TempDir returns %q which cannot be stated", dir)
	}
	if !stat.IsDir() {
		t.Errorf("TempDir returns %q which is not a dir", dir)
	}
}

func TestTempDir_CleanupRemovesDirRecursively(t *testing.T) {
	c := &cleanuper{}
	dir := TempDir(c)
	must.WriteFile(filepath.Join(dir, "a"), "test")

	c.runCleanups()
	if _, err := os.Stat(dir); err == nil {
		t.Errorf("Dir %q still exists after cleanup", dir)
	}
}

func TestInTempDir(t *testing.T) {
	original := must.OK1(os.Getwd())

	c := &cleanuper{}
	dir := InTempDir(c)

	if after := must.OK1(os.Getwd()); after != dir {
		t.Errorf("pwd is now %q, want %q", after, dir)
	}

	c.runCleanups()
	if restored := must.OK1(os.Getwd()); restored != original {
		t.Errorf("pwd restored to %q, want %q", restored, original)
	}
}

func TestApplyDir(t *testing.T) {
	InTempDir(t)

	ApplyDir(Dir{
		"a": "a content",
		"d": Dir{"d1": "d1 content"},
	})

	if got := must.ReadFileString("a"); got != "a content" {
		t.Errorf("a has content %q", got)
	}
	if got := must.ReadFileString("d/d1"); got != "d1 content" {
		t.Errorf("d/d1 has content %q", got)
	}
}

func TestSetenv(t *testing.T) {
	const name = "ED_TESTUTIL_SETENV"
	os.Unsetenv(name)

	c := &cleanuper{}
	Setenv(c, name, "foo")
	if got := os.Getenv(name); got != "foo" {
		t.Errorf("got %q after Setenv", got)
	}
	c.runCleanups()
	if _, ok := os.LookupEnv(name); ok {
		t.Errorf("%s still set after cleanup", name)
	}
}

func TestSet(t *testing.T) {
	c := &cleanuper{}
	x := 1
	Set(c, &x, 2)
	if x != 2 {
		t.Errorf("x = %d after Set", x)
	}
	c.runCleanups()
	if x != 1 {
		t.Errorf("x = %d after cleanup", x)
	}
}
