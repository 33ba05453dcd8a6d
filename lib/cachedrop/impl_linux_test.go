package cachedrop

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/Cloud-Foundations/Dominator/lib/log/testlogger"
)

func makeTestFile(t *testing.T, dirname string) string {
	filename := filepath.Join(dirname, "data")
	if err := ioutil.WriteFile(filename, make([]byte, 8192), 0644); err != nil {
		t.Fatal(err)
	}
	return filename
}

func withDropCachesFilename(filename string) func() {
	saved := dropCachesFilename
	dropCachesFilename = filename
	return func() { dropCachesFilename = saved }
}

func TestFadvise(t *testing.T) {
	dirname, err := ioutil.TempDir("", "cachedrop")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dirname)
	filename := makeTestFile(t, dirname)
	if err := New(ModeFadvise, testlogger.New(t)).DropCaches(
		filename); err != nil {
		t.Fatal(err)
	}
	err = New(ModeFadvise, testlogger.New(t)).DropCaches(
		filepath.Join(dirname, "missing"))
	if !os.IsNotExist(err) {
		t.Errorf("fadvise on missing file: %v", err)
	}
}

func TestProc(t *testing.T) {
	dirname, err := ioutil.TempDir("", "cachedrop")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dirname)
	procFile := filepath.Join(dirname, "drop_caches")
	if err := ioutil.WriteFile(procFile, nil, 0644); err != nil {
		t.Fatal(err)
	}
	defer withDropCachesFilename(procFile)()
	if err := New(ModeProc, testlogger.New(t)).DropCaches(""); err != nil {
		t.Fatal(err)
	}
	data, err := ioutil.ReadFile(procFile)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "3" {
		t.Errorf("wrote %q to drop_caches, want \"3\"", data)
	}
}

func TestAutoFallsBackToFadvise(t *testing.T) {
	dirname, err := ioutil.TempDir("", "cachedrop")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dirname)
	filename := makeTestFile(t, dirname)
	defer withDropCachesFilename(filepath.Join(dirname, "no-proc"))()
	if err := New(ModeAuto, testlogger.New(t)).DropCaches(
		filename); err != nil {
		t.Fatal(err)
	}
}
