package diskbench

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/Cloud-Foundations/Dominator/lib/log/testlogger"
)

type progressEvent struct {
	kind    string
	phase   Phase
	percent uint
}

type testProgress struct {
	events []progressEvent
}

func (p *testProgress) Begin(phase Phase) {
	p.events = append(p.events, progressEvent{"begin", phase, 0})
}

func (p *testProgress) SetPercent(phase Phase, percent uint) {
	p.events = append(p.events, progressEvent{"set", phase, percent})
}

func (p *testProgress) End(phase Phase) {
	p.events = append(p.events, progressEvent{"end", phase, 0})
}

func (p *testProgress) percents(phase Phase) []uint {
	var percents []uint
	for _, event := range p.events {
		if event.kind == "set" && event.phase == phase {
			percents = append(percents, event.percent)
		}
	}
	return percents
}

func makeTempDir(t *testing.T) string {
	dirname, err := ioutil.TempDir("", "diskbench")
	if err != nil {
		t.Fatal(err)
	}
	return dirname
}

func testConfig(dirname string) Config {
	return Config{
		Filename:       filepath.Join(dirname, "testfile"),
		TotalSize:      64 << 10,
		WriteBlockSize: 16 << 10,
		ReadBlockSize:  4 << 10,
		Seed:           1,
	}
}

func newTestSession(t *testing.T, config Config,
	progress Progress) *Session {
	session, err := New(config, progress, testlogger.New(t))
	if err != nil {
		t.Fatal(err)
	}
	return session
}

func fileSize(t *testing.T, filename string) int64 {
	fi, err := os.Stat(filename)
	if err != nil {
		t.Fatal(err)
	}
	return fi.Size()
}
