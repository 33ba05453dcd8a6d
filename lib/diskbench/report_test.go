package diskbench

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"
	"time"
)

func TestReportText(t *testing.T) {
	report := &Report{
		Write: ComputeStats([]time.Duration{time.Second, time.Second}, 1<<20),
		Read: ComputeStats([]time.Duration{time.Second / 2, time.Second / 2},
			512<<10),
	}
	buffer := &bytes.Buffer{}
	if err := report.WriteText(buffer); err != nil {
		t.Fatal(err)
	}
	want := "Written 2 MB in 2.0000 s\n" +
		"Write speed is  1.00 MB/s\n" +
		"  max: 1.00, min: 1.00\n\n" +
		"Read 2 x 512 KB blocks in 1.0000 s\n" +
		"Read speed is  1.00 MB/s\n" +
		"  max: 1.00, min: 1.00\n"
	if got := buffer.String(); got != want {
		t.Errorf("report:\n%s\nwant:\n%s", got, want)
	}
}

func TestReportTextEmpty(t *testing.T) {
	report := &Report{
		Write: ComputeStats(nil, 1<<20),
		Read:  ComputeStats(nil, 1<<20),
	}
	buffer := &bytes.Buffer{}
	if err := report.WriteText(buffer); err != nil {
		t.Fatal(err)
	}
	text := buffer.String()
	if !strings.Contains(text, "Written 0 MB in 0.0000 s") {
		t.Errorf("missing write totals in:\n%s", text)
	}
	if !strings.Contains(text, "Read speed is  n/a MB/s") {
		t.Errorf("missing n/a read speed in:\n%s", text)
	}
	if strings.Contains(text, "NaN") || strings.Contains(text, "Inf") {
		t.Errorf("unguarded division in:\n%s", text)
	}
}

func TestFormatUnits(t *testing.T) {
	var tests = []struct {
		numBytes, unit uint64
		want           string
	}{
		{0, 1 << 20, "0"},
		{128 << 20, 1 << 20, "128"},
		{3 << 19, 1 << 20, "1.50"},
		{1000, 1 << 10, "0.98"},
	}
	for _, test := range tests {
		if got := formatUnits(test.numBytes, test.unit); got != test.want {
			t.Errorf("formatUnits(%d, %d)=%s, want %s",
				test.numBytes, test.unit, got, test.want)
		}
	}
}

func TestReportJSON(t *testing.T) {
	report := &Report{
		Filename: "/tmp/testfile",
		Write:    ComputeStats([]time.Duration{time.Second}, 1<<20),
		Read:     ComputeStats(nil, 4096),
	}
	buffer := &bytes.Buffer{}
	if err := report.WriteJSON(buffer); err != nil {
		t.Fatal(err)
	}
	var decoded struct {
		Filename string
		Write    map[string]interface{}
		Read     map[string]interface{}
	}
	if err := json.Unmarshal(buffer.Bytes(), &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.Filename != "/tmp/testfile" {
		t.Errorf("filename: %s", decoded.Filename)
	}
	if value := decoded.Write["averageMiBPerSecond"]; value != 1.0 {
		t.Errorf("write average: %v, want 1", value)
	}
	if value, ok := decoded.Read["averageMiBPerSecond"]; !ok || value != nil {
		t.Errorf("read average: %v, want null", value)
	}
}

func TestReportDoesNotModifySession(t *testing.T) {
	dirname := makeTempDir(t)
	defer os.RemoveAll(dirname)
	session := newTestSession(t, testConfig(dirname), nil)
	if err := session.Write(4096, 3); err != nil {
		t.Fatal(err)
	}
	samples := append([]time.Duration(nil), session.WriteSamples()...)
	first := session.Report()
	second := session.Report()
	if first.Write != second.Write {
		t.Errorf("reports differ: %+v, %+v", first.Write, second.Write)
	}
	for index, sample := range session.WriteSamples() {
		if sample != samples[index] {
			t.Errorf("sample %d changed by Report", index)
		}
	}
}
