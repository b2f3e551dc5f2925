package dlog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/flatecore/sdeflate/inflate"
)

func TestLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	SetFormatter(NewTextFormatter(&buf, false))
	defer SetFormatter(NewTextFormatter(nil, false))

	SetLevel("dlog/test/quiet", Error)
	l := New("dlog/test/quiet")
	l.Infof("should not appear")
	if buf.Len() != 0 {
		t.Fatalf("Infof logged below the configured level: %q", buf.String())
	}

	l.Errorf("should appear")
	if !strings.Contains(buf.String(), "should appear") {
		t.Fatalf("Errorf did not log: %q", buf.String())
	}
}

func TestLoggerFailureReportsStatus(t *testing.T) {
	var buf bytes.Buffer
	SetFormatter(NewTextFormatter(&buf, false))
	defer SetFormatter(NewTextFormatter(nil, false))

	SetLevel("dlog/test/failure", Error)
	l := New("dlog/test/failure")
	l.Failure(inflate.OutBufferOverflow, 12)

	got := buf.String()
	if !strings.Contains(got, inflate.OutBufferOverflow.String()) {
		t.Fatalf("Failure did not mention status: %q", got)
	}
	if !strings.Contains(got, "12") {
		t.Fatalf("Failure did not mention total_out: %q", got)
	}
}

func TestTextFormatterVerboseHeader(t *testing.T) {
	var buf bytes.Buffer
	f := NewTextFormatter(&buf, true)
	f.Format("pkg", Info, 1, "hello")

	if !strings.Contains(buf.String(), "pkg hello") {
		t.Fatalf("Format output missing message: %q", buf.String())
	}
	if buf.Len() == 0 || buf.String()[0] != 'I' {
		t.Fatalf("verbose header missing level char: %q", buf.String())
	}
}
