package spinner

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestSpinnerStartStop(t *testing.T) {
	var buf bytes.Buffer
	sp := New(&buf, "Testing...")

	if sp.Running() {
		t.Error("spinner should not be running before Start()")
	}

	sp.Start()
	if !sp.Running() {
		t.Error("spinner should be running after Start()")
	}

	// let a few frames render
	time.Sleep(250 * time.Millisecond)

	sp.Stop()
	if sp.Running() {
		t.Error("spinner should not be running after Stop()")
	}

	output := buf.String()
	if output == "" {
		t.Fatal("expected frames to be written")
	}

	hasFrame := false
	for _, frame := range frames {
		if strings.Contains(output, frame) {
			hasFrame = true
			break
		}
	}
	if !hasFrame {
		t.Error("expected a spinner frame in output")
	}
	if !strings.Contains(output, "Testing...") {
		t.Error("expected the message in output")
	}
	if !strings.HasSuffix(output, "\r") {
		t.Error("expected Stop() to reset the line for non-terminal writers")
	}
}

func TestSpinnerSetMessage(t *testing.T) {
	var buf bytes.Buffer
	sp := New(&buf, "first")

	sp.Start()
	time.Sleep(150 * time.Millisecond)
	sp.SetMessage("second")
	time.Sleep(150 * time.Millisecond)
	sp.Stop()

	output := buf.String()
	if !strings.Contains(output, "first") {
		t.Error("expected initial message in output")
	}
	if !strings.Contains(output, "second") {
		t.Error("expected updated message in output")
	}
}

func TestSpinnerDoubleStart(t *testing.T) {
	var buf bytes.Buffer
	sp := New(&buf, "Testing...")

	sp.Start()
	sp.Start()
	if !sp.Running() {
		t.Error("spinner should be running after repeated Start()")
	}
	sp.Stop()
}

func TestSpinnerDoubleStop(t *testing.T) {
	var buf bytes.Buffer
	sp := New(&buf, "Testing...")

	sp.Start()
	sp.Stop()
	sp.Stop()

	if sp.Running() {
		t.Error("spinner should stay stopped after repeated Stop()")
	}
}

func TestSpinnerStopWithoutStart(t *testing.T) {
	var buf bytes.Buffer
	sp := New(&buf, "Testing...")

	sp.Stop()
	if sp.Running() {
		t.Error("spinner should not be running after Stop() without Start()")
	}
}

func TestSpinnerRestart(t *testing.T) {
	var buf bytes.Buffer
	sp := New(&buf, "again")

	sp.Start()
	sp.Stop()
	sp.Start()
	if !sp.Running() {
		t.Error("spinner should support restarting after Stop()")
	}
	sp.Stop()
}
