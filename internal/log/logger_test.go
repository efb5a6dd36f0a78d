package log

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
)

// Helper to capture output from os.Stdout and os.Stderr
func captureOutput(f func()) (stdout, stderr string) {
	oldStdout := os.Stdout
	oldStderr := os.Stderr

	rOut, wOut, _ := os.Pipe()
	rErr, wErr, _ := os.Pipe()

	os.Stdout = wOut
	os.Stderr = wErr

	outCh := make(chan string)
	errCh := make(chan string)

	go func() {
		var buf bytes.Buffer
		io.Copy(&buf, rOut)
		outCh <- buf.String()
	}()

	go func() {
		var buf bytes.Buffer
		io.Copy(&buf, rErr)
		errCh <- buf.String()
	}()

	f()

	wOut.Close()
	wErr.Close()

	stdout = <-outCh
	stderr = <-errCh

	os.Stdout = oldStdout
	os.Stderr = oldStderr

	return stdout, stderr
}

func TestSetVerbose(t *testing.T) {
	originalVerbose := verbose
	defer func() { verbose = originalVerbose }()

	SetVerbose(true)
	if !IsVerbose() {
		t.Error("Expected verbose to be true")
	}

	SetVerbose(false)
	if IsVerbose() {
		t.Error("Expected verbose to be false")
	}
}

func TestDebugf_VerboseOff(t *testing.T) {
	originalVerbose := verbose
	defer func() { verbose = originalVerbose }()

	SetVerbose(false)
	stdout, stderr := captureOutput(func() {
		Debugf("hidden %s", "message")
	})

	if stdout != "" || stderr != "" {
		t.Errorf("Expected no output with verbose off, got stdout=%q stderr=%q", stdout, stderr)
	}
}

func TestDebugf_VerboseOn(t *testing.T) {
	originalVerbose := verbose
	defer func() { verbose = originalVerbose }()

	SetVerbose(true)
	stdout, _ := captureOutput(func() {
		Debugf("debug %s", "message")
	})

	if !strings.Contains(stdout, "debug message") {
		t.Errorf("Expected stdout to contain debug message, got %q", stdout)
	}
	if !strings.Contains(stdout, "[DBG]") {
		t.Errorf("Expected stdout to contain DBG prefix, got %q", stdout)
	}
}

func TestInfof_GoesToStdout(t *testing.T) {
	stdout, stderr := captureOutput(func() {
		Infof("informational")
	})

	if !strings.Contains(stdout, "informational") {
		t.Errorf("Expected stdout to contain message, got %q", stdout)
	}
	if stderr != "" {
		t.Errorf("Expected empty stderr, got %q", stderr)
	}
}

func TestErrorf_GoesToStderr(t *testing.T) {
	stdout, stderr := captureOutput(func() {
		Errorf("boom: %d", 42)
	})

	if !strings.Contains(stderr, "boom: 42") {
		t.Errorf("Expected stderr to contain message, got %q", stderr)
	}
	if stdout != "" {
		t.Errorf("Expected empty stdout, got %q", stdout)
	}
}
