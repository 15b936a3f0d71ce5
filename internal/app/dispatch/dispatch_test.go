package dispatch

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hatsuyuki/daymatch/internal/config"
)

func TestRun_NoFreeWorkersEmitsZeroAssignment(t *testing.T) {
	// N=1 M=0 K=1 R=0: one task, no workers to run it, so there is no
	// initial skill report either (no workers exist to report on).
	in := strings.NewReader("1 0 1 0\n5\n-1\n")
	var out bytes.Buffer

	lp, err := New(in, &out, config.DefaultConfig(), "test-run")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := lp.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 1 || lines[0] != "0" {
		t.Fatalf("output = %q, want a single %q line", out.String(), "0")
	}
}

func TestRun_SingleTaskSingleWorker_AssignsThenTerminates(t *testing.T) {
	// N=1 M=1 K=1 R=0: the one available task goes to the one free worker.
	// §6/§8 scenario 1: the worker's initial skill report precedes the
	// first assignment line.
	in := strings.NewReader("1 1 1 0\n5\n-1\n")
	var out bytes.Buffer

	lp, err := New(in, &out, config.DefaultConfig(), "test-run")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := lp.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("output = %q, want 2 lines (initial skill report, assign)", out.String())
	}
	if !strings.HasPrefix(lines[0], "#s 1 ") {
		t.Errorf("first line = %q, want an initial skill report for worker 1", lines[0])
	}
	if lines[1] != "1 1 1" {
		t.Errorf("second line = %q, want %q (task 1 to worker 1)", lines[1], "1 1 1")
	}
}

func TestRun_ChainOfTwoTasksOneWorker_RunsOneAtATime(t *testing.T) {
	// N=2 M=1 K=1 R=1, edge 1->2: task 2 cannot start before task 1 finishes,
	// so the single worker never holds both at once.
	in := strings.NewReader("2 1 1 1\n5\n5\n1 2\n1 1\n-1\n")
	var out bytes.Buffer

	lp, err := New(in, &out, config.DefaultConfig(), "test-run")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := lp.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("output = %q, want 4 lines (initial skill report, assign, re-estimated skill report, assign)", out.String())
	}
	if !strings.HasPrefix(lines[0], "#s 1 ") {
		t.Errorf("first line = %q, want the initial skill report for worker 1", lines[0])
	}
	if lines[1] != "1 1 1" {
		t.Errorf("second line = %q, want %q (task 1 to worker 1)", lines[1], "1 1 1")
	}
	if !strings.HasPrefix(lines[2], "#s 1 ") {
		t.Errorf("third line = %q, want a re-estimation skill report for worker 1", lines[2])
	}
	if lines[3] != "1 1 2" {
		t.Errorf("fourth line = %q, want %q (task 2 to worker 1)", lines[3], "1 1 2")
	}
}

func TestRun_MalformedHeaderIsError(t *testing.T) {
	in := strings.NewReader("not a header\n")
	var out bytes.Buffer

	if _, err := New(in, &out, config.DefaultConfig(), "test-run"); err == nil {
		t.Error("expected error constructing loop from malformed header")
	}
}
