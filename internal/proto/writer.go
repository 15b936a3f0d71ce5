package proto

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Writer formats the stdout side of the protocol: zero or more skill
// comment lines, then one assignment line, per turn (§6).
type Writer struct {
	w *bufio.Writer
}

// NewWriter wraps w for buffered, line-flushed writes.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// SkillReport emits "#s <worker one-based> <skill_0> ... <skill_{K-1}>".
func (wtr *Writer) SkillReport(workerID int, skill []int) error {
	parts := make([]string, 0, len(skill)+2)
	parts = append(parts, "#s", strconv.Itoa(workerID+1))
	for _, s := range skill {
		parts = append(parts, strconv.Itoa(s))
	}
	return wtr.writeLine(parts)
}

// AssignmentPair is a zero-based (worker, task) pair to start today.
type AssignmentPair struct {
	WorkerID int
	TaskID   int
}

// Assignment emits "A w_1 t_1 ... w_A t_A", with A=0 encoded as "0".
func (wtr *Writer) Assignment(pairs []AssignmentPair) error {
	parts := make([]string, 0, 2*len(pairs)+1)
	parts = append(parts, strconv.Itoa(len(pairs)))
	for _, p := range pairs {
		parts = append(parts, strconv.Itoa(p.WorkerID+1), strconv.Itoa(p.TaskID+1))
	}
	return wtr.writeLine(parts)
}

func (wtr *Writer) writeLine(parts []string) error {
	if _, err := fmt.Fprintln(wtr.w, strings.Join(parts, " ")); err != nil {
		return err
	}
	return wtr.w.Flush()
}
