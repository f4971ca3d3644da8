package gantt

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Layout errors.
var (
	ErrCyclicHierarchy = errors.New("cyclic task hierarchy")
	ErrInvalidRange    = errors.New("task starts after it ends")
	ErrUnknownViewMode = errors.New("unknown view mode")
)

// CycleError lists the tasks that cannot be reached from any root because
// their parent chain loops.
type CycleError struct {
	IDs []string
}

// Error implements the error interface.
func (e *CycleError) Error() string {
	return fmt.Sprintf("%s: %s", ErrCyclicHierarchy, strings.Join(e.IDs, ", "))
}

// Unwrap lets errors.Is match ErrCyclicHierarchy.
func (e *CycleError) Unwrap() error {
	return ErrCyclicHierarchy
}

// RangeError reports a task whose start date is after its end date.
type RangeError struct {
	TaskID string
	Start  time.Time
	End    time.Time
}

// Error implements the error interface.
func (e *RangeError) Error() string {
	return fmt.Sprintf("task %q: %s (%s > %s)", e.TaskID, ErrInvalidRange,
		e.Start.Format(time.DateOnly), e.End.Format(time.DateOnly))
}

// Unwrap lets errors.Is match ErrInvalidRange.
func (e *RangeError) Unwrap() error {
	return ErrInvalidRange
}

// Validate checks that every task ends on or after the calendar day it starts.
func Validate(tasks []Task) error {
	var errs []error
	for _, t := range tasks {
		if StartOfDay(t.Start).After(StartOfDay(t.End)) {
			errs = append(errs, &RangeError{TaskID: t.ID, Start: t.Start, End: t.End})
		}
	}
	return errors.Join(errs...)
}
