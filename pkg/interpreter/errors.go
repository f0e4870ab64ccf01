package interpreter

import (
	"errors"
	"fmt"

	"objsh/shell-go/pkg/runtime"
)

// SoftFault aborts the statement being evaluated. It is never shown to the
// user: a failed bare expression yields no result and a failed assignment
// abandons the rest of the run.
type SoftFault struct {
	Reason string
}

func (f *SoftFault) Error() string {
	return f.Reason
}

// HardFault reports an operating-system operation that could not complete.
type HardFault struct {
	Op     string
	Target string
	Err    error
}

func (f *HardFault) Error() string {
	return fmt.Sprintf("%s %s: %v", f.Op, f.Target, f.Err)
}

func (f *HardFault) Unwrap() error {
	return f.Err
}

// IsSoftFault reports whether err is, or wraps, a *SoftFault.
func IsSoftFault(err error) bool {
	var sf *SoftFault
	return errors.As(err, &sf)
}

// IsHardFault reports whether err is, or wraps, a *HardFault.
func IsHardFault(err error) bool {
	var hf *HardFault
	return errors.As(err, &hf)
}

func softFault(format string, args ...any) error {
	return &SoftFault{Reason: fmt.Sprintf(format, args...)}
}

func hardFault(op, target string, err error) error {
	return &HardFault{Op: op, Target: target, Err: err}
}

func unknownMethod(receiver runtime.Value, method string) error {
	return softFault("%s has no method %q", receiver.Kind(), method)
}
