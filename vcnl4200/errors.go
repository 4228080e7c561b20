package vcnl4200

import (
	"errors"
	"fmt"
)

// ErrIdentityMismatch is returned by New when the ID register does not read
// as a VCNL4200. The returned error wraps it together with the observed ID.
var ErrIdentityMismatch = errors.New("device ID mismatch")

// TransportError wraps an I²C failure with the register and direction of
// the transaction that hit it.
type TransportError struct {
	Op  string // "read" or "write"
	Reg uint8
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("vcnl4200: %s register 0x%02x: %v", e.Op, e.Reg, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// InitError reports a failed step of the power-on configuration sequence.
// New does not return a device when initialization fails.
type InitError struct {
	Step string
	Err  error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("vcnl4200: init %s: %v", e.Step, e.Err)
}

func (e *InitError) Unwrap() error { return e.Err }

// InvalidSettingError means the caller asked for a value outside a
// setting's documented range. It is raised before any bus traffic, so the
// register is never partially written.
type InvalidSettingError struct {
	Setting string
	Value   uint16
}

func (e *InvalidSettingError) Error() string {
	return fmt.Sprintf("vcnl4200: invalid %s setting %d", e.Setting, e.Value)
}
