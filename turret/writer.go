// Package turret sends firing commands to the physical turret. It
// mirrors the serial-transport collaborator pattern from the retrieved
// banshee-data-velocity.report example: a small framed text protocol
// written over a go.bug.st/serial port, behind a Writer interface so
// tests and simulated runs never touch a real device.
package turret

import (
	"fmt"
	"time"

	"go.bug.st/serial"

	"autoaim/pipeline"
)

// Command is the turret-facing projection of a TargetingResult: only
// the fields a gimbal controller needs to act on.
type Command struct {
	Yaw, Pitch float64
	Fire       bool
}

// FromResult builds the command a given frame's result implies. Fire is
// only ever true when CanFire is true; callers should not fire on a
// result that failed upstream.
func FromResult(r pipeline.TargetingResult) Command {
	return Command{Yaw: r.FiringYaw, Pitch: r.FiringPitch, Fire: r.CanFire}
}

// Writer transmits turret commands. Implementations must not block
// indefinitely; callers own framing the command cadence.
type Writer interface {
	Write(Command) error
	Close() error
}

// NullWriter discards every command; used for simulated runs and tests.
type NullWriter struct{}

// Write always succeeds and does nothing.
func (NullWriter) Write(Command) error { return nil }

// Close always succeeds and does nothing.
func (NullWriter) Close() error { return nil }

// SerialWriter sends commands as newline-terminated "Y,<yaw>,<pitch>,<fire>"
// frames over a serial link, adapted from the teacher pack's serial
// write-loop idiom.
type SerialWriter struct {
	port serial.Port
}

// OpenSerialWriter opens portName at baud for turret command writes.
func OpenSerialWriter(portName string, baud int) (*SerialWriter, error) {
	mode := &serial.Mode{BaudRate: baud}
	port, err := serial.Open(portName, mode)
	if err != nil {
		return nil, fmt.Errorf("open turret serial port %q: %w", portName, err)
	}
	_ = port.SetReadTimeout(200 * time.Millisecond)
	return &SerialWriter{port: port}, nil
}

// Write sends one command frame.
func (w *SerialWriter) Write(c Command) error {
	fire := 0
	if c.Fire {
		fire = 1
	}
	frame := fmt.Sprintf("Y,%.3f,%.3f,%d\n", c.Yaw, c.Pitch, fire)
	_, err := w.port.Write([]byte(frame))
	if err != nil {
		return fmt.Errorf("write turret command: %w", err)
	}
	return nil
}

// Close releases the underlying serial port.
func (w *SerialWriter) Close() error {
	return w.port.Close()
}
