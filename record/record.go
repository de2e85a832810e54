// Package record captures vehicle telemetry to CSV and plays it back
// as a drop-in telemetry source, so a run can be reviewed from any
// camera without re-driving it.
package record

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/automoto/chaseview/vehicle"
)

var header = []string{
	"time",
	"posx", "posy", "posz",
	"qw", "qx", "qy", "qz",
	"speed",
	"motorspeed", "motortorque",
	"tcslip", "tctorquein", "tctorqueout",
	"gear", "drivemode", "drivenaxles",
	"torquefl", "torquefr", "torquerl", "torquerr",
}

// Recorder appends one CSV row per sample. Errors are sticky: after the
// first write failure every later Sample returns the same error.
type Recorder struct {
	w   *csv.Writer
	c   io.Closer
	err error
}

// NewRecorder writes the header immediately and samples after it.
func NewRecorder(w io.Writer) *Recorder {
	r := &Recorder{w: csv.NewWriter(w)}
	r.err = r.w.Write(header)
	return r
}

// Create opens path for writing and returns a recorder that owns the
// file.
func Create(path string) (*Recorder, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	r := NewRecorder(f)
	r.c = f
	if r.err != nil {
		f.Close()
		return nil, r.err
	}
	return r, nil
}

// Sample appends the telemetry visible at time t.
func (r *Recorder) Sample(t float64, ch vehicle.Chassis, pw vehicle.Powertrain, dr vehicle.Driveline) error {
	if r.err != nil {
		return r.err
	}
	pos, rot := ch.Pos(), ch.Rot()
	row := []string{
		ftoa(t),
		ftoa(pos.X), ftoa(pos.Y), ftoa(pos.Z),
		ftoa(rot.W), ftoa(rot.X), ftoa(rot.Y), ftoa(rot.Z),
		ftoa(ch.Speed()),
		ftoa(pw.MotorSpeed()), ftoa(pw.MotorTorque()),
		ftoa(pw.ConverterSlip()), ftoa(pw.ConverterTorqueIn()), ftoa(pw.ConverterTorqueOut()),
		strconv.Itoa(pw.Gear()), pw.DriveMode().String(),
		axlesField(dr.DrivenAxles()),
		ftoa(dr.WheelTorque(0, vehicle.Left)), ftoa(dr.WheelTorque(0, vehicle.Right)),
		ftoa(dr.WheelTorque(1, vehicle.Left)), ftoa(dr.WheelTorque(1, vehicle.Right)),
	}
	r.err = r.w.Write(row)
	return r.err
}

// Close flushes buffered rows and closes the underlying file when the
// recorder owns one.
func (r *Recorder) Close() error {
	r.w.Flush()
	if err := r.w.Error(); err != nil && r.err == nil {
		r.err = err
	}
	if r.c != nil {
		if err := r.c.Close(); err != nil && r.err == nil {
			r.err = err
		}
	}
	return r.err
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// axlesField joins axle indices with ';' so the list stays one CSV
// cell.
func axlesField(axles []int) string {
	parts := make([]string, len(axles))
	for i, a := range axles {
		parts[i] = strconv.Itoa(a)
	}
	return strings.Join(parts, ";")
}
