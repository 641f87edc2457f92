package rebar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Diameter is a nominal deformed-bar diameter from the catalog.
// Values can only be obtained from the exported bars below or from Parse,
// so every non-zero Diameter has an entry in the area table.
type Diameter struct {
	mm float64
}

// Standard deformed bars (JIS G 3112 designations)
var (
	D13 = Diameter{12.7}
	D16 = Diameter{15.9}
	D19 = Diameter{19.1}
	D22 = Diameter{22.2}
)

// Nominal cross-sectional areas (mm²)
var areas = map[Diameter]float64{
	D13: 126.7,
	D16: 198.6,
	D19: 286.5,
	D22: 387.1,
}

var names = map[Diameter]string{
	D13: "D13",
	D16: "D16",
	D19: "D19",
	D22: "D22",
}

// ErrUnknownDiameter is returned when a value is not in the catalog.
var ErrUnknownDiameter = errors.New("unknown bar diameter")

// UnknownDiameterError reports a catalog lookup miss.
type UnknownDiameterError struct {
	Value string
}

func (e *UnknownDiameterError) Error() string {
	return fmt.Sprintf("unknown bar diameter %q (valid: %s)", e.Value, strings.Join(validNames(), ", "))
}

func (e *UnknownDiameterError) Unwrap() error {
	return ErrUnknownDiameter
}

// All returns the catalog in ascending order.
func All() []Diameter {
	return []Diameter{D13, D16, D19, D22}
}

// MM returns the nominal diameter in millimetres.
func (d Diameter) MM() float64 {
	return d.mm
}

// Area returns the nominal cross-sectional area (mm²).
func (d Diameter) Area() (float64, error) {
	a, ok := areas[d]
	if !ok {
		return 0, &UnknownDiameterError{Value: strconv.FormatFloat(d.mm, 'f', -1, 64)}
	}
	return a, nil
}

// Valid reports whether d is a catalog diameter.
func (d Diameter) Valid() bool {
	_, ok := areas[d]
	return ok
}

func (d Diameter) String() string {
	if n, ok := names[d]; ok {
		return n
	}
	return "D?"
}

// FromMM looks up the bar with the given nominal diameter.
func FromMM(mm float64) (Diameter, error) {
	for _, d := range All() {
		if d.mm == mm {
			return d, nil
		}
	}
	return Diameter{}, &UnknownDiameterError{Value: strconv.FormatFloat(mm, 'f', -1, 64)}
}

// Parse accepts either a nominal diameter ("19.1") or a designation ("D19").
func Parse(s string) (Diameter, error) {
	s = strings.TrimSpace(s)
	for d, n := range names {
		if strings.EqualFold(s, n) {
			return d, nil
		}
	}
	mm, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Diameter{}, &UnknownDiameterError{Value: s}
	}
	return FromMM(mm)
}

// Set implements pflag.Value so a Diameter can be bound to a flag.
func (d *Diameter) Set(s string) error {
	v, err := Parse(s)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// Type implements pflag.Value.
func (d *Diameter) Type() string {
	return "diameter"
}

func validNames() []string {
	out := make([]string, 0, len(areas))
	for _, d := range All() {
		out = append(out, strconv.FormatFloat(d.mm, 'f', -1, 64))
	}
	return out
}
