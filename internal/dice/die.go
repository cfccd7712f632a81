package dice

import "fmt"

// Die is a single N-sided die. Its number is a stable identity that never
// changes, unlike its face value.
type Die struct {
	number int
	sides  int
	face   int
	held   bool
}

// NewDie creates an unheld die and gives it an initial roll so the face
// value is always within range.
func NewDie(number, sides int, roller Roller) *Die {
	if sides < 1 {
		sides = DefaultSides
	}

	d := &Die{
		number: number,
		sides:  sides,
	}
	d.face = roller.Roll(sides)

	return d
}

// RestoreDie rebuilds a die from saved state without rolling it
func RestoreDie(number, sides, face int, held bool) (*Die, error) {
	if sides < 1 {
		return nil, fmt.Errorf("die %d: invalid side count %d", number, sides)
	}
	if face < 1 || face > sides {
		return nil, fmt.Errorf("die %d: face value %d out of range 1..%d", number, face, sides)
	}

	return &Die{
		number: number,
		sides:  sides,
		face:   face,
		held:   held,
	}, nil
}

// Roll assigns a new face value unless the die is held
func (d *Die) Roll(roller Roller) {
	if d.held {
		return
	}
	d.face = roller.Roll(d.sides)
}

// Hold keeps the die out of later rolls this turn
func (d *Die) Hold() {
	d.held = true
}

// Reset releases the die. The face value is left as-is until the next roll.
func (d *Die) Reset() {
	d.held = false
}

func (d *Die) Number() int { return d.number }

func (d *Die) Sides() int { return d.sides }

func (d *Die) FaceValue() int { return d.face }

func (d *Die) IsHeld() bool { return d.held }

// String renders the die as a single line, e.g. "Die 2: 5 (held)"
func (d *Die) String() string {
	if d.held {
		return fmt.Sprintf("Die %d: %d (held)", d.number, d.face)
	}
	return fmt.Sprintf("Die %d: %d", d.number, d.face)
}
