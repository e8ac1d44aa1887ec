package constants

import (
	"errors"
	"fmt"
	"strings"
)

// Level is a QR error correction level. The numeric values are the ones
// carried in the format information bits.
type Level int

const (
	ERROR_CORRECT_L Level = 1
	ERROR_CORRECT_M Level = 0
	ERROR_CORRECT_Q Level = 3
	ERROR_CORRECT_H Level = 2
)

// Versions supported by the table.
const (
	MIN_VERSION = 1
	MAX_VERSION = 40
)

// Levels lists the error correction levels in table order.
var Levels = []Level{
	ERROR_CORRECT_L,
	ERROR_CORRECT_M,
	ERROR_CORRECT_Q,
	ERROR_CORRECT_H,
}

var ErrUnknownLevel = errors.New("unknown error correction level")

var levelNames = map[Level]string{
	ERROR_CORRECT_L: "L",
	ERROR_CORRECT_M: "M",
	ERROR_CORRECT_Q: "Q",
	ERROR_CORRECT_H: "H",
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// Index returns the position of l in Levels, or -1.
func (l Level) Index() int {
	for i, level := range Levels {
		if level == l {
			return i
		}
	}
	return -1
}

func ParseLevel(name string) (Level, error) {
	for level, n := range levelNames {
		if strings.EqualFold(n, name) {
			return level, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
}
