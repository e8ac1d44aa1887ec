package qr

import (
	"errors"
	"fmt"

	"qrtable/utils"
)

type Format string

const (
	// FormatBrackets renders the first tuple element of every level.
	FormatBrackets Format = "brackets"
	// FormatFull renders all five tuple elements of every level.
	FormatFull Format = "full"
	FormatYAML Format = "yaml"
)

var Formats = []string{string(FormatBrackets), string(FormatFull), string(FormatYAML)}

var ErrUnknownFormat = errors.New("unknown output format")

func ParseFormat(name string) (Format, error) {
	if name == "" {
		return FormatBrackets, nil
	}
	if !utils.Contains(Formats, name) {
		return "", fmt.Errorf("%w: %q (want one of %v)", ErrUnknownFormat, name, Formats)
	}
	return Format(name), nil
}

// columns returns how many tuple elements the format renders.
func (f Format) columns() int {
	if f == FormatBrackets {
		return 1
	}
	return 5
}
