package entity

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownColor = errors.New("unknown color")
	ErrUnknownSize  = errors.New("unknown size")
)

// Color identifies a player and the tokens they own.
type Color uint8

const (
	NoColor Color = iota
	Red
	Green
)

// Opposite returns the other player's color. NoColor has no opposite.
func (that Color) Opposite() Color {
	switch that {
	case Red:
		return Green
	case Green:
		return Red
	default:
		return NoColor
	}
}

func (that Color) IsValid() bool {
	return that == Red || that == Green
}

func (that Color) String() string {
	switch that {
	case Red:
		return "red"
	case Green:
		return "green"
	default:
		return "none"
	}
}

func (that Color) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func ParseColor(s string) (Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "red", "r":
		return Red, nil
	case "green", "g":
		return Green, nil
	default:
		return NoColor, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
}

// Size of a token. Sizes are only ever compared.
type Size uint8

const (
	Small Size = iota + 1
	Mid
	Big
)

// Sizes lists every size, smallest first.
var Sizes = [...]Size{Small, Mid, Big}

func (that Size) IsValid() bool {
	return that >= Small && that <= Big
}

func (that Size) String() string {
	switch that {
	case Small:
		return "small"
	case Mid:
		return "mid"
	case Big:
		return "big"
	default:
		return "unknown"
	}
}

func (that Size) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func ParseSize(s string) (Size, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "s", "small", "0":
		return Small, nil
	case "m", "mid", "medium", "1":
		return Mid, nil
	case "b", "big", "l", "large", "2":
		return Big, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownSize, s)
	}
}

// Token is an immutable piece. Two tokens with the same color and size are interchangeable.
type Token struct {
	Color Color `json:"color"`
	Size  Size  `json:"size"`
}

func NewToken(color Color, size Size) Token {
	return Token{Color: color, Size: size}
}

// Covers reports whether the token may be stacked on top of other.
func (that Token) Covers(other Token) bool {
	return that.Color != other.Color && that.Size > other.Size
}

func (that Token) String() string {
	return that.Color.String() + " " + that.Size.String()
}
