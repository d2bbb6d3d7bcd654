package dof

import "strings"

// Finger identifies one of the ten fingers, ordered from left pinky to
// right pinky.
type Finger int

const (
	LP Finger = iota // left pinky
	LR               // left ring
	LM               // left middle
	LI               // left index
	LT               // left thumb
	RT               // right thumb
	RI               // right index
	RM               // right middle
	RR               // right ring
	RP               // right pinky
)

// Fingers lists every finger in order.
var Fingers = [10]Finger{LP, LR, LM, LI, LT, RT, RI, RM, RR, RP}

var fingerCodes = [10]string{"LP", "LR", "LM", "LI", "LT", "RT", "RI", "RM", "RR", "RP"}

func (f Finger) String() string {
	if f < 0 || int(f) >= len(fingerCodes) {
		return "??"
	}
	return fingerCodes[f]
}

// Hand is the side of the body a finger belongs to.
type Hand int

const (
	LeftHand Hand = iota
	RightHand
)

func (h Hand) String() string {
	if h == LeftHand {
		return "left"
	}
	return "right"
}

func (f Finger) Hand() Hand {
	if f <= LT {
		return LeftHand
	}
	return RightHand
}

func (f Finger) IsThumb() bool { return f == LT || f == RT }

// ParseFinger accepts a finger code (LP..RP) or its digit 0..9.
func ParseFinger(s string) (Finger, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 1 && s[0] >= '0' && s[0] <= '9' {
		return Finger(s[0] - '0'), true
	}
	for i, c := range fingerCodes {
		if c == s {
			return Finger(i), true
		}
	}
	return 0, false
}

func (f Finger) MarshalText() ([]byte, error) { return []byte(f.String()), nil }
