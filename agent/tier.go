package agent

import (
	"fmt"
	"strings"
)

// Tier is a computer opponent strength level.
type Tier int

const (
	Easy Tier = iota
	Medium
	Hard
	Expert
)

var tierNames = []string{"easy", "medium", "hard", "expert"}

func (t Tier) String() string {
	if t < Easy || t > Expert {
		return fmt.Sprintf("tier(%d)", int(t))
	}
	return tierNames[t]
}

func ParseTier(s string) (Tier, error) {
	for i, name := range tierNames {
		if strings.EqualFold(s, name) {
			return Tier(i), nil
		}
	}
	return Easy, fmt.Errorf("unknown tier %q", s)
}

func (t Tier) MarshalText() ([]byte, error) {
	if t < Easy || t > Expert {
		return nil, fmt.Errorf("unknown tier %d", int(t))
	}
	return []byte(t.String()), nil
}

func (t *Tier) UnmarshalText(text []byte) error {
	parsed, err := ParseTier(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
