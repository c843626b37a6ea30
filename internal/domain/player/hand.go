package player

import "math"

// HandFromArmSlot classifies a throwing hand from an arm-slot angle in
// degrees. The slot bands around 3 o'clock and 9 o'clock decide; anything in
// between abstains (ok=false) rather than guessing — the caller owns the
// default policy.
func HandFromArmSlot(degrees float64) (Hand, bool) {
	deg := math.Mod(degrees, 360)
	if deg < 0 {
		deg += 360
	}
	switch {
	case deg >= 30 && deg <= 150:
		return HandRight, true
	case deg >= 210 && deg <= 330:
		return HandLeft, true
	}
	return HandUnknown, false
}

// InferHand majority-votes a throwing hand from arm-slot samples. Abstaining
// classifications do not count. Left wins only on strictly more left votes;
// ties and no-data fall back to the caller's default.
func InferHand(degrees []float64, fallback Hand) Hand {
	var left, right int
	for _, deg := range degrees {
		hand, ok := HandFromArmSlot(deg)
		if !ok {
			continue
		}
		switch hand {
		case HandLeft:
			left++
		case HandRight:
			right++
		}
	}

	switch {
	case left > right:
		return HandLeft
	case right > left:
		return HandRight
	}
	return fallback
}
