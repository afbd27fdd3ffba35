package scoring

// Band is the qualitative readiness category derived from the score.
type Band string

const (
	BandEmerging         Band = "emerging"
	BandReadyWithSupport Band = "ready-with-support"
	BandReadyToThrive    Band = "ready-to-thrive"
)

// Band thresholds on the clamped score. Strict: 49 is emerging, 50 is
// ready-with-support, 74 is ready-with-support, 75 is ready-to-thrive.
const (
	supportThreshold = 50
	thriveThreshold  = 75
)

// BandFor maps a clamped score to its band.
func BandFor(score int) Band {
	switch {
	case score < supportThreshold:
		return BandEmerging
	case score < thriveThreshold:
		return BandReadyWithSupport
	default:
		return BandReadyToThrive
	}
}

// Label returns the display label for the band.
func (b Band) Label() string {
	switch b {
	case BandEmerging:
		return "Emerging Readiness"
	case BandReadyWithSupport:
		return "Ready With Support"
	case BandReadyToThrive:
		return "Ready to Thrive"
	}
	return string(b)
}

// Description returns the fixed multi-sentence description shown with the
// band. No interpolation happens at this layer.
func (b Band) Description() string {
	switch b {
	case BandEmerging:
		return "Your child is curious about music, and that's a great start. " +
			"With the right low-pressure environment and some playful exposure, " +
			"they can grow into lessons at their own pace. Here's what to focus on next week."
	case BandReadyWithSupport:
		return "Your child is ready to start lessons, as long as we keep things fun, " +
			"encouraging, and matched to their personality. With the right teacher " +
			"and routine, they can make solid progress quickly."
	case BandReadyToThrive:
		return "Your child is an excellent candidate for music lessons. With the right " +
			"teacher and instrument match, they're likely to thrive and move fast."
	}
	return ""
}
