package entity

// AutoplayOption is one selectable autoplay mode for a website.
type AutoplayOption string

const (
	// AutoplayAllowAll permits both audio and video autoplay.
	AutoplayAllowAll AutoplayOption = "allow_all"

	// AutoplayBlockAudible blocks autoplay with sound, allows muted video.
	AutoplayBlockAudible AutoplayOption = "block_audible"

	// AutoplayBlockAll blocks all media autoplay.
	AutoplayBlockAll AutoplayOption = "block_all"
)

// AutoplayOptions returns the full option set in selector order.
// Callers must not mutate the returned slice.
func AutoplayOptions() []AutoplayOption {
	return autoplayOptions
}

var autoplayOptions = []AutoplayOption{
	AutoplayAllowAll,
	AutoplayBlockAudible,
	AutoplayBlockAll,
}

// ParseAutoplayOption maps a stored or user-supplied value to an option.
func ParseAutoplayOption(s string) (AutoplayOption, bool) {
	for _, o := range autoplayOptions {
		if string(o) == s {
			return o, true
		}
	}
	return "", false
}

// Label returns the human-readable selector entry for the option.
func (o AutoplayOption) Label() string {
	switch o {
	case AutoplayAllowAll:
		return "Allow audio and video"
	case AutoplayBlockAudible:
		return "Block audio only"
	case AutoplayBlockAll:
		return "Block audio and video"
	default:
		return string(o)
	}
}
