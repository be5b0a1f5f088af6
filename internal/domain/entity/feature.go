package entity

// Feature identifies one of the fixed per-website permission categories
// shown in the site panel. The set is closed: it is defined by the
// platform and never extended at runtime.
type Feature string

const (
	// FeatureCamera represents camera access.
	FeatureCamera Feature = "camera"

	// FeatureLocation represents geolocation access.
	FeatureLocation Feature = "location"

	// FeatureMicrophone represents microphone access.
	FeatureMicrophone Feature = "microphone"

	// FeatureNotification represents web notification delivery.
	FeatureNotification Feature = "notification"

	// FeaturePersistentStorage represents persistent storage grants.
	FeaturePersistentStorage Feature = "persistent_storage"

	// FeatureMediaKeySystemAccess represents protected-media (DRM) key access.
	FeatureMediaKeySystemAccess Feature = "media_key_system_access"

	// FeatureAutoplay represents media autoplay behavior.
	FeatureAutoplay Feature = "autoplay"
)

// features is the canonical panel order. Iteration over the registry and
// state construction both follow this slice, never map order.
var features = []Feature{
	FeatureCamera,
	FeatureLocation,
	FeatureMicrophone,
	FeatureNotification,
	FeaturePersistentStorage,
	FeatureMediaKeySystemAccess,
	FeatureAutoplay,
}

// Features returns the fixed set of tracked features in panel order.
// Callers must not mutate the returned slice.
func Features() []Feature {
	return features
}

// ParseFeature maps a user-supplied name to a known Feature.
func ParseFeature(s string) (Feature, bool) {
	for _, f := range features {
		if string(f) == s {
			return f, true
		}
	}
	return "", false
}

// DisplayName returns the human-readable row label for the feature.
func (f Feature) DisplayName() string {
	switch f {
	case FeatureCamera:
		return "Camera"
	case FeatureLocation:
		return "Location"
	case FeatureMicrophone:
		return "Microphone"
	case FeatureNotification:
		return "Notification"
	case FeaturePersistentStorage:
		return "Persistent Storage"
	case FeatureMediaKeySystemAccess:
		return "Protected Media"
	case FeatureAutoplay:
		return "Autoplay"
	default:
		return string(f)
	}
}
