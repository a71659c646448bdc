package terrain

// Kind enumerates the terrain categories in ascending threshold order.
type Kind uint8

const (
	Water Kind = iota
	Sand
	Grass
	Forest
	Mountain
)

// KindCount is the number of terrain kinds.
const KindCount = int(Mountain) + 1

var kindNames = [KindCount]string{"water", "sand", "grass", "forest", "mountain"}

func (k Kind) String() string {
	if int(k) < KindCount {
		return kindNames[k]
	}
	return "unknown"
}

// bandOffsets holds each kind's threshold relative to the water level.
var bandOffsets = [KindCount]float64{0, 0.1, 0.2, 0.3, 0.4}

// Thresholds returns the ascending classification thresholds for waterLevel,
// indexed by Kind.
func Thresholds(waterLevel float64) [KindCount]float64 {
	var out [KindCount]float64
	for i, off := range bandOffsets {
		out[i] = waterLevel + off
	}
	return out
}

// Classify returns the first kind whose threshold exceeds noiseValue, or
// Mountain when none does. isWater is derived from the kind.
func Classify(noiseValue, waterLevel float64) (isWater bool, kind Kind) {
	kind = Mountain
	for i, off := range bandOffsets {
		if noiseValue < waterLevel+off {
			kind = Kind(i)
			break
		}
	}
	return kind == Water, kind
}
