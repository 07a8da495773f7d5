package dataset

import "math/rand"

// Zone is one of the nine regions the goal mouth is divided into on
// the shot map: three horizontal thirds by three vertical bands.
type Zone int

const (
	TopLeft Zone = iota
	TopCenter
	TopRight
	Left
	Center
	Right
	BottomLeft
	BottomCenter
	BottomRight

	numZones
)

var zoneNames = [...]string{
	"TOP LEFT", "TOP CENTER", "TOP RIGHT",
	"LEFT", "CENTER", "RIGHT",
	"BOTTOM LEFT", "BOTTOM CENTER", "BOTTOM RIGHT",
}

func (z Zone) String() string {
	if z < 0 || z >= numZones {
		return "UNKNOWN"
	}
	return zoneNames[z]
}

// Goal mouth geometry in meters, matching the shot map: x thirds at
// 1.05 and 2.11 of 3.16, y bands at 0.70 and 1.39 of 2.08.
var (
	zoneX = [3]Range{{0.00, 1.05}, {1.05, 2.11}, {2.11, 3.16}}
	zoneY = [3]Range{{1.39, 2.08}, {0.70, 1.39}, {0.00, 0.70}}
)

// Range is a half-open coordinate interval used by the zone geometry.
type Range struct {
	Min float64
	Max float64
}

// Bounds returns the x and y coordinate ranges of the zone. A zone
// outside the nine defined ones covers the whole goal mouth, matching
// String's graceful handling of unknown values.
func (z Zone) Bounds() (x, y Range) {
	if z < 0 || z >= numZones {
		return Range{zoneX[0].Min, zoneX[2].Max}, Range{zoneY[2].Min, zoneY[0].Max}
	}
	return zoneX[int(z)%3], zoneY[int(z)/3]
}

// Shot parameter ranges for synthetic shots: distances between the
// 7 m line and the backcourt, speeds in the professional range.
const (
	minShotDistance = 6.90
	maxShotDistance = 10.50
	minShotSpeed    = 85.0
	maxShotSpeed    = 110.0
)

// RandomShot generates one randomized shot aimed at the given zone.
func RandomShot(rng *rand.Rand, z Zone) Sample {
	xr, yr := z.Bounds()
	return Shot(
		uniform(rng, minShotDistance, maxShotDistance),
		uniform(rng, minShotSpeed, maxShotSpeed),
		uniform(rng, xr.Min, xr.Max),
		uniform(rng, yr.Min, yr.Max),
		float64(rng.Intn(2)),
	)
}

// GenerateShots produces one randomized shot per requested zone, in
// order, from a seeded source. The same seed and zone sequence always
// yield the same dataset.
func GenerateShots(seed int64, zones []Zone) Dataset {
	rng := rand.New(rand.NewSource(seed))
	ds := make(Dataset, 0, len(zones))
	for _, z := range zones {
		ds = append(ds, RandomShot(rng, z))
	}
	return ds
}

// AllZones lists every zone once, top-left to bottom-right.
func AllZones() []Zone {
	zones := make([]Zone, numZones)
	for i := range zones {
		zones[i] = Zone(i)
	}
	return zones
}

func uniform(rng *rand.Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}
