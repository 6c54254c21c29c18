package location

import "fmt"

// InfrastructureKind names one upgradable infrastructure track
type InfrastructureKind string

const (
	InfraMining     InfrastructureKind = "MINING"
	InfraLogistics  InfrastructureKind = "LOGISTICS"
	InfraStation    InfrastructureKind = "STATION"
	InfraProcessing InfrastructureKind = "PROCESSING"
)

// ParseInfrastructureKind parses a string into an InfrastructureKind
func ParseInfrastructureKind(s string) (InfrastructureKind, error) {
	switch k := InfrastructureKind(s); k {
	case InfraMining, InfraLogistics, InfraStation, InfraProcessing:
		return k, nil
	default:
		return "", fmt.Errorf("invalid infrastructure kind: %s", s)
	}
}

// StorageUnitsPerStationLevel is the stockpile capacity granted by each station level
const StorageUnitsPerStationLevel = 100

// Infrastructure holds a site's upgrade tiers
type Infrastructure struct {
	Mining     int
	Logistics  int
	Station    int
	Processing int
}

// Level returns the tier of one track
func (i Infrastructure) Level(kind InfrastructureKind) int {
	switch kind {
	case InfraMining:
		return i.Mining
	case InfraLogistics:
		return i.Logistics
	case InfraStation:
		return i.Station
	case InfraProcessing:
		return i.Processing
	default:
		return 0
	}
}

// Capacity is the stockpile limit; zero means the site has no station yet
func (i Infrastructure) Capacity() int {
	return i.Station * StorageUnitsPerStationLevel
}

func (i *Infrastructure) increment(kind InfrastructureKind) {
	switch kind {
	case InfraMining:
		i.Mining++
	case InfraLogistics:
		i.Logistics++
	case InfraStation:
		i.Station++
	case InfraProcessing:
		i.Processing++
	}
}

func (i Infrastructure) clamped() Infrastructure {
	clamp := func(v int) int {
		if v < 0 {
			return 0
		}
		return v
	}
	return Infrastructure{
		Mining:     clamp(i.Mining),
		Logistics:  clamp(i.Logistics),
		Station:    clamp(i.Station),
		Processing: clamp(i.Processing),
	}
}
