package units

// System selects the units results are reported in. Computations are always
// carried out in metric units.
type System int

const (
	Metric System = iota
	Imperial
)

func FromMetricFlag(metric bool) System {
	if metric {
		return Metric
	}
	return Imperial
}

func (s System) String() string {
	if s == Imperial {
		return "imperial"
	}
	return "metric"
}

func (s System) DistanceLabel() string {
	if s == Imperial {
		return "miles"
	}
	return "m"
}

func (s System) SpeedLabel() string {
	if s == Imperial {
		return "mph"
	}
	return "m/s"
}

func (s System) ElevationLabel() string {
	if s == Imperial {
		return "ft"
	}
	return "m"
}
