package units

const (
	feetPerMeter                  = 3.28084
	feetPerMile                   = 5280
	milesPerHourPerMeterPerSecond = 2.236936
)

func MetersToFeet(m float64) float64 {
	return m * feetPerMeter
}

func FeetToMeters(ft float64) float64 {
	return ft / feetPerMeter
}

func FeetToMiles(ft float64) float64 {
	return ft / feetPerMile
}

func MilesToFeet(mi float64) float64 {
	return mi * feetPerMile
}

func MetersToMiles(m float64) float64 {
	return FeetToMiles(MetersToFeet(m))
}

func MilesToMeters(mi float64) float64 {
	return FeetToMeters(MilesToFeet(mi))
}

func MetersPerSecondToMilesPerHour(mps float64) float64 {
	return mps * milesPerHourPerMeterPerSecond
}

func MilesPerHourToMetersPerSecond(mph float64) float64 {
	return mph / milesPerHourPerMeterPerSecond
}
