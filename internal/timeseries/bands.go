package timeseries

// Band is an inclusive value range.
type Band struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func (b Band) Contains(v float64) bool { return v >= b.Min && v <= b.Max }

// Optimal bands and chart axis domains.
var (
	TemperatureOptimal = Band{Min: 72, Max: 76} // °F
	TemperatureDomain  = Band{Min: 68, Max: 78}

	PHBand   = Band{Min: 6.5, Max: 8.0}
	PHDomain = Band{Min: 6, Max: 8.5}

	AmmoniaDomain = Band{Min: 0, Max: 0.5} // ppm
)

// AmmoniaAlert is the ammonia level (ppm) at or above which water needs checking.
const AmmoniaAlert = 0.02
