package timeseries

// Status is the water safety label.
type Status string

const (
	StatusSafe  Status = "Safe"
	StatusCheck Status = "Check"
)

// WaterStatus reports Safe when pH is within PHBand (inclusive) and ammonia
// is strictly below AmmoniaAlert.
func WaterStatus(ph, ammonia float64) Status {
	if PHBand.Contains(ph) && ammonia < AmmoniaAlert {
		return StatusSafe
	}
	return StatusCheck
}
