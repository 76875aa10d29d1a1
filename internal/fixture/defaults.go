package fixture

import "shelldon/internal/models"

// Fallback values used for any field the fixture does not supply.
const (
	DefaultTemperature   = 71.1
	DefaultPH            = 7.4
	DefaultAmmonia       = 0.0
	DefaultWaterStatus   = "Safe"
	DefaultDaysInHabitat = 3
	DefaultHoursSinceFed = -1 // no feeding recorded yet
	DefaultActivity      = "Active"
	DefaultActivityLevel = 60.0
	DefaultDonationGoal  = 100.0
	DefaultUptime        = 98.0
)

// Defaults is the Snapshot rendered when no fixture is available.
func Defaults() models.Snapshot {
	return models.Snapshot{
		Temperature: models.Temperature{
			Current: DefaultTemperature,
			History: []models.TemperaturePoint{},
		},
		WaterQuality: models.WaterQuality{
			PH:      DefaultPH,
			Ammonia: DefaultAmmonia,
			Status:  DefaultWaterStatus,
			History: []models.WaterQualityPoint{},
		},
		DaysInHabitat: DefaultDaysInHabitat,
		LastFed:       models.LastFed{HoursAgo: DefaultHoursSinceFed},
		Activity:      models.Activity{Status: DefaultActivity, Level: DefaultActivityLevel},
		Donations:     models.Donations{Goal: DefaultDonationGoal},
		Uptime:        DefaultUptime,
		Timeline:      defaultTimeline(),
	}
}

func defaultTimeline() []models.Milestone {
	return []models.Milestone{
		{Date: "Feb 6, 2026", Title: "Tank Setup", Items: []string{"10 gallon tank", "PVC elbow shelter", "Basic filter and lighting"}},
		{Date: "Feb 7, 2026", Title: "Digital Launch", Items: []string{"Live stream", "Website"}},
		{Date: "Feb 8, 2026", Title: "The Catch", Items: []string{"From creek to habitat"}},
		{Date: "Feb 10, 2026", Title: "First Feeding", Items: []string{"Feeding photo coming soon"}, Current: true},
	}
}
