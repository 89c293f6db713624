// pkg/registry/seed.go
package registry

// DefaultActivities returns the seed set the service starts with when no
// seed file is configured.
func DefaultActivities() map[string]Activity {
	return map[string]Activity{
		"Chess Club": {
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants: []string{
				"michael@mergington.edu",
				"daniel@mergington.edu",
			},
		},
		"Programming Class": {
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants: []string{
				"emma@mergington.edu",
				"sophia@mergington.edu",
			},
		},
		"Gym Class": {
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants: []string{
				"john@mergington.edu",
				"olivia@mergington.edu",
			},
		},
	}
}
