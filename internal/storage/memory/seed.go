package memory

import "github.com/surajbardeAS24/skills-getting-started-with-github-copilot/internal/domain"

// Seed returns the default activity catalog the service starts with. Each
// call returns a fresh map so tests can build isolated registries.
func Seed() map[string]domain.Activity {
	return map[string]domain.Activity{
		"Chess Club": {
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		"Programming Class": {
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		"Gym Class": {
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
		"Soccer Team": {
			Description:     "Join the school soccer team and compete in matches",
			Schedule:        "Wednesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 22,
			Participants:    []string{"lucas@mergington.edu", "mia@mergington.edu"},
		},
		"Basketball Club": {
			Description:     "Practice basketball skills and play friendly games",
			Schedule:        "Mondays, 3:30 PM - 5:00 PM",
			MaxParticipants: 15,
			Participants:    []string{"ethan@mergington.edu", "ava@mergington.edu"},
		},
		"Art Workshop": {
			Description:     "Explore painting, drawing, and sculpture techniques",
			Schedule:        "Thursdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 18,
			Participants:    []string{"isabella@mergington.edu", "liam@mergington.edu"},
		},
		"Drama Club": {
			Description:     "Act, direct, and produce school plays and performances",
			Schedule:        "Tuesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 20,
			Participants:    []string{"noah@mergington.edu", "charlotte@mergington.edu"},
		},
		"Mathletes": {
			Description:     "Compete in math competitions and solve challenging problems",
			Schedule:        "Fridays, 4:00 PM - 5:00 PM",
			MaxParticipants: 10,
			Participants:    []string{"oliver@mergington.edu", "amelia@mergington.edu"},
		},
		"Science Club": {
			Description:     "Conduct experiments and explore scientific concepts",
			Schedule:        "Wednesdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 16,
			Participants:    []string{"elijah@mergington.edu", "harper@mergington.edu"},
		},
	}
}
