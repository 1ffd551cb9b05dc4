// Package catalog holds the static event collection and the per-session sets
// derived from it: saved events, registrations and submitted questions. The
// collection itself is read-only reference data.
package catalog

import "gigglesgo/structs"

type Chip struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Category string `json:"category"`
}

// Chips are the mutually-exclusive-or-none category quick filters.
var Chips = []Chip{
	{ID: "weekend", Label: "Weekend Highlights", Category: "Weekend Highlights"},
	{ID: "free", Label: "Top Free", Category: "Top Free"},
	{ID: "recommended", Label: "Recommended", Category: "Recommended"},
}

var events = []structs.Event{
	{
		ID: 1, Title: "Georgetown Children's Festival",
		Date: "Dec 28, 2024", Time: "10:00 AM",
		Location: "National Park, Georgetown",
		Image:    "/images/georgetown-festival.jpg",
		Category: "Weekend Highlights", IsFree: true, IsRecommended: true,
		Description:        "Join us for a day of fun activities, local music, and traditional Guyanese games for children of all ages.",
		AgeRange:           "3-12 years",
		Organizer:          "Georgetown City Council",
		RegistrationStatus: "open",
	},
	{
		ID: 2, Title: "Kaieteur Falls Nature Walk",
		Date: "Dec 29, 2024", Time: "8:00 AM",
		Location: "Kaieteur National Park",
		Image:    "/images/nature-walk.jpg",
		Category: "Recommended", IsFree: false, IsRecommended: true,
		Description:        "Educational nature walk suitable for families with children to explore Guyana's natural wonders.",
		AgeRange:           "6+ years",
		Organizer:          "Guyana Tourism Authority",
		RegistrationStatus: "open",
	},
	{
		ID: 3, Title: "Library Story Time",
		Date: "Dec 30, 2024", Time: "3:00 PM",
		Location: "National Library, Georgetown",
		Image:    "/images/library-story.jpg",
		Category: "Top Free", IsFree: true, IsRecommended: false,
		Description:        "Interactive storytelling session featuring local Guyanese folktales and children's books.",
		AgeRange:           "2-8 years",
		Organizer:          "National Library of Guyana",
		RegistrationStatus: "open",
	},
	{
		ID: 4, Title: "Craft Workshop at Community Center",
		Date: "Jan 2, 2025", Time: "2:00 PM",
		Location: "Kitty Community Center",
		Image:    "/images/craft-workshop.jpg",
		Category: "Weekend Highlights", IsFree: true, IsRecommended: true,
		Description:        "Learn traditional Guyanese crafts and create beautiful artwork to take home.",
		AgeRange:           "4-14 years",
		Organizer:          "Kitty Community Group",
		RegistrationStatus: "open",
	},
	{
		ID: 5, Title: "Splash Park Opening",
		Date: "Jan 3, 2025", Time: "9:00 AM",
		Location: "Bourda Green, Georgetown",
		Image:    "/images/splash-park.jpg",
		Category: "Top Free", IsFree: true, IsRecommended: false,
		Description:        "Grand opening of the new splash park with water games and activities for children.",
		AgeRange:           "1-12 years",
		Organizer:          "Georgetown Parks Department",
		RegistrationStatus: "open",
	},
	{
		ID: 6, Title: "Saturday Family Fun Day",
		Date: "Jan 4, 2025", Time: "11:00 AM",
		Location: "Promenade Gardens, Georgetown",
		Image:    "/images/georgetown-festival.jpg",
		Category: "Weekend Highlights", IsFree: false, IsRecommended: false,
		Description:        "Weekend family activities with games, food stalls, and entertainment for all ages.",
		AgeRange:           "All ages",
		Organizer:          "Georgetown Recreation Club",
		RegistrationStatus: "open",
	},
	{
		ID: 7, Title: "Free Puppet Show",
		Date: "Jan 5, 2025", Time: "4:00 PM",
		Location: "Cultural Center, New Amsterdam",
		Image:    "/images/library-story.jpg",
		Category: "Top Free", IsFree: true, IsRecommended: false,
		Description:        "Traditional Guyanese puppet show featuring local folklore and stories.",
		AgeRange:           "3-10 years",
		Organizer:          "Berbice Cultural Society",
		RegistrationStatus: "open",
	},
	{
		ID: 8, Title: "Educational Science Fair",
		Date: "Jan 6, 2025", Time: "1:00 PM",
		Location: "University of Guyana",
		Image:    "/images/craft-workshop.jpg",
		Category: "Recommended", IsFree: false, IsRecommended: true,
		Description:        "Interactive science experiments and demonstrations perfect for curious young minds.",
		AgeRange:           "8-16 years",
		Organizer:          "UG Science Department",
		RegistrationStatus: "open",
	},
}

// Events returns the full catalog in its fixed order. Callers must treat the
// result as read-only.
func Events() []structs.Event {
	return events
}

func EventByID(id int) (structs.Event, bool) {
	for _, ev := range events {
		if ev.ID == id {
			return ev, true
		}
	}
	return structs.Event{}, false
}

func chipByID(id string) (Chip, bool) {
	for _, c := range Chips {
		if c.ID == id {
			return c, true
		}
	}
	return Chip{}, false
}
