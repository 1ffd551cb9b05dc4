package structs

// Event is one listed happening. The catalog that holds these is read-only
// reference data; user actions only ever mutate the derived ID sets.
type Event struct {
	ID                 int    `json:"id"`
	Title              string `json:"title"`
	Date               string `json:"date"` // display date, e.g. "Dec 28, 2024"
	Time               string `json:"time"` // display time, e.g. "10:00 AM"
	Location           string `json:"location"`
	Image              string `json:"image"`
	Category           string `json:"category"`
	IsFree             bool   `json:"isFree"`
	IsRecommended      bool   `json:"isRecommended"`
	Description        string `json:"description"`
	AgeRange           string `json:"ageRange"`
	Organizer          string `json:"organizer"`
	RegistrationStatus string `json:"registrationStatus"`
}
