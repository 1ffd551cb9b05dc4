package structs

// ImageRef describes one attached image. Size is in bytes. Path is set once
// the upload handler has written the file to disk; the in-memory flow leaves
// it empty.
type ImageRef struct {
	Name        string `json:"name"`
	Size        int64  `json:"size"`
	ContentType string `json:"contentType"`
	Path        string `json:"path,omitempty"`
}

// EventSubmission is the wizard's form data. It is mutated step by step and
// handed to the publish/draft collaborators as a value copy, never shared.
type EventSubmission struct {
	Title           string     `json:"title" validate:"min=5"`
	Description     string     `json:"description" validate:"min=20"`
	LongDescription string     `json:"longDescription"`
	Category        string     `json:"category" validate:"required"`
	Location        string     `json:"location" validate:"required"`
	Date            string     `json:"date" validate:"required"` // 2006-01-02
	Time            string     `json:"time" validate:"required"` // 15:04
	EndTime         string     `json:"endTime"`
	AgeRange        [2]int     `json:"ageRange"`
	Price           string     `json:"price"`
	CustomPrice     string     `json:"customPrice"`
	MaxAttendees    int        `json:"maxAttendees"`
	OrganizerName   string     `json:"organizerName" validate:"min=2"`
	OrganizerEmail  string     `json:"organizerEmail" validate:"required,email"`
	OrganizerPhone  string     `json:"organizerPhone"`
	OrganizerBio    string     `json:"organizerBio"`
	Tags            []string   `json:"tags"`
	Images          []ImageRef `json:"images"`
}
