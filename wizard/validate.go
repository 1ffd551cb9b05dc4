package wizard

import "gigglesgo/structs"

// messages are the user-facing texts per field; every failure of a field maps
// to the same message regardless of which rule tripped.
var messages = map[string]string{
	"title":          "Title must be at least 5 characters",
	"description":    "Description must be at least 20 characters",
	"category":       "Please select a category",
	"location":       "Location is required",
	"date":           "Date is required",
	"time":           "Start time is required",
	"organizerName":  "Organizer name is required",
	"organizerEmail": "Valid email is required",
}

var rules = map[string]string{
	"title":          "min=5",
	"description":    "min=20",
	"category":       "required",
	"location":       "required",
	"date":           "required",
	"time":           "required",
	"organizerName":  "min=2",
	"organizerEmail": "required,email",
}

// fieldError checks one field against its rule. Caller holds the lock.
func (wz *Wizard) fieldError(name string) string {
	rule, ok := rules[name]
	if !ok {
		return ""
	}
	if err := wz.validate.Var(wz.fieldValue(name), rule); err != nil {
		return messages[name]
	}
	return ""
}

// validateStep runs every rule of one step and collects all failures. Caller
// holds the lock.
func (wz *Wizard) validateStep(step int) structs.ValidationErrors {
	errs := make(structs.ValidationErrors)
	for _, field := range stepFields[step] {
		if msg := wz.fieldError(field); msg != "" {
			errs[field] = msg
			wz.errors[field] = msg
		} else {
			delete(wz.errors, field)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (wz *Wizard) fieldValue(name string) string {
	switch name {
	case "title":
		return wz.data.Title
	case "description":
		return wz.data.Description
	case "longDescription":
		return wz.data.LongDescription
	case "category":
		return wz.data.Category
	case "location":
		return wz.data.Location
	case "date":
		return wz.data.Date
	case "time":
		return wz.data.Time
	case "endTime":
		return wz.data.EndTime
	case "price":
		return wz.data.Price
	case "customPrice":
		return wz.data.CustomPrice
	case "organizerName":
		return wz.data.OrganizerName
	case "organizerEmail":
		return wz.data.OrganizerEmail
	case "organizerPhone":
		return wz.data.OrganizerPhone
	case "organizerBio":
		return wz.data.OrganizerBio
	}
	return ""
}
