package resource

// Kind carries the per-resource naming used in routes, storage and
// user-facing messages.
type Kind struct {
	// Singular is the capitalized entity name used in messages ("Event").
	Singular string
	// Plural is the lowercase collection name used as route segment and
	// table name ("events").
	Plural string
}

var (
	Events     = Kind{Singular: "Event", Plural: "events"}
	Attendees  = Kind{Singular: "Attendee", Plural: "attendees"}
	Organizers = Kind{Singular: "Organizer", Plural: "organizers"}
)

func (k Kind) NotFoundMessage() string {
	return k.Singular + " not found"
}

func (k Kind) DeletedMessage() string {
	return k.Singular + " deleted"
}
