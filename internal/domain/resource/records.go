package resource

// Event is a scheduled happening at a venue.
type Event struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Date  string `json:"date"`
	Venue string `json:"venue"`
}

func (e Event) RecordID() int64 { return e.ID }

func (e Event) WithID(id int64) Event {
	e.ID = id
	return e
}

// Attendee is a person registered for an event. EventID references
// Event.ID but is not enforced: an attendee may point at an event that no
// longer exists.
type Attendee struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	EventID int64  `json:"eventId"`
}

func (a Attendee) RecordID() int64 { return a.ID }

func (a Attendee) WithID(id int64) Attendee {
	a.ID = id
	return a
}

// Organizer is a contact responsible for running events.
type Organizer struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

func (o Organizer) RecordID() int64 { return o.ID }

func (o Organizer) WithID(id int64) Organizer {
	o.ID = id
	return o
}
