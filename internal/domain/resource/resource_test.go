package resource

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithIDReturnsCopy(t *testing.T) {
	event := Event{Name: "Launch", Date: "2024-01-01", Venue: "Hall A"}

	assigned := event.WithID(7)

	require.EqualValues(t, 7, assigned.RecordID())
	require.EqualValues(t, 0, event.RecordID(), "original must stay untouched")
	require.Equal(t, "Launch", assigned.Name)

	attendee := Attendee{Name: "Ada", EventID: 7}
	require.EqualValues(t, 3, attendee.WithID(3).RecordID())

	organizer := Organizer{Name: "Ops", Contact: "ops@example.org"}
	require.EqualValues(t, 9, organizer.WithID(9).RecordID())
}

func TestKindMessages(t *testing.T) {
	tests := []struct {
		kind     Kind
		notFound string
		deleted  string
	}{
		{Events, "Event not found", "Event deleted"},
		{Attendees, "Attendee not found", "Attendee deleted"},
		{Organizers, "Organizer not found", "Organizer deleted"},
	}

	for _, tt := range tests {
		t.Run(tt.kind.Plural, func(t *testing.T) {
			require.Equal(t, tt.notFound, tt.kind.NotFoundMessage())
			require.Equal(t, tt.deleted, tt.kind.DeletedMessage())
		})
	}
}
