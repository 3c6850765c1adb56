package postgres

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/eventdesk/server/internal/domain/resource"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestEncodeDocStripsID(t *testing.T) {
	doc, err := encodeDoc(resource.Event{ID: 42, Name: "Launch", Date: "2024-01-01", Venue: "Hall A"})
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(doc, &fields))
	require.NotContains(t, fields, "id", "id column is authoritative")
	require.Equal(t, "Launch", fields["name"])
	require.Equal(t, "2024-01-01", fields["date"])
	require.Equal(t, "Hall A", fields["venue"])
}

func TestDecodeDocInjectsID(t *testing.T) {
	record, err := decodeDoc[resource.Attendee](5, []byte(`{"name":"Ada","eventId":2}`))
	require.NoError(t, err)
	require.Equal(t, resource.Attendee{ID: 5, Name: "Ada", EventID: 2}, record)
}

func TestDecodeDocOverridesStoredID(t *testing.T) {
	// A stray id inside the document must lose against the id column.
	record, err := decodeDoc[resource.Organizer](3, []byte(`{"id":99,"name":"Ops","contact":"ops@example.org"}`))
	require.NoError(t, err)
	require.EqualValues(t, 3, record.ID)
}

func TestDecodeDocInvalidJSON(t *testing.T) {
	_, err := decodeDoc[resource.Event](1, []byte(`{`))
	require.Error(t, err)
}

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "duplicate key",
			err:  &pgconn.PgError{Code: "23505"},
			want: true,
		},
		{
			name: "wrapped duplicate key",
			err:  errors.Join(errors.New("insert events"), &pgconn.PgError{Code: "23505"}),
			want: true,
		},
		{
			name: "other pg error",
			err:  &pgconn.PgError{Code: "42P01"},
			want: false,
		},
		{
			name: "plain error",
			err:  errors.New("boom"),
			want: false,
		},
		{
			name: "nil",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, isUniqueViolation(tt.err))
		})
	}
}
