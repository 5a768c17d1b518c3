package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewEventSplitsCoreAndExtra(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	body := map[string]any{
		"name":      "Gala",
		"date":      "2024-05-01",
		"startTime": "18:00",
		"endTime":   "23:00",
		"venue":     "Main Hall",
		"capacity":  float64(250),
		"catering":  true,
	}

	event := NewEvent("01J0KXMQZ8RPXJPN8J9Q6TK0WP", "u1", body, now)

	require.Equal(t, "01J0KXMQZ8RPXJPN8J9Q6TK0WP", event.ID)
	require.Equal(t, "u1", event.OwnerID)
	require.Equal(t, "Gala", event.Name)
	require.Equal(t, "Main Hall", event.Venue)
	require.Equal(t, now, event.CreatedAt)
	require.Equal(t, now, event.UpdatedAt)
	require.Equal(t, map[string]any{"capacity": float64(250), "catering": true}, event.Extra)
}

func TestEventJSONFlattensExtra(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	event := Event{
		ID:        "01J0KXMQZ8RPXJPN8J9Q6TK0WP",
		OwnerID:   "u1",
		Name:      "Gala",
		Date:      "2024-05-01",
		StartTime: "18:00",
		EndTime:   "23:00",
		Venue:     "Main Hall",
		CreatedAt: now,
		UpdatedAt: now,
		Extra:     map[string]any{"capacity": float64(250)},
	}

	payload, err := json.Marshal(event)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(payload, &doc))
	require.Equal(t, "u1", doc["ownerId"])
	require.Equal(t, float64(250), doc["capacity"])
	require.NotContains(t, doc, "Extra")

	var decoded Event
	require.NoError(t, json.Unmarshal(payload, &decoded))
	require.Equal(t, event.ID, decoded.ID)
	require.Equal(t, event.OwnerID, decoded.OwnerID)
	require.Equal(t, event.Venue, decoded.Venue)
	require.True(t, decoded.CreatedAt.Equal(now))
	require.Equal(t, map[string]any{"capacity": float64(250)}, decoded.Extra)
}

func TestApplyPatchMergesShallow(t *testing.T) {
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	later := created.Add(time.Hour)
	event := Event{
		ID:        "01J0KXMQZ8RPXJPN8J9Q6TK0WP",
		OwnerID:   "u1",
		Name:      "Gala",
		Venue:     "Main Hall",
		CreatedAt: created,
		UpdatedAt: created,
		Extra:     map[string]any{"capacity": float64(250)},
	}

	merged := ApplyPatch(event, map[string]any{
		"venue":    "Annex",
		"capacity": float64(300),
		"theme":    "masquerade",
	}, later)

	require.Equal(t, "Annex", merged.Venue)
	require.Equal(t, "Gala", merged.Name)
	require.Equal(t, "u1", merged.OwnerID)
	require.Equal(t, created, merged.CreatedAt)
	require.Equal(t, later, merged.UpdatedAt)
	require.Equal(t, float64(300), merged.Extra["capacity"])
	require.Equal(t, "masquerade", merged.Extra["theme"])

	// The original record is untouched.
	require.Equal(t, "Main Hall", event.Venue)
	require.Equal(t, float64(250), event.Extra["capacity"])
}
