package events

import (
	"encoding/json"
	"time"
)

// JSON field names for the system-owned and required parts of a record.
// Everything else a caller submits rides along in Extra.
const (
	FieldID        = "id"
	FieldOwnerID   = "ownerId"
	FieldName      = "name"
	FieldDate      = "date"
	FieldStartTime = "startTime"
	FieldEndTime   = "endTime"
	FieldVenue     = "venue"
	FieldCreatedAt = "createdAt"
	FieldUpdatedAt = "updatedAt"
)

// Event is one record in the dev event collection. The schema is open:
// the named fields are fixed, and Extra carries any additional
// caller-supplied attributes verbatim. On the wire an event is a single
// flat JSON object; Extra keys are flattened into the top level.
type Event struct {
	ID        string
	OwnerID   string
	Name      string
	Date      string
	StartTime string
	EndTime   string
	Venue     string
	CreatedAt time.Time
	UpdatedAt time.Time
	Extra     map[string]any
}

// NewEvent builds a fresh record from an already validated create body.
func NewEvent(id, ownerID string, body map[string]any, now time.Time) Event {
	event := Event{
		ID:        id,
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return applyFields(event, body)
}

// ApplyPatch shallow-merges an already validated patch body over an
// existing record and stamps a fresh UpdatedAt. Known fields update the
// struct; unknown fields overwrite (or add) Extra entries. The original
// event is not mutated.
func ApplyPatch(event Event, fields map[string]any, now time.Time) Event {
	merged := applyFields(event, fields)
	merged.UpdatedAt = now
	return merged
}

func applyFields(event Event, fields map[string]any) Event {
	var extra map[string]any
	if len(event.Extra) > 0 {
		extra = make(map[string]any, len(event.Extra)+len(fields))
		for key, value := range event.Extra {
			extra[key] = value
		}
	}

	for key, value := range fields {
		switch key {
		case FieldName:
			event.Name, _ = value.(string)
		case FieldDate:
			event.Date, _ = value.(string)
		case FieldStartTime:
			event.StartTime, _ = value.(string)
		case FieldEndTime:
			event.EndTime, _ = value.(string)
		case FieldVenue:
			event.Venue, _ = value.(string)
		default:
			if extra == nil {
				extra = make(map[string]any, len(fields))
			}
			extra[key] = value
		}
	}

	event.Extra = extra
	return event
}

func (e Event) MarshalJSON() ([]byte, error) {
	doc := make(map[string]any, len(e.Extra)+9)
	for key, value := range e.Extra {
		doc[key] = value
	}
	doc[FieldID] = e.ID
	doc[FieldOwnerID] = e.OwnerID
	doc[FieldName] = e.Name
	doc[FieldDate] = e.Date
	doc[FieldStartTime] = e.StartTime
	doc[FieldEndTime] = e.EndTime
	doc[FieldVenue] = e.Venue
	doc[FieldCreatedAt] = e.CreatedAt.UTC().Format(time.RFC3339Nano)
	doc[FieldUpdatedAt] = e.UpdatedAt.UTC().Format(time.RFC3339Nano)
	return json.Marshal(doc)
}

func (e *Event) UnmarshalJSON(data []byte) error {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	e.ID = takeString(doc, FieldID)
	e.OwnerID = takeString(doc, FieldOwnerID)
	e.Name = takeString(doc, FieldName)
	e.Date = takeString(doc, FieldDate)
	e.StartTime = takeString(doc, FieldStartTime)
	e.EndTime = takeString(doc, FieldEndTime)
	e.Venue = takeString(doc, FieldVenue)

	var err error
	if e.CreatedAt, err = takeTime(doc, FieldCreatedAt); err != nil {
		return err
	}
	if e.UpdatedAt, err = takeTime(doc, FieldUpdatedAt); err != nil {
		return err
	}

	if len(doc) > 0 {
		e.Extra = doc
	} else {
		e.Extra = nil
	}
	return nil
}

func takeString(doc map[string]any, key string) string {
	value, ok := doc[key].(string)
	if ok {
		delete(doc, key)
	}
	return value
}

func takeTime(doc map[string]any, key string) (time.Time, error) {
	raw := takeString(doc, key)
	if raw == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339Nano, raw)
}
