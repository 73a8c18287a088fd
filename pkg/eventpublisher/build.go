package eventpublisher

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	ceevent "github.com/cloudevents/sdk-go/v2/event"
	"github.com/google/uuid"
)

var verbsByOperation = map[string]string{
	"create":  "created",
	"update":  "updated",
	"delete":  "deleted",
	"merge":   "merged",
	"void":    "voided",
	"emailed": "emailed",
}

type legacyBody struct {
	EventNotifications []legacyNotification `json:"eventNotifications"`
}

type legacyNotification struct {
	RealmID         string          `json:"realmId"`
	DataChangeEvent legacyChangeSet `json:"dataChangeEvent"`
}

type legacyChangeSet struct {
	Entities []legacyEntity `json:"entities"`
}

type legacyEntity struct {
	Name        string `json:"name"`
	ID          string `json:"id"`
	Operation   string `json:"operation"`
	LastUpdated string `json:"lastUpdated"`
}

// BuildBody renders events in the requested format.
func BuildBody(format Format, events []Event) ([]byte, error) {
	if len(events) == 0 {
		return nil, fmt.Errorf("at least one event is required")
	}
	for i, event := range events {
		if strings.TrimSpace(event.RealmID) == "" || strings.TrimSpace(event.EntityID) == "" {
			return nil, fmt.Errorf("event %d: realm and entity id are required", i)
		}
	}
	switch format {
	case FormatLegacy, "":
		return buildLegacyBody(events)
	case FormatCloudEvents:
		return buildCloudEventsBody(events)
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

// buildLegacyBody groups consecutive events of the same realm into one
// notification entry.
func buildLegacyBody(events []Event) ([]byte, error) {
	var body legacyBody
	for _, event := range events {
		entity := legacyEntity{
			Name:        entityType(event),
			ID:          event.EntityID,
			Operation:   operation(event),
			LastUpdated: eventTime(event).Format(time.RFC3339),
		}
		last := len(body.EventNotifications) - 1
		if last >= 0 && body.EventNotifications[last].RealmID == event.RealmID {
			body.EventNotifications[last].DataChangeEvent.Entities = append(body.EventNotifications[last].DataChangeEvent.Entities, entity)
			continue
		}
		body.EventNotifications = append(body.EventNotifications, legacyNotification{
			RealmID:         event.RealmID,
			DataChangeEvent: legacyChangeSet{Entities: []legacyEntity{entity}},
		})
	}
	return json.Marshal(body)
}

func buildCloudEventsBody(events []Event) ([]byte, error) {
	batch := make([]ceevent.Event, 0, len(events))
	for i, event := range events {
		ce := ceevent.New()
		ce.SetID(uuid.NewString())
		ce.SetSource("eventpublisher")
		ce.SetType(CloudEventType(entityType(event), operation(event)))
		ce.SetTime(eventTime(event))
		ce.SetExtension("intuitentityid", event.EntityID)
		ce.SetExtension("intuitaccountid", event.RealmID)
		if err := ce.Validate(); err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
		batch = append(batch, ce)
	}
	return json.Marshal(batch)
}

// CloudEventType returns the event type for an entity change, for example
// "qbo.invoice.created.v1".
func CloudEventType(entityType, operation string) string {
	verb, ok := verbsByOperation[strings.ToLower(operation)]
	if !ok {
		verb = strings.ToLower(operation)
	}
	return fmt.Sprintf("qbo.%s.%s.v1", strings.ToLower(entityType), verb)
}

func entityType(event Event) string {
	if strings.TrimSpace(event.EntityType) == "" {
		return "Invoice"
	}
	return event.EntityType
}

func operation(event Event) string {
	if strings.TrimSpace(event.Operation) == "" {
		return "Create"
	}
	return event.Operation
}

func eventTime(event Event) time.Time {
	if event.Time.IsZero() {
		return time.Now().UTC()
	}
	return event.Time.UTC()
}
