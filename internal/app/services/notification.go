package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	cebinding "github.com/cloudevents/sdk-go/v2/binding"
	ceevent "github.com/cloudevents/sdk-go/v2/event"
	cehttp "github.com/cloudevents/sdk-go/v2/protocol/http"

	"github.com/fr0stylo/quoterecon/internal/app/ports"
)

// CloudEvents extension attributes carried by accounting notifications.
const (
	EntityIDExtension  = "intuitentityid"
	AccountIDExtension = "intuitaccountid"
)

var operationsByVerb = map[string]string{
	"created": ports.OperationCreate,
	"updated": "Update",
	"deleted": "Delete",
	"merged":  "Merge",
	"voided":  "Void",
	"emailed": "Emailed",
}

type legacyPayload struct {
	EventNotifications []legacyNotification `json:"eventNotifications"`
}

type legacyNotification struct {
	RealmID         string `json:"realmId"`
	DataChangeEvent struct {
		Entities []legacyEntity `json:"entities"`
	} `json:"dataChangeEvent"`
}

type legacyEntity struct {
	Name      string `json:"name"`
	ID        string `json:"id"`
	Operation string `json:"operation"`
}

// ParseNotification decodes a webhook body in any of the delivery formats:
// the eventNotifications document, a structured CloudEvents batch or single
// event, or a binary-mode CloudEvent described by ce-* headers.
func ParseNotification(ctx context.Context, headers http.Header, body []byte) (ports.Notification, error) {
	trimmed := bytes.TrimSpace(body)
	if headers.Get("Ce-Specversion") != "" {
		event, err := binaryCloudEvent(ctx, headers, body)
		if err != nil {
			return nil, err
		}
		return notificationFromCloudEvents([]ceevent.Event{*event})
	}
	if len(trimmed) == 0 {
		return nil, errors.New("empty body")
	}

	switch trimmed[0] {
	case '[':
		var events []ceevent.Event
		if err := json.Unmarshal(trimmed, &events); err != nil {
			return nil, fmt.Errorf("decode cloudevents batch: %w", err)
		}
		return notificationFromCloudEvents(events)
	case '{':
		var envelope struct {
			SpecVersion string `json:"specversion"`
		}
		if err := json.Unmarshal(trimmed, &envelope); err != nil {
			return nil, fmt.Errorf("decode notification: %w", err)
		}
		if envelope.SpecVersion != "" {
			var event ceevent.Event
			if err := json.Unmarshal(trimmed, &event); err != nil {
				return nil, fmt.Errorf("decode cloudevent: %w", err)
			}
			return notificationFromCloudEvents([]ceevent.Event{event})
		}
		return legacyNotificationEvents(trimmed)
	default:
		return nil, errors.New("notification must be a JSON object or array")
	}
}

func legacyNotificationEvents(body []byte) (ports.Notification, error) {
	var payload legacyPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode notification: %w", err)
	}
	var notification ports.Notification
	for _, item := range payload.EventNotifications {
		for _, entity := range item.DataChangeEvent.Entities {
			notification = append(notification, ports.ChangeEvent{
				RealmID:    strings.TrimSpace(item.RealmID),
				EntityType: strings.TrimSpace(entity.Name),
				Operation:  strings.TrimSpace(entity.Operation),
				EntityID:   strings.TrimSpace(entity.ID),
			})
		}
	}
	return notification, nil
}

func notificationFromCloudEvents(events []ceevent.Event) (ports.Notification, error) {
	notification := make(ports.Notification, 0, len(events))
	for i := range events {
		event := &events[i]
		if err := event.Validate(); err != nil {
			return nil, fmt.Errorf("cloudevent %d: %w", i, err)
		}
		// Foreign types keep their raw type so reconciliation counts them as ignored.
		entityType, operation, ok := parseEventType(event.Type())
		if !ok {
			entityType, operation = strings.TrimSpace(event.Type()), ""
		}
		notification = append(notification, ports.ChangeEvent{
			RealmID:    extensionString(event, AccountIDExtension),
			EntityType: entityType,
			Operation:  operation,
			EntityID:   extensionString(event, EntityIDExtension),
		})
	}
	return notification, nil
}

// parseEventType maps "qbo.invoice.created.v1" to ("Invoice", "Create").
func parseEventType(eventType string) (string, string, bool) {
	parts := strings.Split(strings.TrimSpace(eventType), ".")
	if len(parts) < 3 || parts[0] != "qbo" || parts[1] == "" {
		return "", "", false
	}
	entity := parts[1]
	if strings.EqualFold(entity, ports.EntityInvoice) {
		entity = ports.EntityInvoice
	} else {
		entity = strings.ToUpper(entity[:1]) + entity[1:]
	}
	operation, ok := operationsByVerb[strings.ToLower(parts[2])]
	if !ok {
		operation = parts[2]
	}
	return entity, operation, true
}

func extensionString(event *ceevent.Event, name string) string {
	value, ok := event.Extensions()[name]
	if !ok || value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(fmt.Sprint(value))
}

func binaryCloudEvent(ctx context.Context, headers http.Header, body []byte) (*ceevent.Event, error) {
	req := &http.Request{
		Method: http.MethodPost,
		Header: headers.Clone(),
		Body:   io.NopCloser(bytes.NewReader(body)),
	}
	message := cehttp.NewMessageFromHttpRequest(req)
	defer func() {
		_ = message.Finish(nil)
	}()

	event, err := cebinding.ToEvent(ctx, message)
	if err != nil {
		return nil, fmt.Errorf("decode binary cloudevent: %w", err)
	}
	return event, nil
}
