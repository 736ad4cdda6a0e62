package event

import "encoding/json"

// wireEnvelope is the payload pushed to connected clients.
type wireEnvelope struct {
	Event string      `json:"event"`
	Data  DomainEvent `json:"data"`
}

// Envelope serializes an event into its {event, data} wire form. It is
// built once per delivery pass, at the transport edge.
func Envelope(e DomainEvent) ([]byte, error) {
	return json.Marshal(wireEnvelope{Event: e.Name(), Data: e})
}
