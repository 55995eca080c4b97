package deadletter

import (
	"bytes"
	"encoding/gob"
)

// encodePayload serializes an arbitrary payload using encoding/gob. Callers
// must ensure the payload is gob-encodable; struct payloads must be
// registered with gob.Register before journaling.
func encodePayload(v any) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)

	// Encode as interface{} so decodePayload can decode into interface{}
	// without knowing the concrete type up front.
	var iv = v
	if err := enc.Encode(&iv); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// decodePayload reverses encodePayload.
func decodePayload(data []byte) (any, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var iv any
	dec := gob.NewDecoder(bytes.NewBuffer(data))
	if err := dec.Decode(&iv); err != nil {
		return nil, err
	}
	return iv, nil
}
