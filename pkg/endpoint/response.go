package endpoint

// Response is what a handler produces. The set of variants is closed:
// Text and JSON are the only implementations.
type Response interface {
	isResponse()
}

// Text is rendered as text/plain.
type Text string

// JSON is rendered as an application/json object.
type JSON map[string]any

func (Text) isResponse() {}
func (JSON) isResponse() {}
