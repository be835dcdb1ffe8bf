package text

// Result is a message recovered from text.
type Result struct {
	Text   string `json:"text" cbor:"text"`
	Scheme string `json:"scheme" cbor:"scheme"`
	Detail string `json:"detail,omitempty" cbor:"detail,omitempty"`
}

func (r Result) String() string {
	if r.Detail != "" {
		return r.Scheme + " (" + r.Detail + "): " + r.Text
	}
	return r.Scheme + ": " + r.Text
}
