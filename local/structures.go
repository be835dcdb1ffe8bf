package local

type EncodeRequest struct {
	Message   string `json:"message" cbor:"message"`
	Data      string `json:"data" cbor:"data"`           // base64-encoded raw bytes, used instead of message
	Carrier   string `json:"carrier" cbor:"carrier"`     // picked from the presets when empty
	Mode      string `json:"mode" cbor:"mode"`           // single or multi
	Scheme    string `json:"scheme" cbor:"scheme"`       // 32-VS by default
	Placement string `json:"placement" cbor:"placement"` // prefix, suffix or embed
}

type EncodeResponse struct {
	Errors  []string `json:"errors" cbor:"errors"`
	Data    string   `json:"data" cbor:"data"`       // text with the hidden message
	Carrier string   `json:"carrier" cbor:"carrier"` // carrier actually used
	Scheme  string   `json:"scheme" cbor:"scheme"`
}

type DecodeRequest struct {
	Text string `json:"text" cbor:"text"`
	Raw  bool   `json:"raw" cbor:"raw"` // reveal raw 32-VS bytes, base64 in the response
}

type Link struct {
	URL   string `json:"url" cbor:"url"`
	Short string `json:"short" cbor:"short"`
	GIF   bool   `json:"gif" cbor:"gif"`
}

type DecodeResponse struct {
	Errors []string `json:"errors" cbor:"errors"`
	Found  bool     `json:"found" cbor:"found"`
	Text   string   `json:"text" cbor:"text"`
	Data   string   `json:"data,omitempty" cbor:"data,omitempty"`
	Scheme string   `json:"scheme" cbor:"scheme"`
	Detail string   `json:"detail,omitempty" cbor:"detail,omitempty"`
	Links  []Link   `json:"links,omitempty" cbor:"links,omitempty"`
}

type ScanRequest struct {
	Texts []string `json:"texts" cbor:"texts"`
}

type CarriersResponse struct {
	Presets  []string `json:"presets" cbor:"presets"`
	Alphabet []string `json:"alphabet" cbor:"alphabet"`
	Recents  []string `json:"recents" cbor:"recents"`
}

type Response struct {
	Ok      bool   `json:"ok" cbor:"ok"`
	Message string `json:"message" cbor:"message"` // error message, if any
}
