package local

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hiddenmsg/config"
	"hiddenmsg/scan"
	"hiddenmsg/util"
)

func newTestServer(t *testing.T) (*httptest.Server, *util.Storage) {
	t.Helper()
	conf := config.DefaultConfig(t.TempDir())
	store := util.NewStorage(0)
	logger := util.NewWriterLogger(&conf.Logger, io.Discard)
	handler, err := NewApiHandler(conf, store, logger)
	require.NoError(t, err)
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server, store
}

func postJSON(t *testing.T, url string, req, resp any) int {
	t.Helper()
	body, err := json.Marshal(req)
	require.NoError(t, err)
	r, err := http.Post(url, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer r.Body.Close()
	require.NoError(t, json.NewDecoder(r.Body).Decode(resp))
	return r.StatusCode
}

func TestEncodeDecode(t *testing.T) {
	server, store := newTestServer(t)

	var enc EncodeResponse
	status := postJSON(t, server.URL+"/api/encode", EncodeRequest{Message: "hi there", Carrier: "🦄"}, &enc)
	require.Equal(t, http.StatusOK, status, enc.Errors)
	assert.Empty(t, enc.Errors)
	assert.Equal(t, "🦄", enc.Carrier)
	assert.Equal(t, "32-VS", enc.Scheme)

	var dec DecodeResponse
	postJSON(t, server.URL+"/api/decode", DecodeRequest{Text: enc.Data}, &dec)
	assert.True(t, dec.Found)
	assert.Equal(t, "hi there", dec.Text)
	assert.Equal(t, "32-VS", dec.Scheme)

	stats, _ := store.Stats()
	assert.EqualValues(t, 1, stats["🦄"])
}

func TestEncodeRandomCarrier(t *testing.T) {
	server, store := newTestServer(t)

	var enc EncodeResponse
	postJSON(t, server.URL+"/api/encode", EncodeRequest{Message: "x"}, &enc)
	require.Empty(t, enc.Errors)
	assert.Contains(t, config.DefaultConfig("").Encoder.Carriers, enc.Carrier)

	recents, _ := store.Recents(0)
	assert.Equal(t, []string{enc.Carrier}, recents)
}

func TestEncodeErrors(t *testing.T) {
	server, _ := newTestServer(t)

	testCases := []struct {
		name string
		req  EncodeRequest
	}{
		{"empty message", EncodeRequest{Carrier: "a"}},
		{"unknown scheme", EncodeRequest{Message: "a", Carrier: "a", Scheme: "64-VS"}},
		{"unknown mode", EncodeRequest{Message: "a", Carrier: "a", Mode: "double"}},
		{"unknown placement", EncodeRequest{Message: "a", Carrier: "a", Placement: "middle"}},
		{"bad base64", EncodeRequest{Data: "%%%", Carrier: "a"}},
		{"no anchors", EncodeRequest{Message: "a", Carrier: "   ", Mode: "multi"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var enc EncodeResponse
			status := postJSON(t, server.URL+"/api/encode", tc.req, &enc)
			assert.Equal(t, http.StatusBadRequest, status)
			assert.NotEmpty(t, enc.Errors)
		})
	}
}

func TestPlacementAndLinks(t *testing.T) {
	server, _ := newTestServer(t)

	var enc EncodeResponse
	postJSON(t, server.URL+"/api/encode", EncodeRequest{
		Message:   "gif: https://giphy.com/gifs/cat",
		Carrier:   "nothing to see here",
		Scheme:    "ZWJ-BINARY",
		Placement: "suffix",
	}, &enc)
	require.Empty(t, enc.Errors)
	assert.Equal(t, "ZWJ-BINARY", enc.Scheme)

	var dec DecodeResponse
	postJSON(t, server.URL+"/api/decode", DecodeRequest{Text: enc.Data}, &dec)
	require.True(t, dec.Found)
	assert.Equal(t, "ZWJ-BINARY", dec.Scheme)
	require.Len(t, dec.Links, 1)
	assert.Equal(t, Link{URL: "https://giphy.com/gifs/cat", Short: "https://giphy.com/gifs/cat", GIF: true}, dec.Links[0])
}

func TestRawData(t *testing.T) {
	server, _ := newTestServer(t)
	raw := []byte{0x00, 0xff, 0x10, 0x80}

	var enc EncodeResponse
	postJSON(t, server.URL+"/api/encode", EncodeRequest{
		Data:    base64.StdEncoding.EncodeToString(raw),
		Carrier: "a few words",
	}, &enc)
	require.Empty(t, enc.Errors)

	var dec DecodeResponse
	postJSON(t, server.URL+"/api/decode", DecodeRequest{Text: enc.Data, Raw: true}, &dec)
	require.True(t, dec.Found)
	got, err := base64.StdEncoding.DecodeString(dec.Data)
	require.NoError(t, err)
	assert.Equal(t, raw, got)

	postJSON(t, server.URL+"/api/decode", DecodeRequest{Text: "a few words", Raw: true}, &dec)
	assert.False(t, dec.Found)
	assert.NotEmpty(t, dec.Errors)
}

func TestScanEndpoint(t *testing.T) {
	server, _ := newTestServer(t)
	hidden, err := Encode(&config.DefaultConfig("").Encoder, &EncodeRequest{Message: "found me", Carrier: "⭐"})
	require.NoError(t, err)

	var hits []scan.Hit
	postJSON(t, server.URL+"/api/scan", ScanRequest{Texts: []string{"plain", "line\n" + hidden.Text}}, &hits)
	require.Len(t, hits, 1)
	assert.Equal(t, "#1", hits[0].Source)
	assert.Equal(t, 2, hits[0].Line)
	assert.Equal(t, "found me", hits[0].Result.Text)
}

func TestCarriersAndRecents(t *testing.T) {
	server, store := newTestServer(t)
	require.NoError(t, store.RecordUsage("a"))

	r, err := http.Get(server.URL + "/api/carriers")
	require.NoError(t, err)
	var carriers CarriersResponse
	require.NoError(t, json.NewDecoder(r.Body).Decode(&carriers))
	r.Body.Close()
	assert.Equal(t, []string{"a"}, carriers.Recents)
	assert.Len(t, carriers.Alphabet, 26)
	assert.NotEmpty(t, carriers.Presets)

	req, err := http.NewRequest(http.MethodDelete, server.URL+"/api/recents", nil)
	require.NoError(t, err)
	r, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	r.Body.Close()
	assert.Equal(t, http.StatusOK, r.StatusCode)

	recents, _ := store.Recents(0)
	assert.Empty(t, recents)
	stats, _ := store.Stats()
	assert.EqualValues(t, 1, stats["a"])
}

func TestCBOR(t *testing.T) {
	server, _ := newTestServer(t)

	body, err := cbor.Marshal(EncodeRequest{Message: "cbor", Carrier: "b"})
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPost, server.URL+"/api/encode", bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/cbor")
	req.Header.Set("Accept", "application/cbor")
	r, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer r.Body.Close()
	assert.Equal(t, "application/cbor", r.Header.Get("Content-Type"))

	data, err := io.ReadAll(r.Body)
	require.NoError(t, err)
	var enc EncodeResponse
	require.NoError(t, cbor.Unmarshal(data, &enc))
	assert.Empty(t, enc.Errors)

	res := Decode(config.DefaultConfig("").Decoder.TextDecoder(), &DecodeRequest{Text: enc.Data})
	assert.Equal(t, "cbor", res.Text)
}

func TestMethodNotAllowed(t *testing.T) {
	server, _ := newTestServer(t)
	r, err := http.Get(server.URL + "/api/encode")
	require.NoError(t, err)
	r.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, r.StatusCode)
}
