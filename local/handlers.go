package local

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/fxamacker/cbor/v2"

	"hiddenmsg/config"
	"hiddenmsg/scan"
	"hiddenmsg/stegano/text"
	"hiddenmsg/util"
)

const (
	maxBodySize  = 1 << 20
	cborMimeType = "application/cbor"
	jsonMimeType = "application/json"
)

type handler struct {
	encoder  config.EncoderConfig
	decoder  text.Decoder
	scanner  *scan.Scanner
	store    util.UsageStore
	logger   *util.Logger
	cborMode cbor.EncMode
}

// writes v as CBOR if the client asked for it, as JSON otherwise
func (h *handler) writeResponse(w http.ResponseWriter, r *http.Request, status int, v any) {
	var (
		data []byte
		err  error
		mime = jsonMimeType
	)
	if strings.Contains(r.Header.Get("Accept"), cborMimeType) {
		mime = cborMimeType
		data, err = h.cborMode.Marshal(v)
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		h.logger.LogError(err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", mime)
	w.WriteHeader(status)
	w.Write(data)
}

// reads the JSON or CBOR body of r into v
func readRequest(r *http.Request, v any) error {
	defer r.Body.Close()
	data, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		return err
	}
	if strings.HasPrefix(r.Header.Get("Content-Type"), cborMimeType) {
		return cbor.Unmarshal(data, v)
	}
	return json.Unmarshal(data, v)
}

func (h *handler) handleEncode(w http.ResponseWriter, r *http.Request) {
	var req EncodeRequest
	if err := readRequest(r, &req); err != nil {
		h.writeResponse(w, r, http.StatusBadRequest, EncodeResponse{Errors: []string{"Invalid request: " + err.Error()}})
		return
	}
	res, err := Encode(&h.encoder, &req)
	if err != nil {
		h.writeResponse(w, r, http.StatusBadRequest, EncodeResponse{Errors: []string{err.Error()}, Carrier: res.Carrier})
		return
	}
	if err := h.store.RecordUsage(res.Carrier); err != nil {
		h.logger.LogError(err)
	}
	h.writeResponse(w, r, http.StatusOK, EncodeResponse{
		Errors:  []string{},
		Data:    res.Text,
		Carrier: res.Carrier,
		Scheme:  res.Scheme,
	})
}

func (h *handler) handleDecode(w http.ResponseWriter, r *http.Request) {
	var req DecodeRequest
	if err := readRequest(r, &req); err != nil {
		h.writeResponse(w, r, http.StatusBadRequest, DecodeResponse{Errors: []string{"Invalid request: " + err.Error()}})
		return
	}
	h.writeResponse(w, r, http.StatusOK, Decode(h.decoder, &req))
}

func (h *handler) handleScan(w http.ResponseWriter, r *http.Request) {
	var req ScanRequest
	if err := readRequest(r, &req); err != nil {
		h.writeResponse(w, r, http.StatusBadRequest, Response{Message: "Invalid request: " + err.Error()})
		return
	}
	h.writeResponse(w, r, http.StatusOK, h.scanner.ScanTexts(req.Texts))
}

func (h *handler) sendCarriers(w http.ResponseWriter, r *http.Request) {
	recents, err := h.store.Recents(0)
	if err != nil {
		h.logger.LogError(err)
		recents = []string{}
	}
	h.writeResponse(w, r, http.StatusOK, CarriersResponse{
		Presets:  h.encoder.Carriers,
		Alphabet: h.encoder.Alphabet,
		Recents:  recents,
	})
}

func (h *handler) sendStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.store.Stats()
	if err != nil {
		h.logger.LogError(err)
		h.writeResponse(w, r, http.StatusInternalServerError, Response{Message: err.Error()})
		return
	}
	h.writeResponse(w, r, http.StatusOK, stats)
}

func (h *handler) clearRecents(w http.ResponseWriter, r *http.Request) {
	if err := h.store.ClearRecents(); err != nil {
		h.logger.LogError(err)
		h.writeResponse(w, r, http.StatusInternalServerError, Response{Message: err.Error()})
		return
	}
	h.writeResponse(w, r, http.StatusOK, Response{Ok: true})
}
