package local

import (
	"net/http"

	"github.com/fxamacker/cbor/v2"

	"hiddenmsg/config"
	"hiddenmsg/scan"
	"hiddenmsg/util"
)

func NewApiHandler(conf *config.FullConfig, store util.UsageStore, logger *util.Logger) (http.Handler, error) {
	// deterministic encoding, map keys sorted
	cborMode, err := cbor.EncOptions{Sort: cbor.SortCoreDeterministic}.EncMode()
	if err != nil {
		return nil, err
	}
	decoder := conf.Decoder.TextDecoder()
	h := &handler{
		encoder:  conf.Encoder,
		decoder:  decoder,
		scanner:  scan.NewScanner(conf.Scanner, decoder),
		store:    store,
		logger:   logger,
		cborMode: cborMode,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/encode", h.handleEncode)
	mux.HandleFunc("POST /api/decode", h.handleDecode)
	mux.HandleFunc("POST /api/scan", h.handleScan)
	mux.HandleFunc("GET /api/carriers", h.sendCarriers)
	mux.HandleFunc("GET /api/stats", h.sendStats)
	mux.HandleFunc("DELETE /api/recents", h.clearRecents)
	return mux, nil
}

func RunApiServer(conf *config.FullConfig, store util.UsageStore, logger *util.Logger) error {
	handler, err := NewApiHandler(conf, store, logger)
	if err != nil {
		return err
	}
	util.DebugPrintln(util.CyanColor + "Listening and serving at address " + conf.ServerConfig.Address + util.ResetColor)
	logger.LogInfof("Listening at %s", conf.ServerConfig.Address)
	return http.ListenAndServe(conf.ServerConfig.Address, handler)
}
