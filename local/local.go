package local

import (
	"encoding/base64"
	"fmt"
	"strings"

	"hiddenmsg/config"
	"hiddenmsg/scan"
	"hiddenmsg/stegano/text"
	sutil "hiddenmsg/stegano/util"
	"hiddenmsg/util"
)

/*
 * package local glues the codec to its users: the command line and the
 * local HTTP API both encode and decode through these functions.
 */

// Encoded is the outcome of Encode.
type Encoded struct {
	Text    string
	Carrier string
	Scheme  string
}

// Encode hides the message of req as described by it, falling back to the
// encoder configuration for anything req leaves empty.
func Encode(conf *config.EncoderConfig, req *EncodeRequest) (Encoded, error) {
	schemeName := req.Scheme
	if schemeName == "" {
		schemeName = conf.Scheme
	}
	scheme := text.Scheme(text.WideSelectors{})
	if schemeName != "" {
		var ok bool
		if scheme, ok = text.SchemeByName(schemeName); !ok {
			return Encoded{}, fmt.Errorf("unknown scheme %q", schemeName)
		}
	}

	carrier := req.Carrier
	if carrier == "" {
		carrier, _ = util.PickAtRandom(conf.Carriers)
	}
	if conf.NormalizeCarrier {
		carrier = util.FixUnicode(carrier)
	}
	res := Encoded{Carrier: carrier, Scheme: scheme.Name()}

	data := []byte(nil)
	if req.Data != "" {
		raw, err := base64.StdEncoding.DecodeString(req.Data)
		if err != nil {
			return res, fmt.Errorf("data is not valid base64: %w", err)
		}
		data = raw
	}

	var err error
	switch {
	case req.Placement != "" || data != nil:
		if data == nil {
			data = sutil.BytesOf(req.Message)
		}
		mode, perr := text.ParseMode(req.Placement)
		if perr != nil {
			return res, perr
		}
		res.Text, err = text.EncodeWithUnprintable(scheme, mode, data, carrier)
	default:
		mode := req.Mode
		if mode == "" {
			mode = conf.Mode
		}
		switch strings.ToLower(mode) {
		case "", config.ModeSingle:
			res.Text, err = text.EncodeSingleCarrierWith(scheme, req.Message, carrier)
		case config.ModeMulti:
			res.Text, err = text.EncodeMultiAnchorWith(scheme, req.Message, carrier)
		default:
			return res, fmt.Errorf("unknown encoder mode %q", mode)
		}
	}
	return res, err
}

// Decode looks for a message in req.Text.
func Decode(decoder text.Decoder, req *DecodeRequest) DecodeResponse {
	resp := DecodeResponse{Errors: []string{}}
	if req.Raw {
		data, err := text.Reveal([]byte(req.Text))
		if err != nil {
			resp.Errors = append(resp.Errors, err.Error())
			return resp
		}
		resp.Found = true
		resp.Scheme = text.WideSelectors{}.Name()
		resp.Data = base64.StdEncoding.EncodeToString(data)
		return resp
	}

	res, ok := decoder.Decode(req.Text)
	if !ok {
		return resp
	}
	resp.Found = true
	resp.Text = res.Text
	resp.Scheme = res.Scheme
	resp.Detail = res.Detail
	resp.Links = MakeLinks(scan.Links(res.Text))
	return resp
}

func MakeLinks(links []string) []Link {
	if len(links) == 0 {
		return nil
	}
	res := make([]Link, 0, len(links))
	for _, l := range links {
		res = append(res, Link{
			URL:   l,
			Short: scan.TruncateURL(l, scan.DefaultURLLength),
			GIF:   scan.IsGIF(l),
		})
	}
	return res
}
