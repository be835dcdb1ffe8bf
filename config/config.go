package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"hiddenmsg/stegano/text"
	"hiddenmsg/util"
)

const (
	ModeSingle = "single"
	ModeMulti  = "multi"
)

// emoji offered as one-character carriers
var defaultCarriers = []string{
	"😊", "😍", "🥳", "😎", "🤖", "👋", "🎉", "🔥", "💯", "⭐", "🌟", "💎", "🚀",
	"💪", "👍", "❤", "💖", "🌈", "🦄", "🎈", "🎊", "🌺", "🌸", "🌻", "🌷", "🍀",
	"🌙", "☀", "⚡", "✨", "🎯", "🏆", "🎪", "🎭", "🎨", "🎵", "🎶", "🎸", "🎤",
	"📱", "💻", "⌚", "🎮", "📷", "🔮", "💡", "🔑", "⚽", "🏀", "🎾", "⚾",
}

// the same, for people who'd rather not send emoji
var defaultAlphabet = []string{
	"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m",
	"n", "o", "p", "q", "r", "s", "t", "u", "v", "w", "x", "y", "z",
}

/*
 * Encoder configuration: which carriers are offered and how the message
 * is spread over them.
 */
type EncoderConfig struct {
	Carriers         []string `yaml:"carriers"`
	Alphabet         []string `yaml:"alphabet"`
	Mode             string   `yaml:"mode"`              // single or multi
	Scheme           string   `yaml:"scheme"`            // name of the scheme to write with
	NormalizeCarrier bool     `yaml:"normalize_carrier"` // NFC the carrier before use
}

// Decoder configuration, see text.Decoder.
type DecoderConfig struct {
	Threshold    float64 `yaml:"threshold"`
	AutoLearnMin int     `yaml:"auto_learn_min"`
	AutoLearn    bool    `yaml:"auto_learn"`
}

// Scanner configuration.
type ScannerConfig struct {
	Workers    uint     `yaml:"workers"`
	QueueSize  uint     `yaml:"queue_size"`
	MinLength  int      `yaml:"min_length"` // shorter fragments are skipped
	CacheSize  int      `yaml:"cache_size"`
	Extensions []string `yaml:"extensions"`
}

// configuration of the local API server.
type ServerConfiguration struct {
	Address string `yaml:"address"`
}

type FullConfig struct {
	Encoder      EncoderConfig       `yaml:"encoder"`
	Decoder      DecoderConfig       `yaml:"decoder"`
	Scanner      ScannerConfig       `yaml:"scanner"`
	ServerConfig ServerConfiguration `yaml:"local_server_config"`
	Logger       util.LoggerInfo     `yaml:"logger_config"`
	DbFile       string              `yaml:"db_file"` // empty keeps statistics in memory
	DbRowsLimit  uint                `yaml:"db_rows_limit"`
	RecentsLimit int                 `yaml:"recents_limit"`
}

func DefaultConfig(folder string) *FullConfig {
	return &FullConfig{
		Encoder: EncoderConfig{
			Carriers: append([]string{}, defaultCarriers...),
			Alphabet: append([]string{}, defaultAlphabet...),
			Mode:     ModeSingle,
			Scheme:   text.WideSelectors{}.Name(),
		},
		Decoder: DecoderConfig{
			Threshold:    text.DefaultThreshold,
			AutoLearnMin: text.DefaultAutoLearnMin,
			AutoLearn:    true,
		},
		Scanner: ScannerConfig{
			Workers:   4,
			QueueSize: 64,
			MinLength: 2,
			CacheSize: 4096,
			Extensions: []string{
				"txt", "md", "html", "htm", "json", "csv", "log", "xml", "yaml", "yml",
			},
		},
		ServerConfig: ServerConfiguration{
			Address: "127.0.0.1:8080",
		},
		Logger: util.LoggerInfo{
			Filename:  filepath.Join(folder, "log.log"),
			IsColored: false,
			SaveTime:  true,
			Mode:      util.Error | util.Warning,
		},
		DbFile:       filepath.Join(folder, "usage.db"),
		DbRowsLimit:  10000,
		RecentsLimit: util.DefaultRecentsLimit,
	}
}

// TextDecoder builds the decoder described by the configuration.
func (c *DecoderConfig) TextDecoder() text.Decoder {
	d := text.DefaultDecoder()
	if c.Threshold > 0 && c.Threshold < 1 {
		d.Threshold = c.Threshold
	}
	if c.AutoLearnMin > 0 {
		d.AutoLearnMin = c.AutoLearnMin
	}
	d.AutoLearn = c.AutoLearn
	return d
}

func (c *FullConfig) Validate() error {
	switch c.Encoder.Mode {
	case "", ModeSingle, ModeMulti:
	default:
		return fmt.Errorf("unknown encoder mode %q", c.Encoder.Mode)
	}
	if c.Encoder.Scheme != "" {
		if _, ok := text.SchemeByName(c.Encoder.Scheme); !ok {
			return fmt.Errorf("unknown scheme %q", c.Encoder.Scheme)
		}
	}
	if c.Decoder.Threshold < 0 || c.Decoder.Threshold >= 1 {
		return fmt.Errorf("decoder threshold must be in [0, 1), got %v", c.Decoder.Threshold)
	}
	return nil
}

/*
 * Functions for loading and saving configuration in YAML format.
 * JSON files are accepted too, with comments and trailing commas.
 */
func LoadConfig(filename string) (*FullConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	conf, err := ParseConfig(filename, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return conf, nil
}

func ParseConfig(filename string, data []byte) (*FullConfig, error) {
	if isJSON(filename) {
		// go through a generic tree so the yaml tags apply to json too
		var tree map[string]any
		if err := json.Unmarshal(jsonc.ToJSON(data), &tree); err != nil {
			return nil, err
		}
		var err error
		if data, err = yaml.Marshal(tree); err != nil {
			return nil, err
		}
	}
	conf := DefaultConfig(filepath.Dir(filename))
	if err := yaml.Unmarshal(data, conf); err != nil {
		return nil, err
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

func SaveConfig(filename string, c *FullConfig) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0600)
}

func isJSON(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return ext == ".json" || ext == ".jsonc"
}
