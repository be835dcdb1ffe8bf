package config

import (
	"os"
	"path/filepath"
	"testing"

	"hiddenmsg/stegano/text"
)

func TestSaveAndLoadConfig(t *testing.T) {
	dir := t.TempDir()
	conf := DefaultConfig(dir)
	conf.Encoder.Mode = ModeMulti
	conf.Decoder.Threshold = 0.8
	filename := filepath.Join(dir, "config.yaml")

	if err := SaveConfig(filename, conf); err != nil {
		t.Fatalf("Failed to save configuration: %s", err.Error())
	}
	conf2, err := LoadConfig(filename)
	if err != nil {
		t.Fatalf("Failed to load configuration: %s", err.Error())
	}
	if conf2.Encoder.Mode != ModeMulti || conf2.Decoder.Threshold != 0.8 || conf2.DbFile != conf.DbFile {
		t.Errorf("Configuration was changed during save/load: %+v", conf2)
	}
	if len(conf2.Encoder.Carriers) != len(defaultCarriers) {
		t.Errorf("carriers were lost: %v", conf2.Encoder.Carriers)
	}
}

func TestLoadJSONCConfig(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "config.jsonc")
	data := `{
	// scanning only
	"decoder": {"threshold": 0.9, "auto_learn": false},
	"scanner": {"workers": 2,},
}`
	if err := os.WriteFile(filename, []byte(data), 0600); err != nil {
		t.Fatal(err)
	}
	conf, err := LoadConfig(filename)
	if err != nil {
		t.Fatalf("Failed to load configuration: %v", err)
	}
	if conf.Decoder.Threshold != 0.9 || conf.Decoder.AutoLearn || conf.Scanner.Workers != 2 {
		t.Errorf("unexpected configuration: %+v", conf)
	}
	// unspecified values keep their defaults
	if conf.Scanner.MinLength != 2 || conf.ServerConfig.Address == "" {
		t.Errorf("defaults were lost: %+v", conf)
	}
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name  string
		yaml  string
		valid bool
	}{
		{"defaults", "", true},
		{"bad mode", "encoder:\n  mode: sideways\n", false},
		{"bad scheme", "encoder:\n  scheme: 64-VS\n", false},
		{"binary scheme", "encoder:\n  scheme: ZW-SPACE\n", true},
		{"bad threshold", "decoder:\n  threshold: 1.5\n", false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseConfig("config.yaml", []byte(tc.yaml))
			if (err == nil) != tc.valid {
				t.Errorf("expected valid=%v, got %v", tc.valid, err)
			}
		})
	}
}

func TestTextDecoder(t *testing.T) {
	c := DecoderConfig{Threshold: 0.5, AutoLearnMin: 32, AutoLearn: false}
	d := c.TextDecoder()
	if d.Threshold != 0.5 || d.AutoLearnMin != 32 || d.AutoLearn {
		t.Errorf("unexpected decoder: %+v", d)
	}
	zero := (&DecoderConfig{}).TextDecoder()
	if zero.Threshold != text.DefaultThreshold || zero.AutoLearnMin != text.DefaultAutoLearnMin {
		t.Errorf("zero values must fall back to defaults: %+v", zero)
	}
}
