package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"wordveil/cryptography"
	"wordveil/stegano/text"
	sutil "wordveil/stegano/util"
	"wordveil/util"
)

/*
 * Codec configuration: how cover text is shaped and how strictly it is
 * read back.
 */
type CodecConfig struct {
	LineWidth int             `yaml:"line_width"` // 0 or less disables wrapping
	Transport sutil.Transport `yaml:"transport"`  // hex or base64
	Strict    bool            `yaml:"strict"`     // fail on unknown words instead of skipping them
	Padding   string          `yaml:"padding"`    // "terminal" or "legacy"
	Seed      int64           `yaml:"seed"`       // 0 seeds from the clock
}

/*
 * Full configuration of the tool.
 */
type FullConfig struct {
	Dictionary string          `yaml:"dictionary"`
	Codec      CodecConfig     `yaml:"codec"`
	Logger     util.LoggerInfo `yaml:"logger_config"`
}

func DefaultConfig() *FullConfig {
	return &FullConfig{
		Dictionary: "stegodict.txt",
		Codec: CodecConfig{
			LineWidth: 72,
			Transport: sutil.Hex,
			Strict:    true,
			Padding:   "terminal",
		},
		Logger: util.LoggerInfo{
			IsColored: true,
			Mode:      util.Error | util.Warning,
		},
	}
}

func (c *FullConfig) Validate() error {
	if c.Dictionary == "" {
		return fmt.Errorf("no dictionary configured")
	}
	switch c.Codec.Padding {
	case "terminal", "legacy":
	default:
		return fmt.Errorf("unknown padding mode %q", c.Codec.Padding)
	}
	if c.Codec.Seed != 0 && text.DegenerateSeed(c.Codec.Seed) {
		return fmt.Errorf("seed %d has no low 31 bits set", c.Codec.Seed)
	}
	if c.Logger.Mode > util.Error|util.Warning|util.Info {
		return fmt.Errorf("invalid logger mode %d", c.Logger.Mode)
	}
	return nil
}

/*
 * Functions for loading and saving configuration in YAML format. Missing
 * keys keep their default values. key may be nil for plain files.
 */
func LoadConfig(filename string, key []byte) (*FullConfig, error) {
	data, err := LoadEncrypted(filename, key)
	if err != nil {
		return nil, err
	}

	conf := DefaultConfig()
	if err := yaml.Unmarshal(data, conf); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	if err := conf.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return conf, nil
}

func SaveConfig(filename string, key []byte, c *FullConfig) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return SaveEncrypted(filename, key, data)
}

/*
 * Functions for saving and loading encrypted files.
 */
func LoadEncrypted(filename string, key []byte) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	if len(key) == cryptography.SymKeySize {
		return cryptography.Decrypt(data, key)
	}
	// return unencrypted data
	return data, nil
}

func SaveEncrypted(filename string, key, data []byte) error {
	var err error
	if len(key) == cryptography.SymKeySize {
		data, err = cryptography.Encrypt(data, key)
		if err != nil {
			return err
		}
	}
	return os.WriteFile(filename, data, 0600)
}
