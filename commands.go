package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	flag "github.com/ogier/pflag"

	"wordveil/config"
	"wordveil/cryptography"
	"wordveil/stegano/text"
	sutil "wordveil/stegano/util"
	"wordveil/util"
)

const (
	DefaultConfigFile = "wordveil.yaml"
	SaltSuffix        = ".salt"
)

// options shared by hide and seek
type codecFlags struct {
	configFile      string
	encryptedConfig bool
	dict            string
	width           int
	transport       string
	seed            int64
	lenient         bool
	legacyPadding   bool
	passphrase      bool
	compress        bool
	raw             bool
	in              string
	out             string

	set map[string]bool
}

func newCodecFlags(name string) (*flag.FlagSet, *codecFlags) {
	cf := &codecFlags{}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVarP(&cf.configFile, "config", "c", "", "configuration file")
	fs.BoolVar(&cf.encryptedConfig, "encrypted-config", false, "configuration file is encrypted, ask for its password")
	fs.StringVarP(&cf.dict, "dict", "d", "", "dictionary file (.txt, .gz or .zst)")
	fs.IntVarP(&cf.width, "width", "w", 0, "wrap cover text at this many characters, 0 for no wrapping")
	fs.StringVarP(&cf.transport, "transport", "t", "", "payload text encoding: hex or base64")
	fs.Int64VarP(&cf.seed, "seed", "s", 0, "seed for the punctuation generator, 0 for the clock")
	fs.BoolVar(&cf.lenient, "lenient", false, "skip unknown words instead of failing")
	fs.BoolVar(&cf.legacyPadding, "legacy-padding", false, "treat any '!' as the padding flag")
	fs.BoolVarP(&cf.passphrase, "passphrase", "p", false, "seal the payload with a passphrase")
	fs.BoolVarP(&cf.compress, "compress", "z", false, "compress the payload before hiding it")
	fs.BoolVar(&cf.raw, "raw", false, "payload is raw bytes rather than transport text")
	fs.StringVarP(&cf.in, "in", "i", "", "input file, stdin if empty")
	fs.StringVarP(&cf.out, "out", "o", "", "output file, stdout if empty")
	return fs, cf
}

func parse(fs *flag.FlagSet, cf *codecFlags, args []string) error {
	if err := fs.Parse(args); err != nil {
		return err
	}
	cf.set = map[string]bool{}
	fs.Visit(func(f *flag.Flag) {
		cf.set[f.Name] = true
	})
	return nil
}

/*
 * Configuration is resolved in three layers: defaults, the config
 * file, then flags given on the command line.
 */
func (cf *codecFlags) resolve() (*config.FullConfig, error) {
	conf := config.DefaultConfig()
	if cf.configFile != "" {
		var key []byte
		if cf.encryptedConfig {
			var err error
			if key, err = configKey(cf.configFile); err != nil {
				return nil, err
			}
		}
		loaded, err := config.LoadConfig(cf.configFile, key)
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		conf = loaded
	}
	if cf.set["dict"] {
		conf.Dictionary = cf.dict
	}
	if cf.set["width"] {
		conf.Codec.LineWidth = cf.width
	}
	if cf.set["transport"] {
		t, err := sutil.ParseTransport(cf.transport)
		if err != nil {
			return nil, err
		}
		conf.Codec.Transport = t
	}
	if cf.set["seed"] {
		conf.Codec.Seed = cf.seed
	}
	if cf.set["lenient"] {
		conf.Codec.Strict = !cf.lenient
	}
	if cf.set["legacy-padding"] {
		conf.Codec.Padding = "terminal"
		if cf.legacyPadding {
			conf.Codec.Padding = "legacy"
		}
	}
	return conf, conf.Validate()
}

// configKey derives the configuration key from a password and a salt
// kept next to the configuration file.
func configKey(configFile string) ([]byte, error) {
	saltFile := configFile + SaltSuffix
	salt, err := os.ReadFile(saltFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read salt: %w", err)
	}
	password, err := util.GetPasswd("Configuration password: ")
	if err != nil {
		return nil, err
	}
	return cryptography.DeriveKey(password, salt), nil
}

func loadDictionary(conf *config.FullConfig, logger *util.Logger) (*text.Dictionary, error) {
	d, err := text.LoadDictionaryFile(conf.Dictionary)
	if err != nil {
		return nil, fmt.Errorf("failed to load dictionary: %w", err)
	}
	logger.LogInfof("dictionary %s: %d words, lengths %d-%d",
		conf.Dictionary, d.Total(), d.MinLength(), d.MaxLength())
	return d, nil
}

func readInput(name string, stdin io.Reader) ([]byte, error) {
	if name == "" || name == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(name)
}

func writeOutput(name string, stdout io.Writer, data []byte) error {
	if name == "" || name == "-" {
		_, err := stdout.Write(data)
		return err
	}
	return os.WriteFile(name, data, 0600)
}

func passphrase(cf *codecFlags) ([]byte, error) {
	if !cf.passphrase {
		return nil, nil
	}
	return util.GetPasswd("Passphrase: ")
}

func HideCommand(args []string, stdin io.Reader, stdout io.Writer) error {
	fs, cf := newCodecFlags("hide")
	if err := parse(fs, cf, args); err != nil {
		return err
	}
	pass, err := passphrase(cf)
	if err != nil {
		return err
	}
	return runHide(cf, pass, stdin, stdout)
}

func runHide(cf *codecFlags, pass []byte, stdin io.Reader, stdout io.Writer) error {
	conf, err := cf.resolve()
	if err != nil {
		return err
	}
	logger := util.NewLogger(&conf.Logger)
	dict, err := loadDictionary(conf, logger)
	if err != nil {
		return err
	}

	opts := []text.EncoderOption{
		text.WithLineWidth(conf.Codec.LineWidth),
		text.WithEncoderLogger(logger),
	}
	if seed := conf.Codec.Seed; seed != 0 {
		opts = append(opts, text.WithSeed(func() int64 { return seed }))
	}
	enc := text.NewEncoder(dict, opts...)

	input, err := readInput(cf.in, stdin)
	if err != nil {
		return err
	}

	var cover string
	switch {
	case cf.raw || cf.compress || pass != nil:
		data := input
		if !cf.raw {
			if data, err = conf.Codec.Transport.Decode(strings.TrimSpace(string(input))); err != nil {
				return err
			}
		}
		if cf.compress {
			if data, err = sutil.Compress(data); err != nil {
				return err
			}
		}
		if pass != nil {
			if data, err = cryptography.Seal(pass, data); err != nil {
				return err
			}
		}
		cover = enc.Hide(data)
	default:
		if cover, err = enc.HideText(strings.TrimSpace(string(input)), conf.Codec.Transport); err != nil {
			return err
		}
	}
	return writeOutput(cf.out, stdout, []byte(cover+"\n"))
}

func SeekCommand(args []string, stdin io.Reader, stdout io.Writer) error {
	fs, cf := newCodecFlags("seek")
	if err := parse(fs, cf, args); err != nil {
		return err
	}
	pass, err := passphrase(cf)
	if err != nil {
		return err
	}
	return runSeek(cf, pass, stdin, stdout)
}

func runSeek(cf *codecFlags, pass []byte, stdin io.Reader, stdout io.Writer) error {
	conf, err := cf.resolve()
	if err != nil {
		return err
	}
	logger := util.NewLogger(&conf.Logger)
	dict, err := loadDictionary(conf, logger)
	if err != nil {
		return err
	}

	padding := text.PaddingTerminal
	if conf.Codec.Padding == "legacy" {
		padding = text.PaddingLegacy
	}
	dec := text.NewDecoder(dict,
		text.WithStrict(conf.Codec.Strict),
		text.WithPadding(padding),
		text.WithDecoderLogger(logger),
	)

	cover, err := readInput(cf.in, stdin)
	if err != nil {
		return err
	}

	if pass == nil && !cf.raw && !cf.compress {
		payload, err := dec.SeekText(string(cover), conf.Codec.Transport)
		if err != nil {
			return err
		}
		return writeOutput(cf.out, stdout, []byte(strings.TrimSuffix(payload, "\n")+"\n"))
	}

	data, err := dec.Seek(string(cover))
	if err != nil {
		return err
	}
	if pass != nil {
		if data, err = cryptography.Open(pass, data); err != nil {
			return err
		}
	}
	if cf.compress {
		if data, err = sutil.Decompress(data); err != nil {
			return err
		}
	}
	if !cf.raw {
		payload, err := conf.Codec.Transport.Encode(data)
		if err != nil {
			return err
		}
		data = []byte(strings.TrimSuffix(payload, "\n") + "\n")
	}
	return writeOutput(cf.out, stdout, data)
}

func CheckDictCommand(args []string, stdout io.Writer) error {
	fs, cf := newCodecFlags("checkdict")
	export := fs.StringP("export", "e", "", "write the dictionary in blob form to this file")
	if err := parse(fs, cf, args); err != nil {
		return err
	}
	conf, err := cf.resolve()
	if err != nil {
		return err
	}
	dict, err := loadDictionary(conf, util.NewLogger(&conf.Logger))
	if err != nil {
		return err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "dictionary: %s\n", conf.Dictionary)
	for l := dict.MinLength(); l <= dict.MaxLength(); l++ {
		if n := dict.Count(l); n > 0 {
			fmt.Fprintf(&sb, "%4d letters: %6d words\n", l, n)
		}
	}
	fmt.Fprintf(&sb, "total: %d words, OK\n", dict.Total())
	if _, err := io.WriteString(stdout, sb.String()); err != nil {
		return err
	}

	if *export != "" {
		var buf bytes.Buffer
		if err := text.WriteDictionary(&buf, dict); err != nil {
			return err
		}
		return os.WriteFile(*export, buf.Bytes(), 0644)
	}
	return nil
}

func GenConfCommand(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("genconf", flag.ContinueOnError)
	filename := fs.StringP("config", "c", DefaultConfigFile, "where to write the configuration")
	encrypted := fs.Bool("encrypted-config", false, "encrypt the configuration with a password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var key []byte
	if *encrypted {
		salt, err := cryptography.GenRandom(cryptography.SaltSize)
		if err != nil {
			return err
		}
		if err := os.WriteFile(*filename+SaltSuffix, salt, 0600); err != nil {
			return err
		}
		password, err := util.GetPasswd("Configuration password: ")
		if err != nil {
			return err
		}
		key = cryptography.DeriveKey(password, salt)
	}
	if err := config.SaveConfig(*filename, key, config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "[+] configuration written to %s\n", filepath.Clean(*filename))
	return nil
}
