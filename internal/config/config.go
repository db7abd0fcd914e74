package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/JoseAmador95/libcrc/pkg/crc"
)

type Config struct {
	Checksum ChecksumConfig `yaml:"checksum"`
	Input    InputConfig    `yaml:"input"`
}

type ChecksumConfig struct {
	Algorithms []string `yaml:"algorithms"`
	Format     string   `yaml:"format"`
	Uppercase  bool     `yaml:"uppercase"`
}

type InputConfig struct {
	// MMap is a pointer so an explicit false survives defaulting.
	MMap         *bool `yaml:"mmap"`
	MMapMinBytes int64 `yaml:"mmap_min_bytes"`
}

// MMapEnabled reports whether large inputs should be memory mapped.
func (c InputConfig) MMapEnabled() bool {
	return c.MMap == nil || *c.MMap
}

// Default returns the configuration used when no file is present.
func Default() Config {
	var cfg Config
	if err := cfg.applyDefaults(); err != nil {
		// Defaults are always valid.
		panic(err)
	}
	return cfg
}

// Load reads a YAML config from path. When optional is true a missing file
// is not an error and yields Default().
func Load(path string, optional bool) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, err
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.applyDefaults(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (cfg *Config) applyDefaults() error {
	if len(cfg.Checksum.Algorithms) == 0 {
		cfg.Checksum.Algorithms = []string{crc.CRC32.Name}
	}
	for i, name := range cfg.Checksum.Algorithms {
		v, err := crc.Lookup(name)
		if err != nil {
			return fmt.Errorf("checksum.algorithms[%d]: unknown algorithm %q", i, name)
		}
		cfg.Checksum.Algorithms[i] = v.String()
	}

	cfg.Checksum.Format = strings.ToLower(strings.TrimSpace(cfg.Checksum.Format))
	if cfg.Checksum.Format == "" {
		cfg.Checksum.Format = "hex"
	}
	switch cfg.Checksum.Format {
	case "hex", "dec":
	default:
		return fmt.Errorf("checksum.format must be hex or dec")
	}

	if cfg.Input.MMapMinBytes < 0 {
		return fmt.Errorf("input.mmap_min_bytes must be >= 0")
	}
	if cfg.Input.MMapMinBytes == 0 {
		cfg.Input.MMapMinBytes = 1 << 20
	}
	return nil
}

// Variants resolves the configured algorithm names.
func (cfg Config) Variants() ([]crc.Variant, error) {
	out := make([]crc.Variant, 0, len(cfg.Checksum.Algorithms))
	for _, name := range cfg.Checksum.Algorithms {
		v, err := crc.Lookup(name)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
