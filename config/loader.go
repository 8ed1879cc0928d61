package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix         = "LATTICECORR_"
	maxConfigFileSize = 1024 * 1024 // 1MB
)

// defaultsYAML mirrors Default. It is loaded first so that file and
// environment values replace, rather than merge into, list fields.
const defaultsYAML = `
data:
  file: 2pt-3pt-qsqmax-scalar.gpl
  labels:
    - 2pt_D_gold_msml5_fine.ll
    - 2pt_D_nongold_msml5_fine.ll
    - 2pt_msml5_fine_K_zeromom.ll
    - localtempvec_pmax_3pt_T16_msml5_fine.ll
    - localtempvec_pmax_3pt_T19_msml5_fine.ll
    - localtempvec_pmax_3pt_T22_msml5_fine.ll
    - localtempvec_pmax_3pt_T25_msml5_fine.ll
analysis:
  row_label: 2pt_D_nongold_msml5_fine.ll
  col_label: localtempvec_pmax_3pt_T22_msml5_fine.ll
  max_time: 16
  cap_length: 400
output:
  path: heatmap.png
  cell_size: 32
  fixed_scale: false
  terminal: false
log:
  level: info
  format: console
`

// Load reads configuration from defaults, the YAML file at configPath (if
// non-empty), then LATTICECORR_* environment variables.
//
// Configuration precedence (highest to lowest):
//  1. Environment variables (LATTICECORR_ANALYSIS_MAX_TIME, ...)
//  2. YAML config file
//  3. Defaults
//
// Environment variables map to keys by dropping the prefix and splitting on
// the first underscore:
//
//	LATTICECORR_DATA_FILE          -> data.file
//	LATTICECORR_ANALYSIS_ROW_LABEL -> analysis.row_label
//	LATTICECORR_DATA_LABELS        -> data.labels (comma separated)
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(rawbytes.Provider([]byte(defaultsYAML)), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath != "" {
		content, err := readConfigFile(configPath)
		if err != nil {
			return nil, err
		}
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.ProviderWithValue(envPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func readConfigFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("config path %s is a directory", path)
	}
	if info.Size() > maxConfigFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxConfigFileSize)
	}

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return content, nil
}

// envTransform maps LATTICECORR_SECTION_FIELD_NAME to section.field_name.
func envTransform(key, value string) (string, interface{}) {
	lower := strings.ToLower(strings.TrimPrefix(key, envPrefix))
	parts := strings.SplitN(lower, "_", 2)
	if len(parts) == 1 {
		return lower, value
	}
	path := parts[0] + "." + parts[1]

	if path == "data.labels" {
		var labels []string
		for _, l := range strings.Split(value, ",") {
			if l = strings.TrimSpace(l); l != "" {
				labels = append(labels, l)
			}
		}
		return path, labels
	}
	return path, value
}
