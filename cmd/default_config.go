package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	sim "github.com/pacing-sim/pacing-sim/sim"
	"github.com/pacing-sim/pacing-sim/sim/mqtt"
)

// envPrefix is prepended to every environment override (PACER_LRL, ...).
const envPrefix = "PACER_"

// Config represents the full defaults.yaml structure.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type Config struct {
	Version string      `yaml:"version"`
	Device  DeviceInfo  `yaml:"device"`
	Param   ParamConfig `yaml:"param"`
	MQTT    MQTTConfig  `yaml:"mqtt" envPrefix:"MQTT_"`
}

// DeviceInfo is the static device and implant record. It is logged at
// start-up and never consulted by the simulation.
type DeviceInfo struct {
	DeviceModel     string `yaml:"device_model"`
	SerialNumber    string `yaml:"serial_number"`
	LeadImplantDate int64  `yaml:"lead_implant_date"` // unix seconds
	LeadImpedance   int    `yaml:"lead_impedance"`    // ohm
}

// ParamConfig mirrors sim.Param with YAML and environment bindings.
type ParamConfig struct {
	LRL         int64       `yaml:"lrl" env:"LRL"`
	VRP         int64       `yaml:"vrp" env:"VRP"`
	Atrial      PulseConfig `yaml:"atrial" envPrefix:"ATRIAL_"`
	Ventricular PulseConfig `yaml:"ventricular" envPrefix:"VENTRICULAR_"`
}

// PulseConfig mirrors sim.PulseParam.
type PulseConfig struct {
	Amplitude float64 `yaml:"amplitude" env:"AMPLITUDE"`
	Width     float64 `yaml:"width" env:"WIDTH"`
}

// MQTTConfig selects the optional MQTT event sink. An empty broker disables it.
type MQTTConfig struct {
	Broker string `yaml:"broker" env:"BROKER"`
	Topic  string `yaml:"topic" env:"TOPIC"`
}

// DefaultConfig returns the built-in configuration used when no defaults
// file is present.
func DefaultConfig() Config {
	p := sim.DefaultParam
	return Config{
		Version: "1",
		Device: DeviceInfo{
			DeviceModel:     "mantra-pacemaker",
			SerialNumber:    "123456",
			LeadImplantDate: 1718791844,
			LeadImpedance:   500,
		},
		Param: ParamConfig{
			LRL:         p.LRL,
			VRP:         p.VRP,
			Atrial:      PulseConfig{Amplitude: p.Atrial.Amplitude, Width: p.Atrial.Width},
			Ventricular: PulseConfig{Amplitude: p.Ventricular.Amplitude, Width: p.Ventricular.Width},
		},
		MQTT: MQTTConfig{Topic: mqtt.DefaultTopic},
	}
}

// ToParam converts the parameter section to sim.Param.
func (c Config) ToParam() sim.Param {
	return sim.Param{
		LRL:         c.Param.LRL,
		VRP:         c.Param.VRP,
		Atrial:      sim.PulseParam{Amplitude: c.Param.Atrial.Amplitude, Width: c.Param.Atrial.Width},
		Ventricular: sim.PulseParam{Amplitude: c.Param.Ventricular.Amplitude, Width: c.Param.Ventricular.Width},
	}
}

// loadDefaultsConfig parses a defaults file into a Config.
// Uses strict field checking: typos must cause errors.
func loadDefaultsConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading defaults file %s: %w", path, err)
	}
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing defaults file %s: %w", path, err)
	}
	return cfg, nil
}

// applyEnv overrides cfg with PACER_* environment variables. Unset
// variables leave the corresponding field untouched.
func applyEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: envPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadConfig resolves the run configuration: the defaults file (or the
// built-in defaults when it does not exist), then environment overrides,
// then validation of the pacing parameters.
func LoadConfig(path string) (Config, error) {
	cfg, err := loadDefaultsConfig(path)
	if errors.Is(err, fs.ErrNotExist) {
		logrus.Warnf("defaults file %s not found; using built-in defaults", path)
		cfg, err = DefaultConfig(), nil
	}
	if err != nil {
		return Config{}, err
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.ToParam().Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid pacing parameters: %w", err)
	}
	return cfg, nil
}
