package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

const envPrefix = "VIMAZE_"

// DefaultEnvFile is read for VIMAZE_* variables when present
const DefaultEnvFile = ".env"

// fileConfig mirrors the TOML layout; nil fields leave lower layers untouched
type fileConfig struct {
	Height          *int    `toml:"height"`
	Width           *int    `toml:"width"`
	Mode            *string `toml:"mode"`
	Duration        *string `toml:"duration"`
	StepDelay       *string `toml:"step_delay"`
	LevelPause      *string `toml:"level_pause"`
	Seed            *int64  `toml:"seed"`
	EnsureReachable *bool   `toml:"ensure_reachable"`
	Plain           *bool   `toml:"plain"`
	Debug           *bool   `toml:"debug"`
	LogDir          *string `toml:"log_dir"`

	Audio struct {
		Enabled      *bool    `toml:"enabled"`
		MasterVolume *float64 `toml:"master_volume"`
	} `toml:"audio"`

	Keys        map[string]string `toml:"keys"`
	SpecialKeys map[string]string `toml:"special_keys"`
}

// Load resolves configuration from defaults, TOML file, environment and flags, in rising precedence
// args excludes the program name
func Load(args []string) (*Config, error) {
	return load(args, os.LookupEnv, os.Stderr)
}

type lookupFunc func(string) (string, bool)

func load(args []string, lookup lookupFunc, flagOutput io.Writer) (*Config, error) {
	cfg := Default()

	flags, set, err := parseFlags(args, flagOutput)
	if err != nil {
		return nil, err
	}

	// Process environment wins over .env entries
	envFile := DefaultEnvFile
	if v, ok := lookup(envPrefix + "ENV_FILE"); ok && v != "" {
		envFile = v
	}
	dotenv, err := readEnvFile(envFile)
	if err != nil {
		return nil, err
	}
	env := func(key string) (string, bool) {
		if v, ok := lookup(envPrefix + key); ok {
			return v, true
		}
		v, ok := dotenv[envPrefix+key]
		return v, ok
	}

	path := ""
	if set.has("config") {
		path = flags.config
	} else {
		path, _ = env("CONFIG")
	}
	if path != "" {
		if err := applyFile(cfg, path); err != nil {
			return nil, err
		}
		cfg.ConfigPath = path
	}

	if err := applyEnv(cfg, env); err != nil {
		return nil, err
	}

	applyFlags(cfg, flags, set)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func readEnvFile(path string) (map[string]string, error) {
	values, err := godotenv.Read(path)
	if err == nil {
		return values, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	return nil, fmt.Errorf("read env file %s: %w", path, err)
}

func applyFile(cfg *Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	var fc fileConfig
	dec := toml.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&fc); err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}

	setIf(&cfg.Height, fc.Height)
	setIf(&cfg.Width, fc.Width)
	if fc.Mode != nil {
		cfg.Mode = Mode(strings.ToLower(*fc.Mode))
	}
	for _, d := range []struct {
		dst *time.Duration
		src *string
		key string
	}{
		{&cfg.Duration, fc.Duration, "duration"},
		{&cfg.StepDelay, fc.StepDelay, "step_delay"},
		{&cfg.LevelPause, fc.LevelPause, "level_pause"},
	} {
		if d.src == nil {
			continue
		}
		v, err := ParseDuration(*d.src)
		if err != nil {
			return fmt.Errorf("config %s: %s: %w", path, d.key, err)
		}
		*d.dst = v
	}
	setIf(&cfg.Seed, fc.Seed)
	setIf(&cfg.EnsureReachable, fc.EnsureReachable)
	setIf(&cfg.Plain, fc.Plain)
	setIf(&cfg.Debug, fc.Debug)
	setIf(&cfg.LogDir, fc.LogDir)
	setIf(&cfg.Sound, fc.Audio.Enabled)
	setIf(&cfg.MasterVolume, fc.Audio.MasterVolume)
	if fc.Keys != nil {
		cfg.Keys = fc.Keys
	}
	if fc.SpecialKeys != nil {
		cfg.SpecialKeys = fc.SpecialKeys
	}
	return nil
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func applyEnv(cfg *Config, env lookupFunc) error {
	var errs []error
	parse := func(key string, apply func(string) error) {
		v, ok := env(key)
		if !ok || v == "" {
			return
		}
		if err := apply(v); err != nil {
			errs = append(errs, fmt.Errorf("%s%s=%q: %w", envPrefix, key, v, err))
		}
	}

	parse("HEIGHT", intInto(&cfg.Height))
	parse("WIDTH", intInto(&cfg.Width))
	parse("MODE", func(v string) error {
		cfg.Mode = Mode(strings.ToLower(v))
		return nil
	})
	parse("DURATION", durationInto(&cfg.Duration))
	parse("STEP_DELAY", durationInto(&cfg.StepDelay))
	parse("LEVEL_PAUSE", durationInto(&cfg.LevelPause))
	parse("SEED", func(v string) (err error) {
		cfg.Seed, err = strconv.ParseInt(v, 10, 64)
		return err
	})
	parse("ENSURE_REACHABLE", boolInto(&cfg.EnsureReachable))
	parse("PLAIN", boolInto(&cfg.Plain))
	parse("DEBUG", boolInto(&cfg.Debug))
	parse("LOG_DIR", func(v string) error {
		cfg.LogDir = v
		return nil
	})
	parse("SOUND", boolInto(&cfg.Sound))
	parse("VOLUME", func(v string) (err error) {
		cfg.MasterVolume, err = strconv.ParseFloat(v, 64)
		return err
	})

	return errors.Join(errs...)
}

func intInto(dst *int) func(string) error {
	return func(v string) (err error) {
		*dst, err = strconv.Atoi(v)
		return err
	}
}

func boolInto(dst *bool) func(string) error {
	return func(v string) (err error) {
		*dst, err = strconv.ParseBool(v)
		return err
	}
}

func durationInto(dst *time.Duration) func(string) error {
	return func(v string) (err error) {
		*dst, err = ParseDuration(v)
		return err
	}
}

// ParseDuration accepts Go duration syntax or a bare integer number of seconds
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if secs, err := strconv.Atoi(s); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	return time.ParseDuration(s)
}

// flagSet records which flags were given explicitly
type flagSet map[string]bool

func (s flagSet) has(name string) bool { return s[name] }

type flagValues struct {
	config          string
	height, width   int
	mode            string
	duration        time.Duration
	stepDelay       time.Duration
	levelPause      time.Duration
	seed            int64
	ensureReachable bool
	plain           bool
	debug           bool
	logDir          string
	sound           bool
	volume          float64
}

func parseFlags(args []string, output io.Writer) (*flagValues, flagSet, error) {
	d := Default()
	v := &flagValues{}

	fs := flag.NewFlagSet("vi-maze", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&v.config, "config", "", "TOML config file (env "+envPrefix+"CONFIG)")
	fs.IntVar(&v.height, "height", d.Height, "maze height, odd, >= 3")
	fs.IntVar(&v.width, "width", d.Width, "maze width, odd, >= 3")
	fs.StringVar(&v.mode, "mode", string(d.Mode), "manual or auto")
	fs.DurationVar(&v.duration, "duration", 0, "autonomous run length, prompts when 0")
	fs.DurationVar(&v.stepDelay, "step-delay", d.StepDelay, "autonomous pause per step")
	fs.DurationVar(&v.levelPause, "level-pause", d.LevelPause, "pause between levels")
	fs.Int64Var(&v.seed, "seed", 0, "random seed, 0 seeds from the clock")
	fs.BoolVar(&v.ensureReachable, "ensure-reachable", false, "regenerate until the exit is reachable")
	fs.BoolVar(&v.plain, "plain", false, "line mode instead of full screen")
	fs.BoolVar(&v.debug, "debug", false, "write a debug log under the log directory")
	fs.StringVar(&v.logDir, "log-dir", d.LogDir, "debug log directory")
	fs.BoolVar(&v.sound, "sound", d.Sound, "play sound effects")
	fs.Float64Var(&v.volume, "volume", d.MasterVolume, "master volume in [0, 1]")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	if fs.NArg() > 0 {
		return nil, nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	set := flagSet{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return v, set, nil
}

func applyFlags(cfg *Config, v *flagValues, set flagSet) {
	if set.has("height") {
		cfg.Height = v.height
	}
	if set.has("width") {
		cfg.Width = v.width
	}
	if set.has("mode") {
		cfg.Mode = Mode(strings.ToLower(v.mode))
	}
	if set.has("duration") {
		cfg.Duration = v.duration
	}
	if set.has("step-delay") {
		cfg.StepDelay = v.stepDelay
	}
	if set.has("level-pause") {
		cfg.LevelPause = v.levelPause
	}
	if set.has("seed") {
		cfg.Seed = v.seed
	}
	if set.has("ensure-reachable") {
		cfg.EnsureReachable = v.ensureReachable
	}
	if set.has("plain") {
		cfg.Plain = v.plain
	}
	if set.has("debug") {
		cfg.Debug = v.debug
	}
	if set.has("log-dir") {
		cfg.LogDir = v.logDir
	}
	if set.has("sound") {
		cfg.Sound = v.sound
	}
	if set.has("volume") {
		cfg.MasterVolume = v.volume
	}
}
