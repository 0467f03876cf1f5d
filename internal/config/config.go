// Package config resolves foldsum settings from flags, FOLDSUM_* environment variables and an
// optional YAML file, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"github.com/p7r0x7/foldhash"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"strconv"
	"strings"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

const (
	AppName   = "foldsum"
	EnvPrefix = "FOLDSUM"
	// MaxOutput bounds --length, which is allocated in full for every digest.
	MaxOutput = 1 << 30
)

// Config holds the resolved settings of one foldsum run.
type Config struct {
	Seed      uint64
	Length    uint
	MaxLength int
	Base64    bool
	Hex       bool
	Keyed     bool
	NoCodes   bool
	Quiet     bool
	Strict    bool
	String    bool
	Time      bool
	Trace     bool
	Debug     bool
	LogFormat string
	File      string /* config file actually read, if any */
}

// Load binds fs to a fresh viper instance and resolves every setting. cfgFile may be empty, in
// which case foldsum.yaml is looked for in the working directory; a missing file is not an error.
func Load(fs *pflag.FlagSet, cfgFile string) (Config, error) {
	v := viper.New()
	v.SetDefault("seed", foldhash.Seed)
	v.SetDefault("log-format", "human")
	v.SetDefault("max-length", 0)

	if err := v.BindPFlags(fs); err != nil {
		return Config{}, fmt.Errorf("config: binding flags: %w", err)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(AppName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	var c Config
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: reading %s: %w", AppName, err)
		}
	} else {
		c.File = v.ConfigFileUsed()
	}

	c.Seed = v.GetUint64("seed")
	/* GetUint would turn an out-of-range value into 0. */
	length, err := strconv.ParseUint(v.GetString("length"), 10, 0)
	if err != nil {
		return Config{}, fmt.Errorf("config: length: %w", err)
	}
	if length > MaxOutput {
		return Config{}, fmt.Errorf("config: length %d exceeds %d bytes", length, MaxOutput)
	}
	c.Length = uint(length)
	c.MaxLength = v.GetInt("max-length")
	c.Base64 = v.GetBool("base64")
	c.Hex = v.GetBool("hex")
	c.Keyed = v.GetBool("keyed")
	c.NoCodes = v.GetBool("no-codes")
	c.Quiet = v.GetBool("quiet")
	c.Strict = v.GetBool("strict")
	c.String = v.GetBool("string")
	c.Time = v.GetBool("time")
	c.Trace = v.GetBool("trace")
	c.Debug = v.GetBool("debug")
	c.LogFormat = v.GetString("log-format")

	/* --quiet implies --no-codes; --trace needs debug entries. */
	c.NoCodes = c.NoCodes || c.Quiet
	c.Debug = c.Debug || c.Trace
	return c, c.validate()
}

func (c Config) validate() error {
	switch {
	case c.Base64 && c.Hex:
		return errors.New("config: --base64 and --hex are mutually exclusive")
	case c.MaxLength < 0:
		return fmt.Errorf("config: negative max-length %d", c.MaxLength)
	case c.Keyed && c.Length == 0:
		return errors.New("config: --keyed requires --length")
	case c.LogFormat != "human" && c.LogFormat != "json":
		return fmt.Errorf("config: unknown log-format %q", c.LogFormat)
	}
	return nil
}

// Options converts the settings to foldhash options.
func (c Config) Options() []foldhash.Option {
	return []foldhash.Option{foldhash.WithSeed(c.Seed), foldhash.WithMaxLength(c.MaxLength)}
}
