// Copyright 2026 TiKV Project Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/pingcap/errors"
	"github.com/pingcap/log"

	"github.com/tikv/monoclock/pkg/errs"
	"github.com/tikv/monoclock/pkg/monoclock"
	"github.com/tikv/monoclock/pkg/utils/configutil"
	"github.com/tikv/monoclock/pkg/utils/logutil"
	"github.com/tikv/monoclock/pkg/utils/widthutil"
)

const (
	// HostPlatform runs on the operating system's monotonic clock.
	HostPlatform = "host"
	// PITPlatform runs on a simulated interval timer and busy-waits.
	PITPlatform = "pit"

	defaultPlatform  = HostPlatform
	defaultWidth     = "u64"
	defaultLogLevel  = "info"
	defaultLogFormat = "text"
)

// Config is the configuration of the monoclock tools.
type Config struct {
	// Platform is one of host or pit.
	Platform string `toml:"platform" json:"platform"`
	// Width is the default result width, one of u8, u16, u32, u64, u128.
	Width string `toml:"width" json:"width"`

	PIT monoclock.PITConfig `toml:"pit" json:"pit"`

	// Log related config.
	Log      log.Config         `toml:"log" json:"log"`
	Logger   *zap.Logger        `json:"-"`
	LogProps *log.ZapProperties `json:"-"`

	// WarningMsgs contains all warnings during parsing.
	WarningMsgs []string `json:"-"`
}

// NewConfig creates a new config.
func NewConfig() *Config {
	return &Config{}
}

// Parse parses flag definitions from the argument list.
func (c *Config) Parse(flagSet *pflag.FlagSet) error {
	// Load config file if specified.
	var (
		meta *toml.MetaData
		err  error
	)
	if configFile, _ := flagSet.GetString("config"); configFile != "" {
		meta, err = configutil.ConfigFromFile(c, configFile)
		if err != nil {
			return errs.ErrLoadConfig.Wrap(err).GenWithStackByCause()
		}
	}

	// Ignore the error check here
	configutil.AdjustCommandLineString(flagSet, &c.Platform, "platform")
	configutil.AdjustCommandLineString(flagSet, &c.Width, "width")
	configutil.AdjustCommandLineString(flagSet, &c.Log.Level, "log-level")
	configutil.AdjustCommandLineString(flagSet, &c.Log.File.Filename, "log-file")
	configutil.AdjustCommandLineUint16(flagSet, &c.PIT.Divisor, "pit-divisor")
	configutil.AdjustCommandLineInt(flagSet, &c.PIT.SpinCount, "spin-count")
	return c.adjust(meta)
}

// adjust fills the defaults and validates the configuration.
func (c *Config) adjust(meta *toml.MetaData) error {
	configMetaData := configutil.NewConfigMetadata(meta)
	if err := configMetaData.CheckUndecoded(); err != nil {
		c.WarningMsgs = append(c.WarningMsgs, err.Error())
	}

	// Report every invalid item at once.
	var err error
	configutil.AdjustString(&c.Platform, defaultPlatform)
	if c.Platform != HostPlatform && c.Platform != PITPlatform {
		err = multierr.Append(err, errs.ErrUnknownPlatform.FastGenByArgs(c.Platform))
	}
	configutil.AdjustString(&c.Width, defaultWidth)
	if !widthutil.IsLegal(c.Width) {
		err = multierr.Append(err, errs.ErrInvalidWidth.FastGenByArgs(c.Width))
	}
	c.PIT.Adjust()
	if c.PIT.MillisPerTick() == 0 {
		err = multierr.Append(err, errs.ErrInvalidPITDivisor.FastGenByArgs(c.PIT.Divisor))
	}
	if err != nil {
		return err
	}

	c.adjustLog(configMetaData.Child("log"))
	return nil
}

func (c *Config) adjustLog(meta *configutil.ConfigMetaData) {
	if !meta.IsDefined("disable-error-verbose") {
		c.Log.DisableErrorVerbose = true
	}
	configutil.AdjustString(&c.Log.Format, defaultLogFormat)
	configutil.AdjustString(&c.Log.Level, defaultLogLevel)
	if !logutil.IsLevelLegal(c.Log.Level) {
		c.WarningMsgs = append(c.WarningMsgs, "unknown log level "+c.Log.Level+", use info instead")
		c.Log.Level = defaultLogLevel
	}
}

// SetupLogger setup the logger.
func (c *Config) SetupLogger() error {
	return errors.Trace(logutil.SetupLogger(c.Log, &c.Logger, &c.LogProps))
}

// NewPlatform creates the platform the configuration selects.
func (c *Config) NewPlatform() (monoclock.Platform, error) {
	switch c.Platform {
	case HostPlatform:
		return monoclock.HostPlatform(), nil
	case PITPlatform:
		return monoclock.NewPITPlatform(monoclock.NewSimulatedPIT(nil), c.PIT)
	default:
		return nil, errs.ErrUnknownPlatform.FastGenByArgs(c.Platform)
	}
}
