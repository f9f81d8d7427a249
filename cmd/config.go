package cmd

import (
	"fmt"

	"github.com/beanboi7/chyp8/emu/cpu"
	"github.com/beanboi7/chyp8/emu/machine"
	"github.com/retroenv/retrogolib/log"
	"github.com/spf13/viper"
)

// Options holds the settings merged from flags, config file and environment.
type Options struct {
	Clock int     `mapstructure:"clock"`
	Timer int     `mapstructure:"timer"`
	FPS   int     `mapstructure:"fps"`
	Scale float64 `mapstructure:"scale"`
	Entry uint16  `mapstructure:"entry"`
	Seed  int64   `mapstructure:"seed"`
	Beep  string  `mapstructure:"beep"`
	Reset bool    `mapstructure:"reset"`
	Trace bool    `mapstructure:"trace"`
	Debug bool    `mapstructure:"debug"`
	Quiet bool    `mapstructure:"quiet"`
}

func setDefaults(v *viper.Viper) {
	defaults := machine.DefaultConfig()
	v.SetDefault("clock", defaults.ClockSpeed)
	v.SetDefault("timer", defaults.TimerRate)
	v.SetDefault("fps", defaults.FrameRate)
	v.SetDefault("scale", 10.0)
	v.SetDefault("entry", cpu.ProgramStart)
	v.SetDefault("seed", 0)
}

func loadOptions(v *viper.Viper) (Options, error) {
	var opts Options
	if err := v.Unmarshal(&opts); err != nil {
		return Options{}, fmt.Errorf("decoding configuration: %w", err)
	}
	if opts.Scale <= 0 {
		return Options{}, fmt.Errorf("scale %g: %w", opts.Scale, cpu.ErrConfig)
	}
	return opts, nil
}

func (o Options) machineConfig() machine.Config {
	return machine.Config{
		ClockSpeed:   o.Clock,
		TimerRate:    o.Timer,
		FrameRate:    o.FPS,
		ResetOnFault: o.Reset,
		Trace:        o.Trace,
	}
}

func (o Options) logger() *log.Logger {
	cfg := log.DefaultConfig()
	if o.Debug || o.Trace {
		cfg.Level = log.DebugLevel
	} else if o.Quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}
