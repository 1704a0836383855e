//Package config reads the environment overrides shared by the binaries.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/srliao/hsrcalc/pkg/combat"
)

//Env holds the HSR_* overrides. Zero values leave the profile untouched.
type Env struct {
	DataDir    string `env:"HSR_DATA_DIR" envDefault:"data"`
	LogLevel   string `env:"HSR_LOG_LEVEL"`
	LogFile    string `env:"HSR_LOG_FILE"`
	ShowCaller bool   `env:"HSR_LOG_CALLER"`
	Decimals   int    `env:"HSR_DECIMALS"`
	Workers    int    `env:"HSR_WORKERS" envDefault:"8"`
}

//ParseEnv loads configuration from environment variables
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return e, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}

//Apply copies every set override onto the profile
func (e Env) Apply(p *combat.Profile) {
	if e.LogLevel != "" {
		p.LogConfig.LogLevel = e.LogLevel
	}
	if e.LogFile != "" {
		p.LogConfig.LogFile = e.LogFile
	}
	if e.ShowCaller {
		p.LogConfig.LogShowCaller = true
	}
	if e.Decimals > 0 {
		p.Decimals = e.Decimals
	}
}
