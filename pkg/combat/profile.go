package combat

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"
)

//Profile is a saved build plus presentation and log settings
type Profile struct {
	Label     string      `yaml:"Label"`
	Build     BuildConfig `yaml:"Build"`
	LogConfig LogConfig   `yaml:"Log"`
	Decimals  int         `yaml:"Decimals"`
}

type LogConfig struct {
	LogLevel      string `yaml:"Level"`
	LogFile       string `yaml:"File"`
	LogShowCaller bool   `yaml:"ShowCaller"`
}

//BuildConfig is everything a single calculation needs besides the tables
type BuildConfig struct {
	Character   string             `yaml:"Character"`
	Eidolon     int                `yaml:"Eidolon"`
	LightCone   string             `yaml:"LightCone"`
	Superimpose int                `yaml:"Superimpose"`
	Outer1      string             `yaml:"Outer1"`
	Outer2      string             `yaml:"Outer2"`
	Inner       string             `yaml:"Inner"`
	AttackType  AttackCategory     `yaml:"AttackType"`
	Enemy       EnemyConfig        `yaml:"Enemy"`
	Gear        map[Slot]GearPiece `yaml:"Gear"`
}

//ConfigurationSource supplies a validated build
type ConfigurationSource interface {
	BuildConfig() (BuildConfig, error)
}

//LoadProfile reads a yaml profile from disk
func LoadProfile(path string) (Profile, error) {
	var p Profile
	source, err := os.ReadFile(path)
	if err != nil {
		return p, err
	}
	return ParseProfile(source)
}

//ParseProfile decodes a yaml profile and fills in defaults
func ParseProfile(source []byte) (Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(source, &p); err != nil {
		return p, fmt.Errorf("invalid profile: %w", err)
	}
	if p.Decimals <= 0 {
		p.Decimals = 2
	}
	if p.Build.Superimpose == 0 {
		p.Build.Superimpose = 1
	}
	if p.Build.Enemy.Level == 0 {
		p.Build.Enemy.Level = DefaultEnemyLevel
	}
	return p, nil
}

//BuildConfig implements ConfigurationSource
func (p Profile) BuildConfig() (BuildConfig, error) {
	if err := p.Build.Validate(); err != nil {
		return BuildConfig{}, err
	}
	return p.Build, nil
}

//Validate checks the fields required before any computation starts
func (b BuildConfig) Validate() error {
	if strings.TrimSpace(b.Character) == "" {
		return fmt.Errorf("%w: no character selected", ErrPrecondition)
	}
	if b.AttackType == "" {
		return fmt.Errorf("%w: no attack type selected", ErrPrecondition)
	}
	if !b.AttackType.Valid() {
		return fmt.Errorf("%w: unknown attack type %v", ErrPrecondition, b.AttackType)
	}
	if b.Eidolon < 0 || b.Eidolon > 6 {
		return fmt.Errorf("%w: eidolon %v out of range 0-6", ErrPrecondition, b.Eidolon)
	}
	if b.LightCone != "" && (b.Superimpose < 1 || b.Superimpose > 5) {
		return fmt.Errorf("%w: superimposition %v out of range 1-5", ErrPrecondition, b.Superimpose)
	}
	for k := range b.Gear {
		if !k.Valid() {
			return fmt.Errorf("%w: unknown gear slot %v", ErrPrecondition, k)
		}
	}
	return nil
}

//Clone copies the build so gear can be edited without touching the original
func (b BuildConfig) Clone() BuildConfig {
	c := b
	c.Enemy.Weaknesses = append([]Element(nil), b.Enemy.Weaknesses...)
	c.Gear = make(map[Slot]GearPiece, len(b.Gear))
	for k, v := range b.Gear {
		v.Sub = append([]Stat(nil), v.Sub...)
		c.Gear[k] = v
	}
	return c
}
