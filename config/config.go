package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/lixenwraith/driftline/parameter"
)

// FileName is the config file looked up in the config directory
const FileName = "driftline"

// AudioConfig holds sound cue settings
type AudioConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	Volume  float64 `mapstructure:"volume"`
}

// Config is the full runtime configuration
type Config struct {
	LogLevel string `mapstructure:"logLevel"`
	LogDir   string `mapstructure:"logDir"`
	Debug    bool   `mapstructure:"debug"`
	// TickRate is simulation ticks per second
	TickRate int    `mapstructure:"tickRate"`
	Course   string `mapstructure:"course"`

	Audio AudioConfig `mapstructure:"audio"`
	// Keys binds extra keyboard runes to action names (see input.ParseAction)
	Keys   map[string]string `mapstructure:"keys"`
	Tuning parameter.Tuning  `mapstructure:"tuning"`
}

// TickInterval converts TickRate to a scheduler interval
func (c Config) TickInterval() time.Duration {
	if c.TickRate <= 0 {
		return parameter.TickInterval
	}
	return time.Second / time.Duration(c.TickRate)
}

// Load reads driftline.yaml from path (a directory, or the file itself) over the defaults
// A missing file in a directory is not an error; DRIFTLINE_* environment variables override both
func Load(path string) (Config, error) {
	setDefaults()

	viper.SetEnvPrefix("DRIFTLINE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		viper.SetConfigFile(path)
	} else {
		viper.SetConfigName(FileName)
		viper.SetConfigType("yaml")
		if path != "" {
			viper.AddConfigPath(path)
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the simulation cannot run with
func (c Config) Validate() error {
	if c.TickRate <= 0 || c.TickRate > 1000 {
		return fmt.Errorf("tickRate %d out of range (1-1000)", c.TickRate)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio.volume %g out of range (0-1)", c.Audio.Volume)
	}
	if c.Tuning.Body.Mass <= 0 {
		return fmt.Errorf("tuning.body.mass must be positive, got %g", c.Tuning.Body.Mass)
	}
	if c.Tuning.Smoke.MaxParticles < 1 {
		return fmt.Errorf("tuning.smoke.maxParticles must be at least 1, got %d", c.Tuning.Smoke.MaxParticles)
	}
	return nil
}

// ConfigFileUsed returns the file viper read, empty when running on defaults
func ConfigFileUsed() string {
	return viper.ConfigFileUsed()
}

func setDefaults() {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logDir", ".")
	viper.SetDefault("debug", false)
	viper.SetDefault("tickRate", 60)
	viper.SetDefault("course", "tomin")

	viper.SetDefault("audio.enabled", true)
	viper.SetDefault("audio.volume", 0.6)

	viper.SetDefault("keys", map[string]string{})

	d := parameter.DefaultTuning()

	viper.SetDefault("tuning.steering.maxSteerAngle", d.Steering.MaxSteerAngle)

	viper.SetDefault("tuning.traction.base", d.Traction.Base)
	viper.SetDefault("tuning.traction.slipLoss", d.Traction.SlipLoss)
	viper.SetDefault("tuning.traction.tractionMin", d.Traction.TractionMin)
	viper.SetDefault("tuning.traction.tractionMax", d.Traction.TractionMax)

	viper.SetDefault("tuning.damping.base", d.Damping.Base)
	viper.SetDefault("tuning.damping.span", d.Damping.Span)
	viper.SetDefault("tuning.damping.speedRef", d.Damping.SpeedRef)

	viper.SetDefault("tuning.stabilizer.maxDirectionDiff", d.Stabilizer.MaxDirectionDiff)
	viper.SetDefault("tuning.stabilizer.maxSlipAngle", d.Stabilizer.MaxSlipAngle)
	viper.SetDefault("tuning.stabilizer.maxAngularVelocity", d.Stabilizer.MaxAngularVelocity)
	viper.SetDefault("tuning.stabilizer.maxSteerInput", d.Stabilizer.MaxSteerInput)
	viper.SetDefault("tuning.stabilizer.minSpeed", d.Stabilizer.MinSpeed)
	viper.SetDefault("tuning.stabilizer.dampingFactor", d.Stabilizer.DampingFactor)
	viper.SetDefault("tuning.stabilizer.minCorrectSpeed", d.Stabilizer.MinCorrectSpeed)
	viper.SetDefault("tuning.stabilizer.snapDirectionDiff", d.Stabilizer.SnapDirectionDiff)
	viper.SetDefault("tuning.stabilizer.convergenceBase", d.Stabilizer.ConvergenceBase)
	viper.SetDefault("tuning.stabilizer.convergenceSpeedRef", d.Stabilizer.ConvergenceSpeedRef)
	viper.SetDefault("tuning.stabilizer.convergenceMaxBoost", d.Stabilizer.ConvergenceMaxBoost)

	viper.SetDefault("tuning.drive.forceMagnitude", d.Drive.ForceMagnitude)
	viper.SetDefault("tuning.drive.reverseRatio", d.Drive.ReverseRatio)
	viper.SetDefault("tuning.drive.reverseThreshold", d.Drive.ReverseThreshold)
	viper.SetDefault("tuning.drive.brakeFactor", d.Drive.BrakeFactor)
	viper.SetDefault("tuning.drive.idleFactor", d.Drive.IdleFactor)

	viper.SetDefault("tuning.smoke.slipThreshold", d.Smoke.SlipThreshold)
	viper.SetDefault("tuning.smoke.minSpeed", d.Smoke.MinSpeed)
	viper.SetDefault("tuning.smoke.interval", d.Smoke.Interval)
	viper.SetDefault("tuning.smoke.maxParticles", d.Smoke.MaxParticles)
	viper.SetDefault("tuning.smoke.startSize", d.Smoke.StartSize)
	viper.SetDefault("tuning.smoke.maxSize", d.Smoke.MaxSize)
	viper.SetDefault("tuning.smoke.maxAlpha", d.Smoke.MaxAlpha)
	viper.SetDefault("tuning.smoke.expandTime", d.Smoke.ExpandTime)
	viper.SetDefault("tuning.smoke.lifetime", d.Smoke.Lifetime)
	viper.SetDefault("tuning.smoke.backOffset", d.Smoke.BackOffset)

	viper.SetDefault("tuning.input.deadZone", d.Input.DeadZone)
	viper.SetDefault("tuning.input.steerAxis", d.Input.SteerAxis)
	viper.SetDefault("tuning.input.accelButton", d.Input.AccelButton)
	viper.SetDefault("tuning.input.brakeButton", d.Input.BrakeButton)

	viper.SetDefault("tuning.body.mass", d.Body.Mass)
	viper.SetDefault("tuning.body.frictionAir", d.Body.FrictionAir)
	viper.SetDefault("tuning.body.width", d.Body.Width)
	viper.SetDefault("tuning.body.length", d.Body.Length)
}
