package core

import (
	"strconv"
	"strings"

	"github.com/gobuffalo/envy"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Environment variables read by LoadConfiguration
const (
	EnvLogLevel         = "KORU_LOG_LEVEL"
	EnvLogFormat        = "KORU_LOG_FORMAT"
	EnvPresetDir        = "KORU_PRESET_DIR"
	EnvDumpCompress     = "KORU_DUMP_COMPRESS"
	EnvDeviceExtensions = "KORU_DEVICE_EXTENSIONS"
)

// Log formats
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Configuration defines a global engine configuration setting
type Configuration struct {
	Log      LogConfiguration
	Mesh     MeshConfiguration
	Renderer RendererConfiguration
}

// LogConfiguration is used to configure logging
type LogConfiguration struct {
	Level  logrus.Level
	Format string
}

// MeshConfiguration is used to configure mesh layout tooling
type MeshConfiguration struct {
	// PresetDir replaces the built-in presets if set
	PresetDir string

	// DumpCompress lz4 compresses dumped layouts
	DumpCompress bool
}

// RendererConfiguration is used to configure the renderer
type RendererConfiguration struct {
	// DeviceExtensions have to be present on the physical device
	DeviceExtensions []string
}

// DefaultConfiguration is used for anything not set in the environment
func DefaultConfiguration() Configuration {
	return Configuration{
		Log: LogConfiguration{
			Level:  logrus.InfoLevel,
			Format: LogFormatText,
		},
	}
}

// get treats empty variables as unset.
func get(key, value string) string {
	if v := envy.Get(key, ""); v != "" {
		return v
	}
	return value
}

// LoadConfiguration reads the configuration from the environment. envy
// picks up a .env file in the working directory on its own, envFiles are
// read on top of it. Variables already set to a non-empty value win.
func LoadConfiguration(envFiles ...string) (Configuration, error) {
	if len(envFiles) > 0 {
		values, err := godotenv.Read(envFiles...)
		if err != nil {
			return Configuration{}, errors.Wrap(err, "godotenv.Read()")
		}
		for key, value := range values {
			if get(key, "") == "" {
				envy.Set(key, value)
			}
		}
	}

	config := DefaultConfiguration()

	level, err := logrus.ParseLevel(get(EnvLogLevel, config.Log.Level.String()))
	if err != nil {
		return Configuration{}, errors.Wrap(err, EnvLogLevel)
	}
	config.Log.Level = level

	switch format := strings.ToLower(get(EnvLogFormat, config.Log.Format)); format {
	case LogFormatText, LogFormatJSON:
		config.Log.Format = format
	default:
		return Configuration{}, errors.Errorf("%s: unknown log format %q", EnvLogFormat, format)
	}

	config.Mesh.PresetDir = get(EnvPresetDir, "")
	if compress := get(EnvDumpCompress, ""); compress != "" {
		if config.Mesh.DumpCompress, err = strconv.ParseBool(compress); err != nil {
			return Configuration{}, errors.Wrap(err, EnvDumpCompress)
		}
	}

	for _, ext := range strings.Split(get(EnvDeviceExtensions, ""), ",") {
		if ext = strings.TrimSpace(ext); ext != "" {
			config.Renderer.DeviceExtensions = append(config.Renderer.DeviceExtensions, ext)
		}
	}
	return config, nil
}

// SetupLogging applies the log configuration to logger.
func SetupLogging(logger *logrus.Logger, config LogConfiguration) {
	logger.SetLevel(config.Level)
	switch config.Format {
	case LogFormatJSON:
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}
