package config

const (
	defaultLogDir         = "~/.local/share/subber/logs"
	defaultThreshold      = 0.75
	defaultDateBoost      = 0.3
	defaultAudioOutputDir = "audio_files"
	defaultAudioQuality   = "0"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir: defaultLogDir,
		},
		Matching: Matching{
			Threshold: defaultThreshold,
			DateBoost: defaultDateBoost,
		},
		Audio: Audio{
			OutputDir: defaultAudioOutputDir,
			Quality:   defaultAudioQuality,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		History: History{
			Enabled: true,
		},
	}
}
