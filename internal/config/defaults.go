package config

import "textstat/internal/textio"

const (
	defaultConfigPath          = "~/.config/textstat/config.toml"
	fallbackDataDir            = "~/.local/share/textstat"
	defaultStatsJobs           = 4
	defaultMergeOutput         = "output.txt"
	defaultHistoryRetentionDay = 90
	defaultLogFormat           = "console"
	defaultLogLevel            = "info"
)

// Merge policies accepted by merge.policy.
const (
	MergePolicyBestEffort = "best_effort"
	MergePolicyStrict     = "strict"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir(),
		},
		Text: Text{
			Encoding: textio.DefaultEncoding,
		},
		Stats: Stats{
			Jobs: defaultStatsJobs,
		},
		Merge: Merge{
			Policy: MergePolicyBestEffort,
			Output: defaultMergeOutput,
		},
		History: History{
			Enabled:       true,
			RetentionDays: defaultHistoryRetentionDay,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
