// SPDX-License-Identifier: MIT

package config

// Profile is the YAML run profile for citymst. Command-line flags override
// any field set here.
type Profile struct {
	// Algorithm is "kruskal", "prim" or "both".
	Algorithm string `yaml:"algorithm"`
	// Source names Prim's start city; empty means city 0.
	Source string `yaml:"source"`
	// RequireSpanning fails the run when the graph is disconnected.
	RequireSpanning bool `yaml:"require_spanning"`
	// MetricsFile, when set, receives Prometheus text-format metrics after each run.
	MetricsFile string    `yaml:"metrics_file"`
	Log         LogConfig `yaml:"log"`
}

// LogConfig selects the zap logger.
type LogConfig struct {
	// One of "debug", "info", "warn", "error".
	Level string `yaml:"level"`
	// "console" or "json".
	Format string `yaml:"format"`
}

// Algorithm choices.
const (
	AlgorithmKruskal = "kruskal"
	AlgorithmPrim    = "prim"
	AlgorithmBoth    = "both"
)

// Defaults applied to zero-valued fields.
const (
	DefaultAlgorithm = AlgorithmBoth
	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"
)

// Default returns a profile with every default applied.
func Default() *Profile {
	p := &Profile{}
	p.applyDefaults()
	return p
}

func (p *Profile) applyDefaults() {
	if p.Algorithm == "" {
		p.Algorithm = DefaultAlgorithm
	}
	if p.Log.Level == "" {
		p.Log.Level = DefaultLogLevel
	}
	if p.Log.Format == "" {
		p.Log.Format = DefaultLogFormat
	}
}
