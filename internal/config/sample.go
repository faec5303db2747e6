package config

// SampleConfig returns a fully documented configuration file
func SampleConfig() string {
	return `# SortVis configuration
version: "1.0"

run:
  # bubble, selection, bogo (merge is listed but not implemented)
  algorithm: bubble
  # random, reversed, nearly-sorted, few-unique, sorted
  arrangement: random
  # delay between ticks, at least 1ms
  tick_interval: 10ms
  # delay between completion sweep ticks, 0 uses tick_interval
  sweep_interval: 0s
  # terminal cells per bar
  bar_width: 1
  # number of bars, 0 fits the terminal width
  size: 0
  # random seed, 0 picks one from the clock
  seed: 0
  # seconds of countdown before the run starts
  countdown: 3

output:
  # text, json, csv, markdown (headless reports)
  default_format: text
  # auto, always, never
  color_mode: auto
  # default, high-contrast, minimal
  theme: default
  emoji: true

sound:
  enabled: true
  volume: 0.01
  base_hz: 200
  hz_per_unit: 2

logging:
  # logs are written here while the TUI owns the terminal
  file: ""
  verbose: false
`
}

// MinimalSampleConfig returns a configuration with only the essentials
func MinimalSampleConfig() string {
	return `version: "1.0"
run:
  algorithm: bubble
  arrangement: random
  tick_interval: 10ms
`
}
