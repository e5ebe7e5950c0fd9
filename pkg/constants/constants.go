// Package constants provides shared constants for the nemde-fcas application.
package constants

// Dispatch constants
const (
	// IntervalsPerHour is the number of five-minute dispatch intervals in an
	// hour; it converts hourly SCADA ramp rates to a per-interval capability.
	IntervalsPerHour = 12.0

	// QuantityBandCount is the number of availability bands in a trade offer.
	QuantityBandCount = 10
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatYAML is the YAML output format
	OutputFormatYAML = "yaml"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"
)

// Runner defaults
const (
	// DefaultWorkers is the default number of concurrent offer evaluations
	DefaultWorkers = 4
)
