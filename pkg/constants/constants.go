// Package constants provides shared constants for the propwise application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)

// Rent estimation constants
const (
	// RentLowRate is the low-end monthly rent estimate per square foot
	RentLowRate = 1.10

	// RentHighRate is the high-end monthly rent estimate per square foot
	RentHighRate = 1.30
)

// Classification thresholds
const (
	// RentalROIThreshold is the minimum ROI percentage for a rental recommendation
	RentalROIThreshold = 10.0

	// BadBuyROIThreshold is the ROI percentage below which a cash-negative
	// property is considered a bad buy
	BadBuyROIThreshold = 5.0
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Export format constants
const (
	// ExportFormatCSV is the CSV download format
	ExportFormatCSV = "csv"

	// ExportFormatXLSX is the spreadsheet download format
	ExportFormatXLSX = "xlsx"

	// ExportSheetName is the worksheet name used for spreadsheet exports
	ExportSheetName = "Properties"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size (256 KB)
	DefaultMaxBodySizeBytes int64 = 256 * 1024

	// SessionIDBytes is the number of random bytes in a session identifier
	SessionIDBytes = 16
)
