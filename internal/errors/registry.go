package errors

// Template defines a registered error type.
type Template struct {
	Category   Category
	Message    string
	Suggestion string
}

// Registered error codes.
const (
	CodeInvalidAttributeValue = "B001"
	CodeUnexpectedValue       = "B002"
	CodeElementMisuse         = "B003"
	CodeTranslation           = "B010"
	CodeAsset                 = "B020"
	CodeAssetPublish          = "B021"
	CodeConfigRead            = "B030"
	CodeConfigInvalid         = "B031"
	CodeConfigNotFound        = "B032"
	CodeValidation            = "B040"
	CodeUnknownWidget         = "B050"
)

// registry maps error codes to their templates.
var registry = map[string]Template{
	// Render errors (B001-B009)

	CodeInvalidAttributeValue: {
		Category:   CategoryRender,
		Message:    "Invalid attribute value",
		Suggestion: "Attribute values must be strings, numbers, booleans, nil or values implementing fmt.Stringer",
	},
	CodeUnexpectedValue: {
		Category:   CategoryWidget,
		Message:    "Unexpected widget structure",
		Suggestion: "Check the type of the special attribute the widget expects",
	},
	CodeElementMisuse: {
		Category: CategoryRender,
		Message:  "Element misuse",
	},

	// i18n errors (B010-B019)

	CodeTranslation: {
		Category:   CategoryI18n,
		Message:    "Translation catalog error",
		Suggestion: "Catalog files are YAML maps of message keys to translations",
	},

	// Asset errors (B020-B029)

	CodeAsset: {
		Category:   CategoryAsset,
		Message:    "Asset manifest error",
		Suggestion: "The manifest must be a JSON object mapping source paths to resolved paths",
	},
	CodeAssetPublish: {
		Category:   CategoryAsset,
		Message:    "Asset publish failed",
		Suggestion: "Check the bucket name, region and credentials",
	},

	// Config errors (B030-B039)

	CodeConfigRead: {
		Category:   CategoryConfig,
		Message:    "Failed to read brickrouge.json",
		Suggestion: "Check that brickrouge.json is valid JSON",
	},
	CodeConfigInvalid: {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
	},
	CodeConfigNotFound: {
		Category:   CategoryConfig,
		Message:    "Configuration not found",
		Suggestion: "Create brickrouge.json at the project root",
	},

	// Validation errors (B040-B049)

	CodeValidation: {
		Category: CategoryValidation,
		Message:  "Validation failed",
	},

	// CLI errors (B050-B059)

	CodeUnknownWidget: {
		Category:   CategoryCLI,
		Message:    "Unknown widget",
		Suggestion: "Run 'brickrouge render --list' to see available widgets",
	},
}

// Lookup returns the template registered for code.
func Lookup(code string) (Template, bool) {
	t, ok := registry[code]
	return t, ok
}
