package errors

import "sort"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category   Category
	Message    string
	Suggestion string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Config Errors (E120-E129)
	// ============================================

	"E120": {
		Category:   CategoryConfig,
		Message:    "Invalid configuration file",
		Suggestion: "Check that nsgo.json is valid JSON",
	},
	"E121": {
		Category:   CategoryConfig,
		Message:    "Configuration file not found",
		Suggestion: "Create nsgo.json or pass --config",
	},
	"E122": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
	},

	// ============================================
	// Element Errors (E200-E209)
	// ============================================

	"E200": {
		Category:   CategoryElement,
		Message:    "Element already registered",
		Suggestion: "Register each element name once; pick a different name for the new element",
	},
	"E201": {
		Category:   CategoryElement,
		Message:    "Unknown element",
		Suggestion: "Register the element before the template that uses it is built",
	},
	"E202": {
		Category: CategoryElement,
		Message:  "Could not load view",
	},
	"E203": {
		Category: CategoryElement,
		Message:  "Invalid element registration",
	},

	// ============================================
	// Injector Errors (E210-E219)
	// ============================================

	"E210": {
		Category:   CategoryInject,
		Message:    "No provider for token",
		Suggestion: "Add a provider for the token to the provider list",
	},
	"E211": {
		Category: CategoryInject,
		Message:  "Circular dependency between providers",
	},
	"E212": {
		Category: CategoryInject,
		Message:  "Provider factory failed",
	},

	// ============================================
	// Manifest Errors (E220-E229)
	// ============================================

	"E220": {
		Category: CategoryManifest,
		Message:  "Could not load element manifest",
	},
	"E221": {
		Category:   CategoryManifest,
		Message:    "Invalid element manifest",
		Suggestion: "Each element needs a name and the name of the element it extends",
	},

	// ============================================
	// CLI Errors (E300-E309)
	// ============================================

	"E300": {
		Category: CategoryCLI,
		Message:  "Inspector server failed",
	},
}

// GetAllCodes returns all registered error codes in sorted order.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
