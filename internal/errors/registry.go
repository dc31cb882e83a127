package errors

// Registered error codes.
const (
	CodeInvalidSelector = "Q001"
	CodeNodeNotFound    = "Q002"
	CodeNotInitialized  = "Q003"
	CodeMissingHandler  = "Q004"
	CodeFixtureInvalid  = "Q010"
	CodeConfigInvalid   = "Q020"
	CodeNoMatch         = "Q030"
)

// Template defines a registered error type.
type Template struct {
	Category    Category
	Message     string
	Explanation string
	Suggestion  string
}

// registry maps error codes to their templates.
var registry = map[string]Template{
	CodeInvalidSelector: {
		Category:    CategoryQuery,
		Message:     "Invalid selector",
		Explanation: "A selector must be a non-empty string made of a tag, .class and #id fragments, or a predicate func(*vdom.VNode) bool.",
		Suggestion:  `Use a fragment such as "button", ".todo" or "#main".`,
	},
	CodeNodeNotFound: {
		Category:    CategoryQuery,
		Message:     "Node not found",
		Explanation: "The query was resolved against the current tree and no node matched. Queries are lazy, so this is reported when the result is first used.",
		Suggestion:  "Call Exists() to check for a node without failing.",
	},
	CodeNotInitialized: {
		Category:    CategoryQuery,
		Message:     "Projector not initialized",
		Explanation: "The projector has no render function, either because Initialize was never called or because Uninitialize cleared it.",
		Suggestion:  "Call Initialize(render) before resolving handles.",
	},
	CodeMissingHandler: {
		Category:    CategorySimulate,
		Message:     "Missing event handler",
		Explanation: "The resolved node has no callable handler for the simulated event. This usually means the test targets the wrong node.",
	},
	CodeFixtureInvalid: {
		Category:    CategoryFixture,
		Message:     "Invalid fixture",
		Explanation: "The fixture file could not be decoded into a virtual node tree.",
	},
	CodeConfigInvalid: {
		Category:    CategoryConfig,
		Message:     "Invalid configuration",
		Explanation: "The vquery configuration file contains an unsupported value.",
	},
	CodeNoMatch: {
		Category:    CategoryCLI,
		Message:     "No match",
		Explanation: "No node in the fixture matched the selector.",
		Suggestion:  "Run vquery query with a broader selector to see what the fixture contains.",
	},
}

// Lookup returns the template registered for code.
func Lookup(code string) (Template, bool) {
	t, ok := registry[code]
	return t, ok
}

// Codes returns all registered error codes.
func Codes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}
