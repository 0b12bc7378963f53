package executor

// Path locates a field in the response tree: field names interleaved with
// list indexes.
type Path []PathElement

type PathElement any

// Error codes surfaced under extensions.code.
const (
	CodeUnknownOperation    = "UNKNOWN_OPERATION"
	CodeUnknownField        = "UNKNOWN_FIELD"
	CodeInvalidArgumentType = "INVALID_ARGUMENT_TYPE"
)

// Error is a located resolution error.
type Error struct {
	Message    string         `json:"message"`
	Path       Path           `json:"path,omitempty"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

func (e Error) Error() string { return e.Message }

// ExecutionResult is the outcome of resolving one request: the response tree
// shaped exactly like the selection, plus any per-field errors collected
// along the way.
type ExecutionResult struct {
	Data   map[string]any `json:"data"`
	Errors []Error        `json:"errors,omitempty"`
}
