package formats

// ParseFailure classifies every way a wire payload can be rejected.
//
// The codec never partially accepts input: the first field that fails its
// check invalidates the whole message, and the failure kind tells the caller
// which check it was. A protocol server maps any ParseFailure to the
// MalformedContent response code.
//
// ParseFailure values implement error so they can travel through ordinary
// error returns and be matched with errors.Is.
type ParseFailure int

const (
	// ConversionError marks bytes that are not valid text or input whose
	// structural tokenisation failed outright.
	ConversionError ParseFailure = iota

	// InvalidCommand marks a first token that is neither a known command
	// nor a numeric response code.
	InvalidCommand

	// InvalidContentFormat marks wrong arity, a required field left empty,
	// or a top-level shape that does not fit the grammar.
	InvalidContentFormat

	// InvalidRole marks an unknown role token.
	InvalidRole

	// InvalidService marks an unknown service token.
	InvalidService

	// InvalidState marks an unknown state token.
	InvalidState

	// InvalidNaming marks a springname or hostname that failed validation.
	InvalidNaming

	// InvalidAddress marks an address that is not a parseable IP.
	InvalidAddress

	// InvalidProperty marks a keyed-info key outside the recognised set.
	InvalidProperty

	// InvalidInternalState is reserved for backend-reported invalid state.
	InvalidInternalState

	// UnexpectedContent marks a content variant that does not match the
	// command it arrived under.
	UnexpectedContent
)

var parseFailureText = map[ParseFailure]string{
	ConversionError:      "conversion error",
	InvalidCommand:       "invalid command",
	InvalidContentFormat: "invalid content format",
	InvalidRole:          "invalid role",
	InvalidService:       "invalid service",
	InvalidState:         "invalid state",
	InvalidNaming:        "invalid naming",
	InvalidAddress:       "invalid address",
	InvalidProperty:      "invalid property",
	InvalidInternalState: "invalid internal state",
	UnexpectedContent:    "unexpected content",
}

func (f ParseFailure) Error() string {
	if s, ok := parseFailureText[f]; ok {
		return s
	}
	return "unknown parse failure"
}
