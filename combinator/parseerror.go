package combinator

// ParseError is a closed set of parse failure kinds. The engine itself only ever
// produces IncompleteRequest and MalformedRequest; the grammar built on top of it
// owns the rest. Keeping all kinds in a single enum keeps error handling across
// Sequence/Choice exhaustive.
type ParseError uint8

const (
	InvalidMethod ParseError = iota + 1
	InvalidURI
	InvalidVersion
	InvalidHeader
	// IncompleteRequest means the input ended too early, and feeding more bytes
	// may still produce a successful parse. Every other kind is final: the input
	// can never become valid, no matter how much is appended.
	IncompleteRequest
	MalformedRequest
)

func (e ParseError) Error() string {
	switch e {
	case InvalidMethod:
		return "invalid method"
	case InvalidURI:
		return "invalid uri"
	case InvalidVersion:
		return "invalid protocol version"
	case InvalidHeader:
		return "invalid header"
	case IncompleteRequest:
		return "incomplete request"
	case MalformedRequest:
		return "malformed request"
	default:
		return "unknown parse error"
	}
}
