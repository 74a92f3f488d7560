package credctx

// Context is a credential record exchanged with a credential helper.
//
// Every field is optional: a nil pointer (or nil byte slice) means the
// field is absent and produces no output line. A present-but-empty value
// is meaningful and round-trips as `key=` on the wire.
type Context struct {
	// URL and Path are opaque byte fields, carried verbatim on the wire.
	// They need not be valid UTF-8.
	URL  []byte
	Path []byte

	// Text fields. Values must be valid UTF-8 on the wire.
	Protocol *string
	Host     *string
	Username *string
	Password *string

	// Quit asks the receiving side to abort the credential exchange.
	Quit *bool
}
