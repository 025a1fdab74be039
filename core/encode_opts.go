package scrip

// EncoderOption configures an Encoder.
type EncoderOption func(*Encoder)

// EncoderWithTextOnly makes WriteEntry fail with ErrUnencodableContent
// instead of falling back to base64 framing. Use it when the document must
// stay human-readable end to end.
func EncoderWithTextOnly(enabled bool) EncoderOption {
	return func(e *Encoder) {
		e.textOnly = enabled
	}
}

// EncoderWithMaxFiles caps the number of entries the Encoder accepts.
// Zero uses DefaultMaxFiles. Negative means no limit.
func EncoderWithMaxFiles(n int) EncoderOption {
	return func(e *Encoder) {
		e.maxFiles = n
	}
}
