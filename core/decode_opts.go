package scrip

// DecoderOption configures a Decoder.
type DecoderOption func(*Decoder)

// DecoderWithMaxFiles limits the number of entries a document may declare.
// Zero uses DefaultMaxFiles. Negative means no limit.
func DecoderWithMaxFiles(n int) DecoderOption {
	return func(d *Decoder) {
		d.maxFiles = n
	}
}

// DecoderWithMaxFileSize limits the stored size in bytes of a single
// entry's content block. Zero uses DefaultMaxFileSize. Negative means no
// limit.
func DecoderWithMaxFileSize(n int64) DecoderOption {
	return func(d *Decoder) {
		d.maxFileSize = n
	}
}
