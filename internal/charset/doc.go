// Package charset resolves text encodings by their IANA names and
// converts file bytes to and from UTF-8.
//
// UTF-8 is the default and is validated strictly: undecodable bytes are
// reported as an error rather than substituted. Other charsets go
// through golang.org/x/text transforms; note that the decoders for some
// single-byte charsets substitute U+FFFD for unmapped bytes instead of
// failing. Encoders always fail on runes the target charset cannot
// represent.
package charset
