// Package sealed stores records encrypted at rest.
//
// A sealed record file is a JSON envelope carrying scrypt parameters, a
// fresh salt, and a ChaCha20-Poly1305 ciphertext of the record's JSON
// serialization. The envelope is versioned so the on-disk format can
// evolve.
package sealed
