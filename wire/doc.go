// Package wire implements the stdin/stdout JSON protocol: one
// request object in, one response object out, using jsoniter in place of
// encoding/json for marshaling and unmarshaling every request and response.
package wire
