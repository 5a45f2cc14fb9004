/*
Package server implements msgpack IPC for dictionary services.

The server provides a minimal interface for dictionary queries using msgpack
serialization over stdin/stdout.

The protocol uses binary msgpack encoding and supports word lookups, pattern
search, bounded correction search, random sampling and runtime dictionary
management. Messages are processed synchronously with timing info included in
responses.

# IPC

The server operates on a request response model where clients send structured
messages via stdin and receive responses through stdout. Each message carries
an ID field, an op and the parameters that op needs.

A lookup request uses mainly this structure:

	{"id": "req_001", "op": "lookup", "w": "quartz"}

The server responds with the verdict and timing:

	{"id": "req_001", "ok": true, "f": true, "t": 110}

Pattern and correction search return word arrays:

	{"id": "req_002", "op": "match", "p": "^qu"}
	{"id": "req_003", "op": "correct", "w": "cat", "d": 1}

Dictionary management enables runtime mutation of the loaded word set:

	{"id": "dict_001", "op": "add", "w": "zyzzyva"}
	{"id": "dict_002", "op": "count"}

Error details are carried inside the normal response with ok unset.

msgpack encoding has ~30 to 50% smaller message sizes compared to JSON.
binary format enables faster parsing and generation, less errors and reducing
latency in most cases.
*/
package server

// Request is one incoming dictionary operation.
type Request struct {
	ID       string `msgpack:"id"`
	Op       string `msgpack:"op"`
	Word     string `msgpack:"w,omitempty"`
	Pattern  string `msgpack:"p,omitempty"`
	Distance int    `msgpack:"d,omitempty"`
	Limit    int    `msgpack:"l,omitempty"`
}

// Response is the reply for any op. Fields unused by an op are omitted on
// the wire.
type Response struct {
	ID        string   `msgpack:"id"`
	OK        bool     `msgpack:"ok"`
	Found     bool     `msgpack:"f,omitempty"`
	Words     []string `msgpack:"s,omitempty"`
	Word      string   `msgpack:"word,omitempty"`
	Count     int      `msgpack:"c,omitempty"`
	TimeTaken int64    `msgpack:"t,omitempty"`
	Error     string   `msgpack:"e,omitempty"`
}

// Supported op names.
const (
	OpLookup  = "lookup"
	OpPrefix  = "prefix"
	OpMatch   = "match"
	OpCorrect = "correct"
	OpRandom  = "random"
	OpCount   = "count"
	OpAdd     = "add"
	OpRemove  = "remove"
)
