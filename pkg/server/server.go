package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/calyptra/wordforge/internal/logger"
	"github.com/calyptra/wordforge/pkg/lexicon"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// defaultResultLimit caps word-list responses when the client sends no limit.
const defaultResultLimit = 64

// Server handles the IPC for dictionary queries. Requests are decoded as a
// msgpack stream and answered in arrival order.
type Server struct {
	words   *lexicon.Lexicon
	decoder *msgpack.Decoder
	encoder *msgpack.Encoder
	log     interface {
		Debugf(format string, args ...interface{})
		Errorf(format string, args ...interface{})
	}
}

// NewServer creates a dictionary server using stdin/stdout for IPC.
func NewServer(words *lexicon.Lexicon) *Server {
	return NewServerIO(words, os.Stdin, os.Stdout)
}

// NewServerIO creates a server over explicit streams, used by tests.
// The IPC log skips timestamps, every response already carries its own
// timing field.
func NewServerIO(words *lexicon.Lexicon, r io.Reader, w io.Writer) *Server {
	return &Server{
		words:   words,
		decoder: msgpack.NewDecoder(r),
		encoder: msgpack.NewEncoder(w),
		log:     logger.NewWithConfig("ipc", log.GetLevel(), false, false, log.TextFormatter),
	}
}

// Start begins listening for IPC requests. It returns nil when the client
// closes its end of the stream.
func (s *Server) Start() error {
	s.log.Debugf("Dictionary server ready (%d words)", s.words.Size())

	for {
		var req Request
		if err := s.decoder.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			s.log.Errorf("Decoding request: %v", err)
			return err
		}
		if err := s.send(s.handle(req)); err != nil {
			return err
		}
	}
}

func (s *Server) send(resp Response) error {
	if err := s.encoder.Encode(resp); err != nil {
		s.log.Errorf("Encoding response: %v", err)
		return err
	}
	return nil
}

// handle runs one request and stamps the elapsed time in microseconds.
func (s *Server) handle(req Request) Response {
	start := time.Now()
	resp := s.dispatch(req)
	resp.ID = req.ID
	resp.TimeTaken = time.Since(start).Microseconds()
	return resp
}

func (s *Server) dispatch(req Request) Response {
	switch req.Op {
	case OpLookup:
		if req.Word == "" {
			return fail("Missing 'w' parameter")
		}
		return Response{OK: true, Found: s.words.ContainsWord(strings.ToLower(req.Word))}

	case OpPrefix:
		if req.Word == "" {
			return fail("Missing 'w' parameter")
		}
		return Response{OK: true, Found: s.words.ContainsPrefix(strings.ToLower(req.Word))}

	case OpMatch:
		if req.Pattern == "" {
			return fail("Missing 'p' parameter")
		}
		matches, err := s.words.MatchPattern(req.Pattern)
		if err != nil {
			return fail(fmt.Sprintf("Invalid pattern: %v", err))
		}
		matches = clip(matches, req.Limit)
		return Response{OK: true, Words: matches, Count: len(matches)}

	case OpCorrect:
		if req.Word == "" {
			return fail("Missing 'w' parameter")
		}
		matches := s.words.SuggestCorrections(strings.ToLower(req.Word), req.Distance)
		matches = clip(matches, req.Limit)
		return Response{OK: true, Words: matches, Count: len(matches)}

	case OpRandom:
		word, err := s.words.RandomWord()
		if err != nil {
			return fail("Dictionary is empty")
		}
		return Response{OK: true, Word: word}

	case OpCount:
		return Response{OK: true, Count: s.words.Size()}

	case OpAdd:
		if req.Word == "" {
			return fail("Missing 'w' parameter")
		}
		return Response{OK: true, Found: s.words.Add(strings.ToLower(req.Word))}

	case OpRemove:
		if req.Word == "" {
			return fail("Missing 'w' parameter")
		}
		return Response{OK: true, Found: s.words.Remove(strings.ToLower(req.Word))}
	}
	return fail(fmt.Sprintf("Unknown op: %s", req.Op))
}

func fail(msg string) Response {
	return Response{Error: msg}
}

// clip bounds a result list, applying the default cap when the client did
// not ask for one.
func clip(words []string, limit int) []string {
	if limit < 1 {
		limit = defaultResultLimit
	}
	if len(words) > limit {
		return words[:limit]
	}
	return words
}
