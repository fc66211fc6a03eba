// Package serve runs the extraction session as a long-lived NDJSON server
// over a reader/writer pair, for hosts that keep the process alive and
// stream requests.
package serve

import (
	"bufio"
	"context"
	"encoding/json"
	"io"

	"github.com/quizkey/quizkey/pkg/shell"
)

// Version is the server protocol version
const Version = "1.0.0"

// Server manages a streaming extraction session
type Server struct {
	session *shell.Session
	encoder *json.Encoder
	decoder *json.Decoder
}

// NewServer creates a new streaming server around one session
func NewServer(session *shell.Session, in io.Reader, out io.Writer) *Server {
	return &Server{
		session: session,
		encoder: json.NewEncoder(out),
		decoder: json.NewDecoder(bufio.NewReader(in)),
	}
}

// Run starts the server main loop
func (s *Server) Run(ctx context.Context) error {
	// Send ready signal
	s.sendReady()

	// Use buffered channels for incoming requests
	reqChan := make(chan Request, 1)
	errChan := make(chan error, 1)

	go func() {
		for {
			var req Request
			if err := s.decoder.Decode(&req); err != nil {
				errChan <- err
				return
			}
			select {
			case reqChan <- req:
			case <-ctx.Done():
				return
			}
		}
	}()

	// Process requests until input closes or context cancels. Requests are
	// handled strictly one at a time; a new document never overlaps a
	// running one.
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-errChan:
			// Drain any pending requests before handling EOF
			for {
				select {
				case req := <-reqChan:
					if s.processRequest(req) {
						return nil
					}
				default:
					// No more pending requests
					if err == io.EOF {
						return nil
					}
					s.sendError("decode", err.Error())
					return nil
				}
			}
		case req := <-reqChan:
			if s.processRequest(req) {
				return nil
			}
		}
	}
}

// processRequest handles a single request and returns true if the server should exit
func (s *Server) processRequest(req Request) bool {
	switch req.Type {
	case "process":
		s.handleProcess(req.Payload)
	case "reset":
		s.handleReset()
	case "close":
		return true
	default:
		s.sendError("unknown", "unknown request type: "+req.Type)
	}
	return false
}

func (s *Server) sendReady() {
	data, _ := json.Marshal(ReadyData{Version: Version})
	s.encoder.Encode(Response{
		Success: true,
		Type:    "ready",
		Data:    data,
	})
}

func (s *Server) handleProcess(payload json.RawMessage) {
	var p ProcessPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		s.sendError("process", err.Error())
		return
	}

	// Document-level failures travel inside the view, not as protocol
	// errors, so the host can render the right message.
	view := s.session.Process(p.Input)

	data, _ := json.Marshal(view)
	s.encoder.Encode(Response{
		Success: true,
		Type:    "process",
		Data:    data,
	})
}

func (s *Server) handleReset() {
	view := s.session.Reset()

	data, _ := json.Marshal(view)
	s.encoder.Encode(Response{
		Success: true,
		Type:    "reset",
		Data:    data,
	})
}

func (s *Server) sendError(reqType, msg string) {
	s.encoder.Encode(Response{
		Success: false,
		Type:    reqType,
		Error:   msg,
	})
}
