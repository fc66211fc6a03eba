//go:build wasm

package main

import (
	"encoding/json"
	"fmt"
	"sync"
	"syscall/js"

	"github.com/quizkey/quizkey/pkg/shell"
)

var (
	sessions   = make(map[int]*shell.Session)
	sessionsMu sync.RWMutex
	nextID     int
)

// consoleLogger forwards session debug lines to the browser console.
type consoleLogger struct{}

func (consoleLogger) Log(format string, args ...interface{}) {
	js.Global().Get("console").Call("debug", "quizkey: "+fmt.Sprintf(format, args...))
}

// newSession creates a new extraction session.
// JS: QuizkeyNewSession() -> handle (int) or error
func newSession(this js.Value, args []js.Value) interface{} {
	session := shell.NewSession(consoleLogger{})

	// Register session
	sessionsMu.Lock()
	id := nextID
	nextID++
	sessions[id] = session
	sessionsMu.Unlock()

	return map[string]interface{}{"handle": id}
}

// process runs one full pass over the pasted document text.
// JS: QuizkeyProcess(handle, text) -> JSON view or error
func process(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return map[string]interface{}{"error": "handle and text arguments required"}
	}

	handle := args[0].Int()
	text := args[1].String()

	sessionsMu.RLock()
	session, ok := sessions[handle]
	sessionsMu.RUnlock()

	if !ok {
		return map[string]interface{}{"error": "invalid session handle"}
	}

	// Document-level errors come back inside the view so the page can
	// render the matching message.
	view := session.Process(text)

	jsonBytes, err := json.Marshal(view)
	if err != nil {
		return map[string]interface{}{"error": "failed to marshal view: " + err.Error()}
	}

	return string(jsonBytes)
}

// reset clears the session back to empty input, results, and error.
// JS: QuizkeyReset(handle) -> JSON view or error
func reset(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return map[string]interface{}{"error": "handle argument required"}
	}

	handle := args[0].Int()

	sessionsMu.RLock()
	session, ok := sessions[handle]
	sessionsMu.RUnlock()

	if !ok {
		return map[string]interface{}{"error": "invalid session handle"}
	}

	view := session.Reset()

	jsonBytes, err := json.Marshal(view)
	if err != nil {
		return map[string]interface{}{"error": "failed to marshal view: " + err.Error()}
	}

	return string(jsonBytes)
}

// closeSession drops a session.
// JS: QuizkeyCloseSession(handle)
func closeSession(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return map[string]interface{}{"error": "handle argument required"}
	}

	handle := args[0].Int()

	sessionsMu.Lock()
	_, ok := sessions[handle]
	if ok {
		delete(sessions, handle)
	}
	sessionsMu.Unlock()

	if !ok {
		return map[string]interface{}{"error": "invalid session handle"}
	}

	return nil
}
