package tools

import (
	"encoding/json"
	"fmt"
)

// Result is the tagged outcome of a tool invocation. A result is either a
// success carrying a payload or a failure carrying an error message, never
// both.
type Result struct {
	ok      bool
	payload map[string]interface{}
	errMsg  string
}

// Ok builds a success result. The payload may be nil.
func Ok(payload map[string]interface{}) Result {
	return Result{ok: true, payload: payload}
}

// Fail builds a failure result with a formatted message.
func Fail(format string, args ...interface{}) Result {
	return Result{ok: false, errMsg: fmt.Sprintf(format, args...)}
}

func (r Result) Success() bool {
	return r.ok
}

func (r Result) Error() string {
	return r.errMsg
}

func (r Result) Payload() map[string]interface{} {
	return r.payload
}

// ToMap flattens the result into a plain map, the shape tool results take
// inside the pipeline state and API responses.
func (r Result) ToMap() map[string]interface{} {
	out := map[string]interface{}{"success": r.ok}
	if r.ok {
		for k, v := range r.payload {
			out[k] = v
		}
	} else {
		out["error"] = r.errMsg
	}
	return out
}

// MarshalJSON keeps the wire format flat: {"success":true,...payload} on
// success, {"success":false,"error":"..."} on failure.
func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.ToMap())
}
