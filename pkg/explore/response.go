package explore

import "encoding/json"

// Response is an optional capability a transition's return value may
// satisfy. It is never required: an action can return anything, including
// nil. When the returned value does satisfy Response and its body parses
// as JSON, the engine opportunistically stashes the parsed body in the
// context under "_json_<edge name>" so later invariants and transitions
// can inspect it without every action author hand-rolling the same
// type assertion.
type Response interface {
	Body() []byte
	StatusCode() int
	Headers() map[string][]string
}

// attachJSON stores the JSON-decoded body of resp into ctx under
// "_json_<edgeName>" if resp satisfies Response and its body is valid JSON
// object data. It is a no-op otherwise.
func attachJSON(ctx map[string]any, edgeName string, resp any) {
	r, ok := resp.(Response)
	if !ok {
		return
	}

	var parsed map[string]any
	if err := json.Unmarshal(r.Body(), &parsed); err != nil {
		return
	}
	ctx["_json_"+edgeName] = parsed
}
