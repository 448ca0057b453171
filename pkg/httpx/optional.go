package httpx

import "encoding/json"

// OptString is a JSON string field that distinguishes "key absent" from
// "key present but null". After unmarshalling a request body, Set is true
// iff the key appeared at all, and Value is nil for an explicit null.
// Plain *string cannot represent that difference, and partial-update
// endpoints need it.
type OptString struct {
	Set   bool
	Value *string
}

func (o *OptString) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		o.Value = nil
		return nil
	}
	return json.Unmarshal(b, &o.Value)
}

// String returns the value or "" when absent or null.
func (o OptString) String() string {
	if o.Value == nil {
		return ""
	}
	return *o.Value
}
