package endpoint

import "net/url"

// Form is the read-only view of the key/value data parsed from a request's
// query string and body. Missing keys are never an error.
type Form struct {
	values url.Values
}

func NewForm(v url.Values) Form {
	if v == nil {
		v = url.Values{}
	}
	return Form{values: v}
}

// FormOf is a convenience for tests and in-process callers.
func FormOf(kv map[string]string) Form {
	v := make(url.Values, len(kv))
	for k, x := range kv {
		v.Set(k, x)
	}
	return Form{values: v}
}

// Get returns the first value for key, or "" when absent.
func (f Form) Get(key string) string {
	if f.values == nil {
		return ""
	}
	return f.values.Get(key)
}

// GetOr returns the first value for key, or def when absent.
func (f Form) GetOr(key, def string) string {
	if !f.Has(key) {
		return def
	}
	return f.values.Get(key)
}

func (f Form) Has(key string) bool {
	if f.values == nil {
		return false
	}
	_, ok := f.values[key]
	return ok
}

// All returns every value for key. The slice is a copy.
func (f Form) All(key string) []string {
	if f.values == nil {
		return nil
	}
	return append([]string(nil), f.values[key]...)
}

func (f Form) Len() int { return len(f.values) }
