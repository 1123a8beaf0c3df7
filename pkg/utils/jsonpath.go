package utils

import (
	"encoding/json"
	"time"
)

// ExtractString walks a JSON document along the given key path and returns
// the string value at the leaf. Submission payloads are schema-agnostic; this
// is the only way the engine ever looks inside form_data.
func ExtractString(doc []byte, path ...string) (string, bool) {
	if len(doc) == 0 || len(path) == 0 {
		return "", false
	}

	var node any
	if err := json.Unmarshal(doc, &node); err != nil {
		return "", false
	}

	for _, key := range path {
		obj, ok := node.(map[string]any)
		if !ok {
			return "", false
		}
		node, ok = obj[key]
		if !ok {
			return "", false
		}
	}

	s, ok := node.(string)
	return s, ok
}

// workEndLayout matches the timestamp format the form front-end writes into
// formDetails.datetime_of_work_to.
const workEndLayout = "2006-01-02T15:04:05"

// ExtractWorkEnd pulls the work-window end timestamp out of a submission
// payload. The returned time is interpreted in the given location.
func ExtractWorkEnd(formData []byte, loc *time.Location) (time.Time, bool) {
	raw, ok := ExtractString(formData, "formDetails", "datetime_of_work_to")
	if !ok {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(workEndLayout, raw, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
