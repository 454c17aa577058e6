// Package report aggregates ledger records into groups, counts and histograms
// and renders them as tables.
package report

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// FieldValue returns the value of a record field as display text, addressed by
// its JSON name ("vehicleNo") or by a JSON path ("$.advances[0].amount").
// Missing, empty and null values and unset dates read as "". Zero numbers
// read as "0".
func FieldValue(record any, key string) string {
	raw, err := json.Marshal(record)
	if err != nil {
		return ""
	}
	var obj any
	if err := json.Unmarshal(raw, &obj); err != nil {
		return ""
	}
	path := key
	if !strings.HasPrefix(key, "$") {
		path = "$[" + strconv.Quote(key) + "]"
	}
	v, err := jsonpath.Get(path, obj)
	if err != nil {
		return ""
	}
	return text(v)
}

func text(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		s := strings.TrimSpace(x)
		if s == zeroTimeJSON {
			return ""
		}
		return s
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	default:
		raw, err := json.Marshal(x)
		if err != nil {
			return fmt.Sprint(x)
		}
		return string(raw)
	}
}

const zeroTimeJSON = "0001-01-01T00:00:00Z"
