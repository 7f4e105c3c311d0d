package dbf

import (
	"strconv"
	"strings"
)

// decodeValue turns the raw fixed-width bytes of one field into a Go
// value. Character values keep their padding, the stored value is the
// stored value.
func decodeValue(field Field, raw []byte) interface{} {

	switch field.Type {

	case Character:
		return string(raw)

	case Numeric, Float:
		s := strings.TrimSpace(string(raw))
		if s == "" {
			return nil
		}
		if field.Type == Numeric && field.Decimals == 0 {
			n, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				return nil
			}
			return n
		}
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		return n

	case Logical:
		switch raw[0] {
		case 'T', 't', 'Y', 'y':
			return true
		case 'F', 'f', 'N', 'n':
			return false
		}
		return nil

	case Date:
		return strings.TrimSpace(string(raw)) // YYYYMMDD, "" when unset

	}

	return string(raw)
}

// encodeValue renders a Go value into the fixed-width byte slot of one
// field. Numeric overflow fills the slot with asterisks, the classic
// dBase convention.
func encodeValue(field Field, value interface{}, out []byte) {

	for i := range out {
		out[i] = ' '
	}

	switch field.Type {

	case Character:
		s, ok := value.(string)
		if !ok && value != nil {
			s = stringify(value)
		}
		if len(s) > field.Length {
			s = s[:field.Length]
		}
		copy(out, s)

	case Numeric, Float:
		var s string
		switch v := value.(type) {
		case nil:
			return
		case string:
			s = strings.TrimSpace(v)
		default:
			f, ok := toFloat(value)
			if !ok {
				return
			}
			if field.Decimals > 0 {
				s = strconv.FormatFloat(f, 'f', field.Decimals, 64)
			} else {
				s = strconv.FormatInt(int64(f), 10)
			}
		}
		if len(s) > field.Length {
			for i := range out {
				out[i] = '*'
			}
			return
		}
		copy(out[field.Length-len(s):], s) // right aligned

	case Logical:
		b, ok := value.(bool)
		if !ok {
			out[0] = '?'
			return
		}
		if b {
			out[0] = 'T'
		} else {
			out[0] = 'F'
		}

	case Date:
		s, _ := value.(string)
		s = strings.TrimSpace(s)
		if len(s) > field.Length {
			s = s[:field.Length]
		}
		copy(out, s)
	}
}

func toFloat(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

func stringify(value interface{}) string {
	switch v := value.(type) {
	case bool:
		if v {
			return "T"
		}
		return "F"
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return ""
}
