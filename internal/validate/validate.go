// Package validate holds the pure input predicates used by the HTTP handlers.
package validate

import (
	"encoding/json"
	"mime/multipart"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

var (
	uuidRegex    = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)
	emailRegex   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	integerRegex = regexp.MustCompile(`^-?\d+$`)
	imageRegex   = regexp.MustCompile(`^image/(png|jpe?g|gif|webp|svg\+xml)$`)
)

// IsValidString reports whether s is non-empty after trimming whitespace.
func IsValidString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidUUID reports whether s is a canonical 8-4-4-4-12 UUID.
func IsValidUUID(s string) bool {
	return uuidRegex.MatchString(s)
}

// IsValidEmail reports whether s looks like an email address.
func IsValidEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// IsValidJSON reports whether s parses as JSON. Parse errors are swallowed.
func IsValidJSON(s string) bool {
	return json.Valid([]byte(s))
}

// IsValidInteger reports whether s is an integer that fits in 64 bits.
func IsValidInteger(s string) bool {
	if !integerRegex.MatchString(s) {
		return false
	}
	_, err := strconv.ParseInt(s, 10, 64)
	return err == nil
}

// IsValidArray reports whether v is a slice or array value of any length.
func IsValidArray(v any) bool {
	if v == nil {
		return false
	}
	k := reflect.ValueOf(v).Kind()
	return k == reflect.Slice || k == reflect.Array
}

// IsValidUUIDSlice reports whether every element of ids is a canonical UUID.
// An empty slice is vacuously valid.
func IsValidUUIDSlice(ids []string) bool {
	for _, id := range ids {
		if !uuidRegex.MatchString(id) {
			return false
		}
	}
	return true
}

// IsEmptyArray reports whether ids is a present but empty slice.
func IsEmptyArray(ids []string) bool {
	return ids != nil && len(ids) == 0
}

// IsValidImage reports whether the uploaded file declares an image media type.
func IsValidImage(f *multipart.FileHeader) bool {
	return f != nil && imageRegex.MatchString(f.Header.Get("Content-Type"))
}

// IsValidBoolean reports whether v is a boolean value at runtime.
func IsValidBoolean(v any) bool {
	_, ok := v.(bool)
	return ok
}
