package schema

import (
	"bytes"
	"strconv"
	"strings"

	crerr "github.com/cockroachdb/errors"
)

var (
	nullLiteral = []byte("null")

	errNotString = crerr.New("expected a string")
	errNotNumber = crerr.New("expected a number or numeric string")
)

// OptionalURL is a URL field the upstream sometimes sends as "" instead of
// omitting it. Empty and null both decode to absent; anything else must pass
// the url rule.
type OptionalURL struct {
	value string
	set   bool
}

func (u *OptionalURL) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, nullLiteral) {
		*u = OptionalURL{}
		return nil
	}
	if data[0] != '"' {
		return errNotString
	}
	raw, err := strconv.Unquote(string(data))
	if err != nil {
		return crerr.Wrap(err, "unquote url")
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		*u = OptionalURL{}
		return nil
	}
	*u = OptionalURL{value: raw, set: true}
	return nil
}

func (u OptionalURL) Get() (string, bool) {
	return u.value, u.set
}

// String returns the URL or "" when absent.
func (u OptionalURL) String() string {
	return u.value
}

func URL(v string) OptionalURL {
	v = strings.TrimSpace(v)
	return OptionalURL{value: v, set: v != ""}
}

// Number accepts a JSON number or a string carrying one; match statistics
// encode most counters as strings.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	v, ok, err := parseNumber(data)
	if err != nil {
		return err
	}
	if !ok {
		*n = 0
		return nil
	}
	*n = Number(v)
	return nil
}

func (n Number) Float() float64 { return float64(n) }
func (n Number) Int() int       { return int(n) }

// OptionalNumber is Number with absence tracked; null, "" and a missing key
// are all absent.
type OptionalNumber struct {
	value float64
	set   bool
}

func (n *OptionalNumber) UnmarshalJSON(data []byte) error {
	v, ok, err := parseNumber(data)
	if err != nil {
		return err
	}
	*n = OptionalNumber{value: v, set: ok}
	return nil
}

func (n OptionalNumber) Get() (float64, bool) {
	return n.value, n.set
}

// IntPtr returns nil when absent.
func (n OptionalNumber) IntPtr() *int {
	if !n.set {
		return nil
	}
	v := int(n.value)
	return &v
}

func Num(v float64) OptionalNumber {
	return OptionalNumber{value: v, set: true}
}

func parseNumber(data []byte) (float64, bool, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, nullLiteral) {
		return 0, false, nil
	}
	text := string(data)
	if data[0] == '"' {
		unquoted, err := strconv.Unquote(text)
		if err != nil {
			return 0, false, crerr.Wrap(err, "unquote number")
		}
		text = strings.TrimSpace(unquoted)
		if text == "" {
			return 0, false, nil
		}
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, false, crerr.Wrapf(errNotNumber, "got %s", abbreviate(string(data)))
	}
	return v, true, nil
}

func abbreviate(v string) string {
	if len(v) <= 64 {
		return v
	}
	return v[:64] + "..."
}
