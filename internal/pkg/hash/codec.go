package hash

import "encoding/base64"

// EncodeText returns the padded standard base64 form of b.
func EncodeText(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// DecodeText reverses EncodeText. Malformed input is returned as an error for
// the caller to classify.
func DecodeText(s string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(s)
}
