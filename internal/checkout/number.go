package checkout

import (
	"crypto/rand"
	"io"
)

const (
	// OrderNumberPrefix starts every order number.
	OrderNumberPrefix = "ATL-"
	orderNumberLength = 9
	orderAlphabet     = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// Bytes at or above this bound are discarded so every symbol is equally likely.
	unbiasedLimit = 256 - 256%len(orderAlphabet)
)

// NewOrderNumber returns "ATL-" followed by nine random upper-case alphanumerics.
func NewOrderNumber() string {
	return newOrderNumber(rand.Reader)
}

func newOrderNumber(random io.Reader) string {
	buf := make([]byte, 0, len(OrderNumberPrefix)+orderNumberLength)
	buf = append(buf, OrderNumberPrefix...)

	var chunk [16]byte
	for len(buf) < cap(buf) {
		if _, err := io.ReadFull(random, chunk[:]); err != nil {
			// crypto/rand does not fail on supported platforms.
			panic("checkout: reading random bytes: " + err.Error())
		}
		for _, b := range chunk {
			if int(b) >= unbiasedLimit {
				continue
			}
			buf = append(buf, orderAlphabet[int(b)%len(orderAlphabet)])
			if len(buf) == cap(buf) {
				break
			}
		}
	}
	return string(buf)
}

// ValidOrderNumber reports whether s has the shape produced by NewOrderNumber.
func ValidOrderNumber(s string) bool {
	if len(s) != len(OrderNumberPrefix)+orderNumberLength || s[:len(OrderNumberPrefix)] != OrderNumberPrefix {
		return false
	}
	for _, c := range s[len(OrderNumberPrefix):] {
		if !(c >= '0' && c <= '9' || c >= 'A' && c <= 'Z') {
			return false
		}
	}
	return true
}
