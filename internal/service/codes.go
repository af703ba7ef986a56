package service

import "math/rand"

const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// newCode returns prefix followed by n characters that avoid look-alikes
// (no 0/O, 1/I).
func newCode(prefix string, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = codeAlphabet[rand.Intn(len(codeAlphabet))]
	}
	return prefix + string(b)
}
