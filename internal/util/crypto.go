package util

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// UploadTokenLength gives ~258 bits of entropy with nanoid's 64-char alphabet,
// comfortably above the 128-bit minimum an unguessable single-use link needs.
const UploadTokenLength = 43

func GenerateNChar(n int) (string, error) {
	id, err := gonanoid.New(n)
	if err != nil {
		return "", err
	}
	return id, nil
}

// GenerateUploadToken returns a fresh URL-safe offer-upload token. Uniqueness is
// enforced by the database's unique index at write time; callers retry on the
// astronomically unlikely collision.
func GenerateUploadToken() (string, error) {
	return GenerateNChar(UploadTokenLength)
}
