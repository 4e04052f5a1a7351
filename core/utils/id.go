package utils

import (
	"github.com/MFrackowiak/mf-simple-calendar/core/constants"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// GenerateRequestID returns a short id used to correlate log lines of one request.
func GenerateRequestID() string {
	id, err := gonanoid.Generate("0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz",
		constants.RequestIDLength)
	if err != nil {
		return ""
	}
	return id
}
