package tui

import (
	"github.com/MKhiriev/go-clip-keeper/models"
)

// cycleDoneMsg is sent when a trigger cycle reached Applied or Failed.
type cycleDoneMsg struct {
	index  int
	result models.DecryptResult
}

type statusMsg struct {
	report models.StatusReport
}

type copiedMsg struct {
	payload models.EncryptedPayload
	err     error
}

// clearNoticeMsg hides the notification with the matching sequence number.
type clearNoticeMsg struct {
	seq int
}
