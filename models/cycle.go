// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CycleState is the state of one decrypt-then-sanitize cycle.
//
// A cycle moves Idle -> AwaitingDecrypt -> Applied|Failed. Applied cycles
// continue detached through AwaitingSanitize back to Idle.
type CycleState int

const (
	CycleIdle CycleState = iota
	CycleAwaitingDecrypt
	CycleApplied
	CycleFailed
	CycleAwaitingSanitize
)

func (s CycleState) String() string {
	switch s {
	case CycleIdle:
		return "idle"
	case CycleAwaitingDecrypt:
		return "awaiting_decrypt"
	case CycleApplied:
		return "applied"
	case CycleFailed:
		return "failed"
	case CycleAwaitingSanitize:
		return "awaiting_sanitize"
	default:
		return "unknown"
	}
}
