// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoServersAreCreated means the relay handlers carried no router.
	errNoServersAreCreated = errors.New("no relay listener is configured")
	errNoServersToRun      = errors.New("relay listener was not created")
)
