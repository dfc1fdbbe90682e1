// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"errors"
	"strings"

	"github.com/ulmaulana/FHETalk-sub001/internal/service"
)

func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrClientNotReady):
		return "FHE client is still initializing, try again in a moment"
	case errors.Is(err, service.ErrRelayerUnreachable):
		return "Relayer is unreachable"
	case errors.Is(err, service.ErrInvalidRecipient):
		return "That is not a valid address"
	case errors.Is(err, service.ErrValueTooLarge):
		return "Value must fit in 32 bits"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network or the node is unreachable"
	}

	return err.Error()
}
