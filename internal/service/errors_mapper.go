// SPDX-License-Identifier: Apache-2.0

package service

import (
	"errors"

	"github.com/ulmaulana/FHETalk-sub001/internal/contract"
	"github.com/ulmaulana/FHETalk-sub001/internal/fhevm"
	"github.com/ulmaulana/FHETalk-sub001/internal/relayer"
)

// mapTransportError translates transport-level sentinels into service
// business errors. Unrecognized errors pass through unchanged.
func mapTransportError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, fhevm.ErrNotInitialized):
		return ErrClientNotReady

	case errors.Is(err, relayer.ErrRelayerUnavailable):
		return ErrRelayerUnreachable

	case errors.Is(err, relayer.ErrRelayerRejected):
		return ErrRequestRejected

	case errors.Is(err, contract.ErrInvalidAddress):
		return ErrInvalidRecipient
	}

	return err
}
