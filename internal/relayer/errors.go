// SPDX-License-Identifier: Apache-2.0

package relayer

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

var (
	// ErrRelayerUnavailable indicates the relayer could not be reached or
	// answered with a server-side failure.
	ErrRelayerUnavailable = errors.New("relayer unavailable")
	// ErrRelayerRejected indicates the relayer refused the request as
	// malformed or unauthorized.
	ErrRelayerRejected = errors.New("relayer rejected request")
	// ErrUnknownHandle indicates a decryption was requested for a handle the
	// ciphertext store has never seen.
	ErrUnknownHandle = errors.New("unknown handle")
)

func mapRelayerError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(code)
	}

	if code >= http.StatusInternalServerError {
		return fmt.Errorf("%w: http %d: %s", ErrRelayerUnavailable, code, body)
	}

	return fmt.Errorf("%w: http %d: %s", ErrRelayerRejected, code, body)
}
