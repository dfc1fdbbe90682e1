package fhevm

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// normalizeClearValue reduces the heterogeneous public-decrypt result shapes
// observed across relayer versions to a single numeric value.
//
// Precedence: object carrying a "clearValues" collection, then object keyed
// by handle (or a single-entry object), then array, then plain scalar. The
// order mirrors the relayer SDK's own fallbacks and is relayer-version
// dependent; none of the branches may be removed without checking the
// deployed relayer.
func normalizeClearValue(result any, handle string) (uint64, error) {
	switch v := result.(type) {
	case map[string]any:
		if inner, ok := v["clearValues"]; ok {
			return normalizeClearValue(inner, handle)
		}
		if val, ok := v[handle]; ok {
			return scalarToUint64(val)
		}
		if val, ok := v[strings.ToLower(handle)]; ok {
			return scalarToUint64(val)
		}
		if len(v) == 1 {
			for _, val := range v {
				return scalarToUint64(val)
			}
		}
		return 0, decryptionError(fmt.Sprintf("no clear value for handle %s in result", handle), nil)

	case []any:
		if len(v) == 0 {
			return 0, decryptionError("empty decryption result", nil)
		}
		return scalarToUint64(v[0])

	default:
		return scalarToUint64(result)
	}
}

// extractKeyedValue pulls the clear value for handle out of a user-decrypt
// result. User decryption always returns an object keyed by handle, but the
// first (sole) entry is accepted when the exact key is absent.
func extractKeyedValue(result map[string]any, handle string) (uint64, error) {
	if result == nil {
		return 0, decryptionError("empty user decrypt result", nil)
	}
	if val, ok := result[handle]; ok {
		return scalarToUint64(val)
	}
	if val, ok := result[strings.ToLower(handle)]; ok {
		return scalarToUint64(val)
	}
	if len(result) == 1 {
		for _, val := range result {
			return scalarToUint64(val)
		}
	}
	return 0, decryptionError(fmt.Sprintf("no clear value for handle %s in user decrypt result", handle), nil)
}

// scalarToUint64 converts the value representations JSON decoding and mock
// instances produce: numbers, numeric strings (decimal or 0x hex), booleans
// and big integers.
func scalarToUint64(v any) (uint64, error) {
	switch val := v.(type) {
	case uint64:
		return val, nil
	case uint32:
		return uint64(val), nil
	case int:
		if val < 0 {
			return 0, decryptionError("negative clear value", nil)
		}
		return uint64(val), nil
	case int64:
		if val < 0 {
			return 0, decryptionError("negative clear value", nil)
		}
		return uint64(val), nil
	case float64:
		if val < 0 {
			return 0, decryptionError("negative clear value", nil)
		}
		return uint64(val), nil
	case bool:
		if val {
			return 1, nil
		}
		return 0, nil
	case json.Number:
		parsed, err := strconv.ParseUint(val.String(), 10, 64)
		if err != nil {
			return 0, decryptionError("parse numeric clear value", err)
		}
		return parsed, nil
	case string:
		s := strings.TrimSpace(val)
		if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
			parsed, err := strconv.ParseUint(s[2:], 16, 64)
			if err != nil {
				return 0, decryptionError("parse hex clear value", err)
			}
			return parsed, nil
		}
		parsed, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return 0, decryptionError("parse string clear value", err)
		}
		return parsed, nil
	case *big.Int:
		if !val.IsUint64() {
			return 0, decryptionError("clear value does not fit in uint64", nil)
		}
		return val.Uint64(), nil
	default:
		return 0, decryptionError(fmt.Sprintf("unsupported clear value type %T", v), nil)
	}
}
