// Package util holds small helpers shared by the delivery and usecase layers.
package util

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// TokenIDSeparator joins token ids in an encoded id list.
const TokenIDSeparator = "-"

// ErrMalformedTokenIDs is returned by DecodeTokenIDs for input that is not a list of integers.
var ErrMalformedTokenIDs = errors.New("malformed token id list")

// EncodeTokenIDs joins token ids into the form accepted by DecodeTokenIDs, e.g. "5-9999-7".
func EncodeTokenIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}

	return strings.Join(parts, TokenIDSeparator)
}

// DecodeTokenIDs splits an encoded id list. Order and duplicates are preserved.
func DecodeTokenIDs(encoded string) ([]int64, error) {
	if encoded == "" {
		return nil, errors.Wrap(ErrMalformedTokenIDs, "empty list")
	}

	parts := strings.Split(encoded, TokenIDSeparator)
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		if part == "" || strings.TrimLeft(part, "0123456789") != "" {
			return nil, errors.Wrapf(ErrMalformedTokenIDs, "invalid token id %q", part)
		}

		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedTokenIDs, "invalid token id %q", part)
		}
		ids = append(ids, id)
	}

	return ids, nil
}
