// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the go-ssz-schema library.

package ssz

import (
	"errors"
	"strconv"
)

func indexPath(i int) string {
	return "[" + strconv.Itoa(i) + "]"
}

func joinPath(parent, child string) string {
	if parent == "" {
		return child
	}
	if len(child) > 0 && child[0] == '[' {
		return parent + child
	}
	return parent + "." + child
}

// pathError prefixes a nested error's path with the given segment, if the
// error carries one (InvalidValueError or BufferOverrunError). Other errors
// are returned unchanged.
func pathError(err error, segment string) error {
	var iv *InvalidValueError
	if errors.As(err, &iv) {
		return &InvalidValueError{Path: joinPath(segment, iv.Path), Reason: iv.Reason, Cause: iv.Cause}
	}
	var bo *BufferOverrunError
	if errors.As(err, &bo) {
		return &BufferOverrunError{Path: joinPath(segment, bo.Path), Reason: bo.Reason}
	}
	return err
}
