// Copyright 2026 The dimvar Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package smooth

import "errors"

// Common errors.
var (
	ErrMissingDim     = errors.New("no dimension given")
	ErrWindowTooSmall = errors.New("window too small")
)
