// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package videoplane

import "time"

// now is replaceable in tests.
var now = time.Now
