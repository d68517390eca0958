// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidUsage is the root of every precondition violation.
	ErrInvalidUsage = errors.New("texelui: invalid usage")
	// ErrNilParent is returned when a widget that requires a parent gets none.
	ErrNilParent = fmt.Errorf("%w: nil parent", ErrInvalidUsage)
)
