// SPDX-License-Identifier: MIT

package occlusion

import "errors"

var (
	// ErrChanceLength indicates a per-joint chance list whose length does
	// not match the record's joint count.
	ErrChanceLength = errors.New("occlusion: chance list length must match joint count")

	// ErrJointOutOfRange indicates an occlusion joint index outside [0, V).
	ErrJointOutOfRange = errors.New("occlusion: joint index out of range")
)
