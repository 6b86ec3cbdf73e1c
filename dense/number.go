// SPDX-License-Identifier: MIT

package dense

// Number is the set of element types accepted by literal constructors.
// Every value is converted to float64 on the way in.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}
