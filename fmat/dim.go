// SPDX-License-Identifier: MIT

package fmat

// Dim is a type-level dimension. Implementations are empty struct types whose
// Size method returns a constant; the zero value is used to read it.
//
// Declare extra sizes the same way:
//
//	type D12 struct{}
//
//	func (D12) Size() int { return 12 }
type Dim interface {
	Size() int
}

// Predeclared dimensions.
type (
	D1 struct{}
	D2 struct{}
	D3 struct{}
	D4 struct{}
	D5 struct{}
	D6 struct{}
	D7 struct{}
	D8 struct{}
)

func (D1) Size() int { return 1 }
func (D2) Size() int { return 2 }
func (D3) Size() int { return 3 }
func (D4) Size() int { return 4 }
func (D5) Size() int { return 5 }
func (D6) Size() int { return 6 }
func (D7) Size() int { return 7 }
func (D8) Size() int { return 8 }

// sizeOf reads the size carried by a dimension type.
func sizeOf[D Dim]() int {
	var d D
	return d.Size()
}
