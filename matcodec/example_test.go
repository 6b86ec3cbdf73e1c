package matcodec_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/densemat/fmat"
	"github.com/katalvlaran/densemat/matcodec"
)

// ExampleDecodeFixed reads a payload back into a typed matrix and rejects a
// payload of the wrong shape.
func ExampleDecodeFixed() {
	c := matcodec.New(matcodec.WithFormat(matcodec.FormatCBOR))
	m := fmat.MustFromRows[fmat.D2, fmat.D2]([][]int{{1, 2}, {3, 4}})

	b, _ := matcodec.EncodeFixed(c, m)
	back, err := matcodec.DecodeFixed[fmat.D2, fmat.D2](c, b)
	fmt.Print(back)
	fmt.Println(err)

	_, err = matcodec.DecodeFixed[fmat.D1, fmat.D4](c, b)
	fmt.Println(errors.Is(err, matcodec.ErrShapeMismatch))
	// Output:
	// [1, 2]
	// [3, 4]
	// <nil>
	// true
}
