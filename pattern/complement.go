package pattern

import (
	"fmt"

	"github.com/dnamessages/bio/biosimd"
	"github.com/grailbio/base/errors"
	gunsafe "github.com/grailbio/base/unsafe"
)

// ComplementarySequence returns the reverse complement of p, i.e. the
// opposite strand read 5'->3'.  A pairs with T and C with G.  It returns an
// errors.Invalid error if p contains a byte other than A, C, G, T.
//
//   ComplementarySequence("AAAACCCGGT") == "ACCGGGTTTT"
func ComplementarySequence(p string) (string, error) {
	src := gunsafe.StringToBytes(p)
	if i := biosimd.FirstNonACGT8(src); i >= 0 {
		return "", errors.E(errors.Invalid, fmt.Sprintf("invalid base %q at offset %d in %q", p[i], i, p))
	}
	buf := []byte(p)
	biosimd.ReverseComp8Inplace(buf)
	return gunsafe.BytesToString(buf), nil
}
