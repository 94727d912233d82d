package engine

import (
	"fmt"

	"github.com/gencam/genicam/types"
)

// checkWritable enforces §3's access invariant: a write is forbidden when
// either the node's intrinsic access mode or its imposed access mode
// forbids it.
func checkWritable(effective types.AccessMode, name string) error {
	if !effective.Writable() {
		return types.New(types.ErrKindAccessDenied,
			fmt.Sprintf("write denied for %q (effective access %s)", name, effective), nil)
	}
	return nil
}

func checkReadable(effective types.AccessMode, name string) error {
	if !effective.Readable() {
		return types.New(types.ErrKindAccessDenied,
			fmt.Sprintf("read denied for %q (effective access %s)", name, effective), nil)
	}
	return nil
}
