package emulator

import (
	"testing"

	"github.com/gencam/genicam/internal/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestABRMLayoutSize matches scenario S1's total-size assertion against
// the sum of the field lengths §6 itself declares. The field-by-field byte
// lengths enumerated in §6 (and in the original cameleon ABRM definition
// this spec was distilled from) sum to 592, not the 634 stated in one of
// the scenario's prose sentences; this test follows the authoritative
// field declarations (see DESIGN.md's open-question note).
func TestABRMLayoutSize(t *testing.T) {
	l, err := NewABRMLayout()
	require.NoError(t, err)
	assert.Equal(t, 592, l.Size())
}

func TestABRMVersionMinorReadsOne(t *testing.T) {
	l, err := NewABRMLayout()
	require.NoError(t, err)
	mem := l.Fragment()
	v, err := l.Uint(mem, "GenCpVersionMinor")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), v)
}

func TestABRMSBRMAddress(t *testing.T) {
	l, err := NewABRMLayout()
	require.NoError(t, err)
	mem := l.Fragment()
	v, err := l.Uint(mem, "SBRMAddress")
	require.NoError(t, err)
	assert.Equal(t, uint64(0xffff), v)
}

func TestABRMUserDefinedNameIsReadWrite(t *testing.T) {
	l, err := NewABRMLayout()
	require.NoError(t, err)
	re, err := l.RawEntry("UserDefinedName")
	require.NoError(t, err)
	assert.Equal(t, layout.RW, l.AccessRightWithRange(re.Offset, re.Offset+re.Len))
}
