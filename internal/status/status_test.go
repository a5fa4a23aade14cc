package status_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kessho-pm/kessho/internal/status"
)

func TestCodeSuccessTable(t *testing.T) {
	assert.EqualValues(t, 0, status.Code(status.NotInstalled, nil))
	assert.EqualValues(t, 1, status.Code(status.UpToDate, nil))
	assert.EqualValues(t, 2, status.Code(status.RequiresUpdate, nil))
}

func TestCodeErrorTable(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int8
	}{
		{"no package", status.NewPayloadStatusError(status.NewPayloadError(status.NoPackage)), -1},
		{"no concrete package", status.NewPayloadStatusError(status.NewPayloadError(status.NoConcretePackage)), -1},
		{"no payload found", status.NewPayloadStatusError(status.NewPayloadError(status.NoPayloadFound)), -2},
		{"wrong payload type", status.ErrWrongPayloadType, -3},
		{"parsing version", status.ErrParsingVersion, -4},
		{"criteria unmet", status.NewPayloadStatusError(status.NewCriteriaUnmetError("needs glibc")), -5},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, status.Code(status.NotInstalled, tt.err))
		})
	}
}

// TestCodeInjective verifies P6: the integer projection is injective over
// the table in spec §4.3 — no two distinct (status, error) outcomes share a code.
func TestCodeInjective(t *testing.T) {
	outcomes := []struct {
		s   status.Status
		err error
	}{
		{status.NotInstalled, nil},
		{status.UpToDate, nil},
		{status.RequiresUpdate, nil},
		{0, status.NewPayloadStatusError(status.NewPayloadError(status.NoPackage))},
		{0, status.NewPayloadStatusError(status.NewPayloadError(status.NoPayloadFound))},
		{0, status.ErrWrongPayloadType},
		{0, status.ErrParsingVersion},
		{0, status.NewPayloadStatusError(status.NewCriteriaUnmetError("x"))},
	}

	seen := make(map[int8]bool)
	for _, o := range outcomes {
		c := status.Code(o.s, o.err)
		assert.False(t, seen[c], "code %d produced by more than one outcome", c)
		seen[c] = true
	}
}

func FuzzStatusCode(f *testing.F) {
	f.Add(0, 0)
	f.Add(1, 4)
	f.Fuzz(func(t *testing.T, statusN int, errKind int) {
		var err error
		switch errKind % 6 {
		case 0:
			err = nil
		case 1:
			err = status.NewPayloadStatusError(status.NewPayloadError(status.NoPackage))
		case 2:
			err = status.NewPayloadStatusError(status.NewPayloadError(status.NoPayloadFound))
		case 3:
			err = status.ErrWrongPayloadType
		case 4:
			err = status.ErrParsingVersion
		case 5:
			err = status.NewPayloadStatusError(status.NewCriteriaUnmetError("r"))
		}
		c := status.Code(status.Status(statusN), err)
		if err == nil {
			assert.GreaterOrEqual(t, c, int8(0))
		} else {
			assert.Less(t, c, int8(0))
		}
	})
}
