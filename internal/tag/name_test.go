package tag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateName(t *testing.T) {
	t.Parallel()

	valid := []string{"build", "release-2024", "a..b", ".hidden", "名前", "with space"}
	for _, name := range valid {
		assert.NoError(t, ValidateName(name), "expected %q to be accepted", name)
	}

	invalid := []string{"", ".", "..", "a/b", "../escape", `a\b`, `..\escape`, "nul\x00byte"}
	for _, name := range invalid {
		err := ValidateName(name)
		require.Error(t, err, "expected %q to be rejected", name)
		assert.ErrorIs(t, err, ErrArgument)
	}
}

func TestFileName(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "build.tag", FileName("build"))
}

func TestNewRecordCopiesArgs(t *testing.T) {
	t.Parallel()

	args := []string{"--fast"}
	r := NewRecord("c", "p", args)
	args[0] = "--slow"

	assert.Equal(t, []string{"--fast"}, r.Args)
}
