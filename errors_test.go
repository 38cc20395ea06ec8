package randoqa_test

import (
	"errors"
	"testing"

	"github.com/mbonnet/randoqa"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := randoqa.Errorf(randoqa.ENOTFOUND, "page %q not found", "/2024")

	assert.Equal(t, randoqa.ENOTFOUND, randoqa.ErrorCode(err))
	assert.Equal(t, "page \"/2024\" not found", randoqa.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, randoqa.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, randoqa.EINTERNAL, randoqa.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Internal error.", randoqa.ErrorMessage(errors.New("boom")))
}
