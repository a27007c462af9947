package errors_test

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/Tiliavir/latecalc/pkg/errors"
)

func TestConfigErrorMessage(t *testing.T) {
	err := apperrors.ConfigError{Field: "output_format", Value: "pdf", Message: "must be csv or excel"}
	assert.Equal(t, "configuration error for field 'output_format' with value 'pdf': must be csv or excel", err.Error())

	missing := apperrors.ConfigError{Field: "deadline", Message: "required"}
	assert.Equal(t, "configuration error for field 'deadline': required", missing.Error())
}

func TestIsConfigError(t *testing.T) {
	wrapped := fmt.Errorf("loading config.yml: %w", apperrors.ConfigError{Field: "deadline", Message: "required"})
	assert.True(t, apperrors.IsConfigError(wrapped))
	assert.False(t, apperrors.IsConfigError(apperrors.ErrEmptyResult))
}

func TestWriteErrorUnwraps(t *testing.T) {
	err := apperrors.WriteError{Path: "out.csv", Err: os.ErrPermission}
	require.ErrorIs(t, err, os.ErrPermission)
	assert.Contains(t, err.Error(), "out.csv")

	var we apperrors.WriteError
	require.True(t, errors.As(fmt.Errorf("report: %w", err), &we))
	assert.Equal(t, "out.csv", we.Path)
}
