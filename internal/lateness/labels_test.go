package lateness_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tiliavir/latecalc/internal/lateness"
	"github.com/Tiliavir/latecalc/internal/model"
)

func TestLabels(t *testing.T) {
	l := lateness.DefaultLabels
	assert.Equal(t, "Over-Full", l.Label(model.StatusOverFull))
	assert.Equal(t, "Full", l.Label(model.StatusFull))
	assert.Equal(t, "Available", l.Label(model.StatusAvailable))

	s, ok := lateness.LegacyLabels.Lookup("LATE")
	require.True(t, ok)
	assert.Equal(t, model.StatusOverFull, s)

	_, ok = l.Lookup("LATE")
	assert.False(t, ok)
}

func TestLabelsValidate(t *testing.T) {
	require.NoError(t, lateness.DefaultLabels.Validate())
	require.NoError(t, lateness.LegacyLabels.Validate())

	dup := lateness.Labels{OverFull: "Late", Full: "Late", Available: "OK"}
	assert.Error(t, dup.Validate())

	assert.Error(t, lateness.Labels{OverFull: "Late"}.Validate())
	assert.NoError(t, lateness.Labels{OverFull: "Late"}.WithDefaults().Validate())
}
