package validation_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asxpathway/pathway-api/internal/application/validation"
)

func TestErr_NilWhenClean(t *testing.T) {
	var v validation.Error
	v.Required("title", "Appoint auditors")
	v.OneOf("priority", "high", []string{"high", "medium", "low"})
	assert.NoError(t, v.Err())
}

func TestErr_CollectsViolations(t *testing.T) {
	var v validation.Error
	v.Required("title", "  ")
	v.OneOf("priority", "urgent", []string{"high", "medium", "low"})

	err := v.Err()
	require.Error(t, err)

	verr, ok := err.(*validation.Error)
	require.True(t, ok)
	require.Len(t, verr.Violations, 2)
	assert.Equal(t, "title", verr.Violations[0].Field)
	assert.Contains(t, verr.Violations[1].Message, "must be one of")
	assert.Contains(t, err.Error(), "priority")
}

func TestFuture(t *testing.T) {
	var v validation.Error
	v.Future("preferredDate", time.Now().Add(24*time.Hour))
	assert.NoError(t, v.Err())

	v.Future("preferredDate", time.Now().Add(-time.Hour))
	require.Error(t, v.Err())
	assert.Equal(t, "must be in the future", v.Violations[0].Message)
}

func TestRange(t *testing.T) {
	var v validation.Error
	v.Range("marketSentimentScore", 50, 1, 100)
	assert.NoError(t, v.Err())

	v.Range("marketSentimentScore", 0, 1, 100)
	v.Range("marketSentimentScore", 101, 1, 100)
	assert.Len(t, v.Violations, 2)
}
