package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShouldShow(t *testing.T) {
	parent := uint(1)
	field := StallEnquiryField{
		ID:                2,
		ShowConditionalOn: &parent,
		ConditionalValue:  "yes",
	}

	assert.True(t, field.ShouldShow(map[uint]string{1: "yes"}))
	assert.False(t, field.ShouldShow(map[uint]string{1: "no"}))
	assert.False(t, field.ShouldShow(map[uint]string{}))
}

func TestShouldShowUnconditional(t *testing.T) {
	field := StallEnquiryField{ID: 1}

	assert.True(t, field.ShouldShow(nil))
}
