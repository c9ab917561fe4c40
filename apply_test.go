package inputval_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/obrusnik/inputval"
)

func TestApply(t *testing.T) {
	result := inputval.Apply("  Mixed CASE  ",
		strings.TrimSpace,
		strings.ToLower,
	)
	assert.Equal(t, "mixed case", result)

	assert.Equal(t, "unchanged", inputval.Apply("unchanged"))
}

func TestCompose(t *testing.T) {
	clean := inputval.Compose(
		inputval.StripTags,
		inputval.CollapseWhitespace,
	)

	assert.Equal(t, "hello world", clean("<b>hello</b>   world"))
	assert.Equal(t, "twice", clean(clean("twice")))
}
