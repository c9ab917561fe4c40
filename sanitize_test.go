package inputval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obrusnik/inputval"
)

func TestString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain text passes through",
			input:    "hello world",
			expected: "hello world",
		},
		{
			name:     "strips html tags keeping text",
			input:    "<b>bold</b> text",
			expected: "bold text",
		},
		{
			name:     "strips script block with content",
			input:    "<script>alert('x')</script>hello",
			expected: "hello",
		},
		{
			name:     "strips multi-line script block",
			input:    "<script>\nalert(1)\n</script>ok",
			expected: "ok",
		},
		{
			name:     "strips uppercase script block",
			input:    "<SCRIPT>evil()</SCRIPT>safe",
			expected: "safe",
		},
		{
			name:     "removes null bytes",
			input:    "a\x00b",
			expected: "ab",
		},
		{
			name:     "removes control characters",
			input:    "a\x07b\x1bc",
			expected: "abc",
		},
		{
			name:     "keeps tab newline and carriage return",
			input:    "a\tb\r\nc",
			expected: "a\tb\r\nc",
		},
		{
			name:     "normalizes decomposed unicode",
			input:    "Cafe\u0301",
			expected: "Caf\u00e9",
		},
		{
			name:     "strips tag with attributes",
			input:    `<a href="http://evil.example">click</a>`,
			expected: "click",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := inputval.String(tt.input, false)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}

	t.Run("empty input fails when emptiness disallowed", func(t *testing.T) {
		_, err := inputval.String("", false)
		assert.ErrorIs(t, err, inputval.ErrEmptyString)
	})

	t.Run("empty input succeeds when emptiness allowed", func(t *testing.T) {
		result, err := inputval.String("", true)
		require.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("input reduced to empty fails when emptiness disallowed", func(t *testing.T) {
		_, err := inputval.String("<p></p>", false)
		assert.ErrorIs(t, err, inputval.ErrEmptyString)
	})

	t.Run("input reduced to empty succeeds when emptiness allowed", func(t *testing.T) {
		result, err := inputval.String("<br/>", true)
		require.NoError(t, err)
		assert.Empty(t, result)
	})
}

func TestStripTags(t *testing.T) {
	assert.Equal(t, "hi", inputval.StripTags(`<div class="x">hi</div>`))
	assert.Equal(t, "no tags", inputval.StripTags("no tags"))
}

func TestStripScriptBlocks(t *testing.T) {
	assert.Equal(t, "before after", inputval.StripScriptBlocks("before <script>x=1</script>after"))
	assert.Equal(t, "", inputval.StripScriptBlocks(`<script type="text/javascript">f()</script>`))
}

func TestRemoveNullBytes(t *testing.T) {
	assert.Equal(t, "abc", inputval.RemoveNullBytes("a\x00b\x00c"))
}

func TestRemoveControlChars(t *testing.T) {
	assert.Equal(t, "keep\ttabs\nand lines", inputval.RemoveControlChars("keep\ttabs\nand lines"))
	assert.Equal(t, "bell", inputval.RemoveControlChars("be\x07ll"))
}

func TestCollapseWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", inputval.CollapseWhitespace("  a \t b\n c "))
	assert.Equal(t, "", inputval.CollapseWhitespace("   "))
}

func TestDigits(t *testing.T) {
	assert.Equal(t, "123456", inputval.Digits("(123) abc-456"))
	assert.Equal(t, "", inputval.Digits("no digits"))
}
