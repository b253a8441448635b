package veritext_test

import (
	"encoding/json"
	"testing"

	"github.com/mstolarz/veritext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func textNode(s string) *veritext.DesignNode {
	return &veritext.DesignNode{Type: veritext.NodeTypeText, Characters: s}
}

func frame(children ...*veritext.DesignNode) *veritext.DesignNode {
	return &veritext.DesignNode{Type: veritext.NodeTypeFrame, Children: children}
}

func TestVerify(t *testing.T) {
	t.Parallel()

	t.Run("matches exact text with collapsed whitespace", func(t *testing.T) {
		t.Parallel()

		result := veritext.Verify(frame(textNode("Hello World")), `<div>Hello   World</div>`)

		require.Len(t, result.Matches, 1)
		assert.True(t, result.Matches[0].Matched)
		assert.Equal(t, "Hello   World", result.Matches[0].HTMLText)
		assert.Equal(t, 1, result.TotalTexts)
		assert.Equal(t, 1, result.MatchedCount)
		assert.Equal(t, 1.0, result.Accuracy)
		assert.True(t, result.Passed)
	})

	t.Run("matches by containment inside a longer fragment", func(t *testing.T) {
		t.Parallel()

		result := veritext.Verify(frame(textNode("Submit")), `<button>Please Submit Now</button>`)

		require.Len(t, result.Matches, 1)
		assert.True(t, result.Matches[0].Matched)
		assert.Equal(t, "Please Submit Now", result.Matches[0].HTMLText)
		assert.True(t, result.Passed)
	})

	t.Run("single character text does not match by containment", func(t *testing.T) {
		t.Parallel()

		result := veritext.Verify(frame(textNode("X")), `<span>XYZ</span>`)

		require.Len(t, result.Matches, 1)
		assert.False(t, result.Matches[0].Matched)
		assert.False(t, result.Passed)
	})

	t.Run("empty tree passes vacuously", func(t *testing.T) {
		t.Parallel()

		result := veritext.Verify(frame(), `<div>whatever</div>`)

		assert.Equal(t, 0, result.TotalTexts)
		assert.Equal(t, 0, result.MatchedCount)
		assert.Equal(t, 1.0, result.Accuracy)
		assert.True(t, result.Passed)
		assert.Empty(t, result.Matches)
	})

	t.Run("no matches yields zero accuracy and fails", func(t *testing.T) {
		t.Parallel()

		result := veritext.Verify(frame(textNode("A"), textNode("B")), `<div>nothing relevant</div>`)

		assert.Equal(t, 2, result.TotalTexts)
		assert.Equal(t, 0, result.MatchedCount)
		assert.Equal(t, 0.0, result.Accuracy)
		assert.False(t, result.Passed)
		require.Len(t, result.Matches, 2)
		for _, m := range result.Matches {
			assert.False(t, m.Matched)
			assert.Empty(t, m.HTMLText)
		}
	})

	t.Run("script contents do not shadow real text", func(t *testing.T) {
		t.Parallel()

		result := veritext.Verify(
			frame(textNode("Hello")),
			`<script>var Hello="x"</script><p>Hello</p>`,
		)

		require.Len(t, result.Matches, 1)
		assert.True(t, result.Matches[0].Matched)
		assert.Equal(t, "Hello", result.Matches[0].HTMLText)
	})

	t.Run("partial matches fail the strict pass flag", func(t *testing.T) {
		t.Parallel()

		result := veritext.Verify(
			frame(textNode("Present"), textNode("Absent")),
			`<p>Present</p>`,
		)

		assert.Equal(t, 2, result.TotalTexts)
		assert.Equal(t, 1, result.MatchedCount)
		assert.Equal(t, 0.5, result.Accuracy)
		assert.False(t, result.Passed)
	})

	t.Run("matches preserve tree discovery order", func(t *testing.T) {
		t.Parallel()

		result := veritext.Verify(
			frame(textNode("first"), frame(textNode("second")), textNode("third")),
			`<p>third</p><p>second</p><p>first</p>`,
		)

		require.Len(t, result.Matches, 3)
		assert.Equal(t, "first", result.Matches[0].DSLText)
		assert.Equal(t, "second", result.Matches[1].DSLText)
		assert.Equal(t, "third", result.Matches[2].DSLText)
		assert.True(t, result.Passed)
	})

	t.Run("nil tree and empty html pass vacuously", func(t *testing.T) {
		t.Parallel()

		result := veritext.Verify(nil, "")

		assert.True(t, result.Passed)
		assert.Equal(t, 1.0, result.Accuracy)
	})
}

func TestVerifier_CustomExtractor(t *testing.T) {
	t.Parallel()

	v := &veritext.Verifier{Extractor: staticExtractor{"Hello World"}}

	result := v.Verify(frame(textNode("Hello World")), "ignored input")

	require.Len(t, result.Matches, 1)
	assert.True(t, result.Matches[0].Matched)
}

type staticExtractor []string

func (e staticExtractor) Fragments(string) []string { return e }

func TestVerificationResult_JSON(t *testing.T) {
	t.Parallel()

	t.Run("serializes the stable field set", func(t *testing.T) {
		t.Parallel()

		result := veritext.Verify(frame(textNode("Hello")), `<p>Hello</p>`)

		data, err := json.Marshal(result)
		require.NoError(t, err)

		assert.JSONEq(t, `{
			"total_texts": 1,
			"matched_count": 1,
			"accuracy": 1.0,
			"passed": true,
			"matches": [
				{"dsl_text": "Hello", "html_text": "Hello", "matched": true}
			]
		}`, string(data))
	})

	t.Run("html_text is absent when unmatched", func(t *testing.T) {
		t.Parallel()

		result := veritext.Verify(frame(textNode("Missing")), `<p>other</p>`)

		data, err := json.Marshal(result)
		require.NoError(t, err)

		assert.NotContains(t, string(data), "html_text")
		assert.Contains(t, string(data), `"matched":false`)
	})

	t.Run("empty matches serialize as an empty array", func(t *testing.T) {
		t.Parallel()

		result := veritext.Verify(nil, "")

		data, err := json.Marshal(result)
		require.NoError(t, err)

		assert.Contains(t, string(data), `"matches":[]`)
	})
}
