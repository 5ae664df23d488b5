package describe

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<!DOCTYPE html>
<html><head><title>Day 1 - Advent of Code 2020</title></head>
<body>
<header><h1>Advent of Code</h1></header>
<main>
<article class="day-desc"><h2>--- Day 1: Report Repair ---</h2>
<p>Before you leave, the Elves in accounting just need you to fix your <em>expense report</em>.</p>
<p>For example, suppose your expense report contained the following:</p>
<pre><code>1721
979
366
</code></pre>
<p>Multiplying them together produces <code>1721 * 299 = <em>514579</em></code>, so the correct answer is <code><em>514579</em></code>.</p>
<ul><li>first</li><li>second</li></ul>
<p>To begin, <a href="/2020/day/1/input" target="_blank">get your puzzle input</a>.</p>
</article>
<p>Answer: <input type="text" name="answer"/></p>
<article class="day-desc"><h2 id="part2">--- Part Two ---</h2><p>Find <em>three</em> entries.</p></article>
</main>
<script>ignored()</script>
</body></html>`

const want = "## --- Day 1: Report Repair ---\n\n" +
	"Before you leave, the Elves in accounting just need you to fix your **expense report**.\n\n" +
	"For example, suppose your expense report contained the following:\n\n" +
	"```\n1721\n979\n366\n```\n\n" +
	"Multiplying them together produces `1721 * 299 = 514579`, so the correct answer is `514579`.\n\n" +
	"- first\n- second\n\n" +
	"To begin, [get your puzzle input](https://adventofcode.com/2020/day/1/input).\n\n" +
	"## --- Part Two ---\n\n" +
	"Find **three** entries.\n"

func TestMarkdown(t *testing.T) {
	got, err := Markdown(page, "https://adventofcode.com/")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestMarkdown_NoArticle(t *testing.T) {
	_, err := Markdown("<html><body><p>Please don't repeatedly request this endpoint before it unlocks!</p></body></html>", "")
	assert.ErrorIs(t, err, ErrNoArticle)
}

func TestRender(t *testing.T) {
	out, err := Render(want, "notty", 80)
	require.NoError(t, err)
	assert.Contains(t, out, "Report Repair")
	assert.Contains(t, out, "1721")
}

func TestCache(t *testing.T) {
	c := Cache{Dir: filepath.Join(t.TempDir(), "pages")}

	_, ok, err := c.Get(1)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Put(1, []byte(page)))
	got, ok, err := c.Get(1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, page, got)
}
