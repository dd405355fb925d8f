package rules

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gramlint/pkg/config"
	"github.com/yaklabco/gramlint/pkg/lint"
	"github.com/yaklabco/gramlint/pkg/prose"
)

func TestRepeatedWordRule(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    []string
		options map[string]any
	}{
		{name: "simple repeat", input: "the the cat", want: []string{"the the"}},
		{name: "not adjacent", input: "the cat the", want: []string{}},
		{name: "run of three is one issue", input: "It is is is done.", want: []string{"is is is"}},
		{name: "case insensitive", input: "The the end.", want: []string{"The the"}},
		{name: "two runs", input: "a a b c c.", want: []string{"a a", "c c"}},
		{name: "across line break", input: "go to\nto bed.", want: []string{"to\nto"}},
		{name: "punctuation between", input: "Yes, yes, it works.", want: []string{}},
		{name: "across sentences", input: "I saw it. It was red.", want: []string{}},
		{name: "contractions", input: "Don't don't do that.", want: []string{"Don't don't"}},
		{name: "unicode folding", input: "ÉTÉ été.", want: []string{"ÉTÉ été"}},
		{
			name:    "ignored word",
			input:   "He had had enough. It is is wrong.",
			want:    []string{"is is"},
			options: map[string]any{"ignore": []any{"HAD"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			issues := applyRule(t, NewRepeatedWordRule(), tt.input, tt.options)
			assert.Equal(t, tt.want, spanTexts(tt.input, issues))
		})
	}
}

func TestRepeatedWordRule_Message(t *testing.T) {
	t.Parallel()

	issues := applyRule(t, NewRepeatedWordRule(), "This is is a mistake.", nil)
	require.Len(t, issues, 1)
	assert.Equal(t, "Repeated word 'is'.", issues[0].Message)
}

func TestCapitalizationRule(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    []string
		options map[string]any
	}{
		{name: "lowercase start", input: "hello world.", want: []string{"hello"}},
		{name: "uppercase start", input: "Hello world.", want: []string{}},
		{name: "second sentence", input: "Fine. then not.", want: []string{"then"}},
		{name: "digit start exempt", input: "42 is the answer.", want: []string{}},
		{name: "quote start exempt", input: "\"hello,\" she said.", want: []string{}},
		{name: "symbol start exempt", input: "$5 is cheap.", want: []string{}},
		{name: "unicode lowercase", input: "élan is a word.", want: []string{"élan"}},
		{name: "default exception", input: "iPhone sales rose.", want: []string{}},
		{
			name:    "custom exceptions replace defaults",
			input:   "iPhone sales rose. gramlint works.",
			want:    []string{"iPhone"},
			options: map[string]any{"exceptions": []any{"gramlint"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			issues := applyRule(t, NewCapitalizationRule(), tt.input, tt.options)
			assert.Equal(t, tt.want, spanTexts(tt.input, issues))
		})
	}
}

func TestCapitalizationRule_Offset(t *testing.T) {
	t.Parallel()

	issues := applyRule(t, NewCapitalizationRule(), "hello world.", nil)
	require.Len(t, issues, 1)
	assert.Equal(t, 0, issues[0].StartOffset)
	assert.Equal(t, "Sentence should start with a capital letter.", issues[0].Message)
}

func TestTerminalPunctuationRule(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "missing", input: "Hello world", want: []string{"Hello world"}},
		{name: "present", input: "Hello world.", want: []string{}},
		{name: "question", input: "Is it?", want: []string{}},
		{name: "closing quote", input: `He said "stop."`, want: []string{}},
		{name: "closing paren", input: "(It works.)", want: []string{}},
		{name: "trailing space", input: "Hello world   ", want: []string{"Hello world"}},
		{name: "only last sentence", input: "One. Two! three", want: []string{"three"}},
		{name: "blank line is not a stop", input: "Title\n\nBody text.", want: []string{}},
		{name: "ends with colon", input: "Items:", want: []string{"Items:"}},
		{name: "mark followed by other symbol", input: "Hello world.*", want: []string{"Hello world.*"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			issues := applyRule(t, NewTerminalPunctuationRule(), tt.input, nil)
			assert.Equal(t, tt.want, spanTexts(tt.input, issues))
		})
	}
}

func TestDoubleSpaceRule(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  [][2]int
	}{
		{name: "two spaces", input: "a  b", want: [][2]int{{1, 3}}},
		{name: "single space", input: "a b", want: [][2]int{}},
		{name: "maximal run", input: "a     b", want: [][2]int{{1, 6}}},
		{name: "between sentences", input: "One.  Two.", want: [][2]int{{4, 6}}},
		{name: "several runs", input: "a  b c   d", want: [][2]int{{1, 3}, {6, 9}}},
		{name: "tabs are not spaces", input: "a\t\tb", want: [][2]int{}},
		{name: "trailing", input: "end.  ", want: [][2]int{{4, 6}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			issues := applyRule(t, NewDoubleSpaceRule(), tt.input, nil)
			got := make([][2]int, 0, len(issues))
			for _, issue := range issues {
				got = append(got, [2]int{issue.StartOffset, issue.EndOffset})
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRunOnSentenceRule(t *testing.T) {
	t.Parallel()

	words := func(n int) string {
		return strings.TrimSpace(strings.Repeat("word ", n))
	}

	tests := []struct {
		name    string
		input   string
		want    int
		options map[string]any
	}{
		{name: "short sentence", input: "I came and I saw.", want: 0},
		{name: "long without conjunction", input: words(40) + ".", want: 0},
		{name: "long with late conjunction", input: words(30) + " and more.", want: 1},
		{name: "conjunction only in first half", input: "And " + words(40) + ".", want: 0},
		{name: "case insensitive conjunction", input: words(30) + " BECAUSE it.", want: 1},
		{name: "exactly at threshold", input: words(29) + " and.", want: 0},
		{
			name:    "lower threshold",
			input:   "We went out and it rained.",
			want:    1,
			options: map[string]any{"max_words": 5},
		},
		{
			name:    "custom conjunctions",
			input:   words(30) + " and yet more.",
			want:    1,
			options: map[string]any{"conjunctions": []any{"yet"}},
		},
		{
			name:    "threshold from string",
			input:   "We went out and it rained.",
			want:    1,
			options: map[string]any{"max_words": "5"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			issues := applyRule(t, NewRunOnSentenceRule(), tt.input, tt.options)
			require.Len(t, issues, tt.want)
			for _, issue := range issues {
				assert.Equal(t, 0, issue.StartOffset)
				assert.Equal(t, len(tt.input), issue.EndOffset)
			}
		})
	}
}

func TestRunOnSentenceRule_LongSentenceFromEarlierRelease(t *testing.T) {
	t.Parallel()

	text := "This sentence contains many clauses and keeps going without pause " +
		"which makes it difficult to read and likely signals a run on sentence " +
		"because it lacks proper punctuation and continues to accumulate words " +
		"beyond what a reader can comfortably parse without help."

	issues := applyRule(t, NewRunOnSentenceRule(), text, nil)
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0].Message, "may be a run-on")
}

func TestRules_DegenerateInputs(t *testing.T) {
	t.Parallel()

	registry := lint.NewRegistry()
	RegisterAll(registry)

	for _, rule := range registry.Rules() {
		for _, text := range degenerateInputs() {
			issues := applyRule(t, rule, text, nil)
			assert.Empty(t, issues, "%s on %q", rule.ID(), text)
		}
	}
}

func TestRules_NilDocument(t *testing.T) {
	t.Parallel()

	registry := lint.NewRegistry()
	RegisterAll(registry)

	for _, rule := range registry.Rules() {
		issues, err := rule.Apply(lint.NewRuleContext(context.Background(), nil, nil, nil))
		require.NoError(t, err, rule.ID())
		assert.Empty(t, issues, rule.ID())
	}
}

func TestRules_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	doc := prose.Segment("the the cat.  hello")
	rule := NewRepeatedWordRule()
	_, err := rule.Apply(lint.NewRuleContext(ctx, doc, config.NewConfig(), nil))
	require.ErrorIs(t, err, context.Canceled)
}
