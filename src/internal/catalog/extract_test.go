// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package catalog

import (
	"io"
	"testing"

	"github.com/sailflow/planks-mcp/src/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExtractor() *Extractor {
	return NewExtractor(logger.NewMCPLogger(io.Discard, true))
}

func variantsJSON(t *testing.T, v *Variants) string {
	t.Helper()
	if v == nil {
		return ""
	}
	out, err := EncodeJSON(v)
	require.NoError(t, err)
	return out
}

func TestExtractProps(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   []string
	}{
		{
			name: "optional marker stripped",
			source: `export interface ButtonProps {
  name: string;
  disabled?: boolean;
}`,
			want: []string{"name", "disabled"},
		},
		{
			name: "extends clause and comments",
			source: `export interface CardProps extends React.HTMLAttributes<HTMLDivElement> {
  // heading text
  title: string;
  /** rendered under the title */
  * subtitle
  onClose?: (reason: string) => void;
}`,
			want: []string{"title", "onClose"},
		},
		{
			name: "object type alias",
			source: `export type FieldProps = {
  label: string;
  hint?: string;
};`,
			want: []string{"label", "hint"},
		},
		{
			name: "first declaration only",
			source: `export interface AProps {
  a: string;
}
export interface BProps {
  b: string;
}`,
			want: []string{"a"},
		},
		{
			name: "empty body",
			source: `export interface EmptyProps {}
`,
			want: []string{},
		},
		{
			name: "not exported",
			source: `interface HiddenProps {
  secret: string;
}`,
			want: nil,
		},
		{
			name:   "type alias without body",
			source: "export type AliasProps = React.HTMLAttributes<HTMLDivElement>;\nconst x = { a: 1 };",
			want:   nil,
		},
		{
			name: "duplicate names are kept",
			source: `export interface DupProps {
  value: string;
  value?: number;
}`,
			want: []string{"value", "value"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			md := newTestExtractor().Extract(tt.source)
			assert.Equal(t, tt.want, md.Props)
		})
	}
}

func TestExtractVariants(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{
			name:   "inline group",
			source: `const v = cva('', { variants: { variant: { default: "...", outline: "..." } } });`,
			want:   "{\n  \"variant\": [\n    \"default\",\n    \"outline\"\n  ]\n}",
		},
		{
			name: "multi-line groups keep declaration order",
			source: `cva('base', {
  variants: {
    size: {
      sm: 'h-9 px-3',
      lg: 'h-11 px-8',
    },
    variant: {
      default: 'bg-primary hover:bg-primary/90',
      ghost: 'hover:bg-accent',
    },
  },
  defaultVariants: { size: 'sm' },
});`,
			want: "{\n  \"size\": [\n    \"sm\",\n    \"lg\"\n  ],\n  \"variant\": [\n    \"default\",\n    \"ghost\"\n  ]\n}",
		},
		{
			name: "colons inside values",
			source: `variants: {
  tone: {
    info: 'text-sky-900 [&>svg]:text-sky-500 dark:bg-sky-950',
  },
}`,
			want: "{\n  \"tone\": [\n    \"info\"\n  ]\n}",
		},
		{
			name:   "empty group is recorded",
			source: `variants: { state: {} }`,
			want:   "{\n  \"state\": []\n}",
		},
		{
			name:   "block without groups",
			source: `variants: { }`,
			want:   "",
		},
		{
			name:   "no block",
			source: `const sizeClasses = { sm: 'h-8', md: 'h-10' };`,
			want:   "",
		},
		{
			name:   "defaultVariants alone is ignored",
			source: `defaultVariants: { size: { sm: 1 } }`,
			want:   "",
		},
		{
			name:   "quoted keys",
			source: `variants: { size: { "2xl": 'h-14', 'xs': 'h-6' } }`,
			want:   "{\n  \"size\": [\n    \"2xl\",\n    \"xs\"\n  ]\n}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			md := newTestExtractor().Extract(tt.source)
			assert.Equal(t, tt.want, variantsJSON(t, md.Variants))
		})
	}
}

func TestExtractDescription(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{
			name:   "single-line doc comment",
			source: "/**\n * Primary action trigger.\n */\nexport function Button() {}",
			want:   "Primary action trigger.",
		},
		{
			name:   "multi-line doc comment is ignored",
			source: "/**\n * First line.\n * Second line.\n */",
			want:   "",
		},
		{
			name:   "line comment is ignored",
			source: "// Primary action trigger.\nexport function Button() {}",
			want:   "",
		},
		{
			name:   "no comment",
			source: "export function Button() {}",
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, newTestExtractor().Extract(tt.source).Description)
		})
	}
}

func TestExtractEmptySource(t *testing.T) {
	md := newTestExtractor().Extract("")
	assert.Empty(t, md.Description)
	assert.Nil(t, md.Props)
	assert.Nil(t, md.Variants)
}

func TestSplitEntries(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "commas", in: "a: 1, b: 2", want: []string{"a: 1", " b: 2"}},
		{name: "quoted comma", in: "a: 'x, y', b: 2", want: []string{"a: 'x, y'", " b: 2"}},
		{name: "newlines", in: "a: 1\nb: 2", want: []string{"a: 1", "b: 2"}},
		{name: "unterminated quote ends at newline", in: "a: 'x\nb: 2, c: 3", want: []string{"a: 'x", "b: 2", " c: 3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitEntries(tt.in))
		})
	}
}
