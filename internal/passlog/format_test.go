package passlog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_parseFormat(t *testing.T) {
	tests := []struct {
		name   string
		format string
		want   []specifier
	}{
		{
			name:   "no specifiers",
			format: "plain message",
			want:   nil,
		},
		{
			name:   "escaped percent only",
			format: "100%% done",
			want:   nil,
		},
		{
			name:   "single string specifier",
			format: "Test: %s",
			want:   []specifier{{verb: 's', length: "", offset: 6}},
		},
		{
			name:   "length modifiers",
			format: "%hhd %hd %d %ld %lld %zd",
			want: []specifier{
				{verb: 'd', length: "hh", offset: 0},
				{verb: 'd', length: "h", offset: 5},
				{verb: 'd', length: "", offset: 9},
				{verb: 'd', length: "l", offset: 12},
				{verb: 'd', length: "ll", offset: 16},
				{verb: 'd', length: "z", offset: 21},
			},
		},
		{
			name:   "flags width and precision are skipped",
			format: "a%d b%05.2f",
			want: []specifier{
				{verb: 'd', length: "", offset: 1},
				{verb: 'f', length: "", offset: 5},
			},
		},
		{
			name:   "unsigned with modifier",
			format: "%llu",
			want:   []specifier{{verb: 'u', length: "ll", offset: 0}},
		},
		{
			name:   "unrecognized verb still counts",
			format: "%q",
			want:   []specifier{{verb: 'q', length: "", offset: 0}},
		},
		{
			name:   "dangling percent at end",
			format: "50%",
			want:   nil,
		},
		{
			name:   "dangling specifier without base char",
			format: "%-5.",
			want:   nil,
		},
		{
			name:   "dangling modifier run",
			format: "%ll",
			want:   nil,
		},
		{
			name:   "specifier before dangling percent",
			format: "%d %",
			want:   []specifier{{verb: 'd', length: "", offset: 0}},
		},
		{
			name:   "escape then specifier",
			format: "%%%d",
			want:   []specifier{{verb: 'd', length: "", offset: 2}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseFormat(tt.format))
		})
	}
}

// Test_parseFormatCountProperty -- число спецификаторов детерминировано содержимым
// литерала и не зависит от контекста вызова.
func Test_parseFormatCountProperty(t *testing.T) {
	formats := map[string]int{
		"":                    0,
		"no percent here":     0,
		"100%% done":          0,
		"Test: %s":            1,
		"Values: %d %f %s":    3,
		"%hhd%hd%d%ld%lld%zd": 6,
		"%d %":                1,
	}
	for format, want := range formats {
		assert.Equal(t, want, len(parseFormat(format)), "format %q", format)
		assert.Equal(t, want, len(parseFormat(format)), "format %q, repeated parse", format)
	}
}

func Test_specifierText(t *testing.T) {
	assert.Equal(t, "%lld", specifier{verb: 'd', length: "ll"}.text())
	assert.Equal(t, "%s", specifier{verb: 's'}.text())
	assert.Equal(t, "%hhu", specifier{verb: 'u', length: "hh"}.text())
}
