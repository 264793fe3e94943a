package cli

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dkrasnovs/launchboard/internal/views"
)

func TestParseQuery(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want views.Query
	}{
		{
			name: "all keys",
			args: []string{"search=star", "status=failed", "sort=flight", "dir=asc"},
			want: views.Query{Text: "star", Status: "failed", SortField: "flight", SortDirection: views.Asc},
		},
		{
			name: "empty args",
			args: nil,
			want: views.Query{},
		},
		{
			name: "unknown keys and bare words ignored",
			args: []string{"bogus=1", "loose", "search=crs"},
			want: views.Query{Text: "crs"},
		},
		{
			name: "value containing equals sign",
			args: []string{"search=a=b"},
			want: views.Query{Text: "a=b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, parseQuery(tt.args))
		})
	}
}
