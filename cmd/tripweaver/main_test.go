package main

import (
	"reflect"
	"testing"
)

func TestRewriteDirectDayLookupArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "no args",
			in:   []string{"tripweaver"},
			want: []string{"tripweaver"},
		},
		{
			name: "direct day id first token",
			in:   []string{"tripweaver", "day-1"},
			want: []string{"tripweaver", "activities", "list", "day-1"},
		},
		{
			name: "direct day id after value flag",
			in:   []string{"tripweaver", "--dir", "./tmp-trip", "day-ab12cd34"},
			want: []string{"tripweaver", "--dir", "./tmp-trip", "activities", "list", "day-ab12cd34"},
		},
		{
			name: "direct day id after equals flag",
			in:   []string{"tripweaver", "--format=table", "day-2"},
			want: []string{"tripweaver", "--format=table", "activities", "list", "day-2"},
		},
		{
			name: "direct day id after bool flag",
			in:   []string{"tripweaver", "--pretty", "day-2"},
			want: []string{"tripweaver", "--pretty", "activities", "list", "day-2"},
		},
		{
			name: "direct day id after double dash",
			in:   []string{"tripweaver", "--dir", "./tmp-trip", "--", "day-1"},
			want: []string{"tripweaver", "--dir", "./tmp-trip", "activities", "list", "--", "day-1"},
		},
		{
			name: "bare prefix not rewritten",
			in:   []string{"tripweaver", "day-"},
			want: []string{"tripweaver", "day-"},
		},
		{
			name: "normal subcommand not rewritten",
			in:   []string{"tripweaver", "days", "rm", "day-1"},
			want: []string{"tripweaver", "days", "rm", "day-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := rewriteDirectDayLookupArgs(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("rewriteDirectDayLookupArgs:\n got: %#v\nwant: %#v", got, tt.want)
			}
		})
	}
}
