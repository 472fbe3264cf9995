package lint

import (
	"bytes"
	"testing"

	"github.com/broady/enumeration/cmd/enumcheck/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name    string
		report  *report.Report
		wantOut string
		wantErr string
	}{
		{
			name:   "clean",
			report: &report.Report{Package: "example.com/app"},
		},
		{
			name: "duplicates",
			report: &report.Report{
				Package: "example.com/app",
				Duplicates: []report.Duplicate{
					{Owner: "Color", Key: "#FF0000", Positions: []string{"colors.go:8", "colors.go:9", "colors.go:14"}},
					{Owner: "Level", Key: "3", Positions: []string{"level.go:4", "level.go:5"}},
				},
			},
			wantOut: `colors.go:9: Color key "#FF0000" duplicates colors.go:8
colors.go:14: Color key "#FF0000" duplicates colors.go:8
level.go:5: Level key "3" duplicates level.go:4
`,
			wantErr: "duplicate enumeration keys: 2 in example.com/app",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := Check(&out, tt.report)

			assert.Equal(t, tt.wantOut, out.String())
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrDuplicates)
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}
