package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/tally/internal/common"
	"github.com/Veraticus/tally/internal/model"
)

func TestReadCSV(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []model.NewExpense
		wantErr bool
	}{
		{
			name: "standard columns",
			input: "date,category_id,amount,description\n" +
				"2024-07-24,1,50,lunch\n" +
				"2024-07-25,1,150.5,\"dinner, with friends\"\n",
			want: []model.NewExpense{
				{Date: "2024-07-24", CategoryID: 1, Amount: 50, Description: "lunch"},
				{Date: "2024-07-25", CategoryID: 1, Amount: 150.5, Description: "dinner, with friends"},
			},
		},
		{
			name:  "columns in any order without description",
			input: "Amount, Date, Category_ID\n-5,2024-01-02,3\n",
			want: []model.NewExpense{
				{Date: "2024-01-02", CategoryID: 3, Amount: -5},
			},
		},
		{
			name:  "header only",
			input: "date,category_id,amount\n",
			want:  nil,
		},
		{
			name:    "empty file",
			input:   "",
			wantErr: true,
		},
		{
			name:    "missing amount column",
			input:   "date,category_id\n2024-01-01,1\n",
			wantErr: true,
		},
		{
			name:    "malformed date",
			input:   "date,category_id,amount\n2024/01/01,1,5\n",
			wantErr: true,
		},
		{
			name:    "non-numeric amount",
			input:   "date,category_id,amount\n2024-01-01,1,five\n",
			wantErr: true,
		},
		{
			name:    "bad category id",
			input:   "date,category_id,amount\n2024-01-01,x,5\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadCSV(strings.NewReader(tt.input))
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, common.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadCSVReportsLine(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("date,category_id,amount\n2024-01-01,1,5\n2024-13-01,1,5\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
}
