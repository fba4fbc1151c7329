package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "All", All.String())
	assert.Equal(t, "Active", Active.String())
	assert.Equal(t, "Completed", Completed.String())
	assert.Equal(t, "Status(7)", Status(7).String())
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    Status
		wantErr bool
	}{
		{in: "All", want: All},
		{in: "active", want: Active},
		{in: " COMPLETED ", want: Completed},
		{in: "done", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStatus(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownStatus)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, s := range Statuses() {
		got, err := ParseStatus(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
}

func TestStatus_Next(t *testing.T) {
	assert.Equal(t, Active, All.Next())
	assert.Equal(t, Completed, Active.Next())
	assert.Equal(t, All, Completed.Next())
	assert.Equal(t, All, Status(-3).Next())
}
