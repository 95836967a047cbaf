package web

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInput(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    InputMessage
		wantErr bool
	}{
		{"key down", `{"type":"key_down","key":"left"}`, InputMessage{Type: InputKeyDown, Key: "left"}, false},
		{"key up", `{"type":"key_up","key":"right"}`, InputMessage{Type: InputKeyUp, Key: "right"}, false},
		{"pointer", `{"type":"pointer","x":120.5}`, InputMessage{Type: InputPointer, X: 120.5}, false},
		{"start", `{"type":"start"}`, InputMessage{Type: InputStart}, false},
		{"restart", `{"type":"restart"}`, InputMessage{Type: InputRestart}, false},
		{"bad key", `{"type":"key_down","key":"up"}`, InputMessage{}, true},
		{"unknown type", `{"type":"jump"}`, InputMessage{}, true},
		{"not json", `left`, InputMessage{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseInput([]byte(tc.payload))
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
