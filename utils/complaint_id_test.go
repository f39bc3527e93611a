package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeComplaintID(t *testing.T) {
	tests := []struct {
		rowID uint
		want  string
	}{
		{0, "TF00000"},
		{1, "TF00001"},
		{7, "TF00007"},
		{99999, "TF99999"},
		{123456, "TF123456"},
		{1234567890, "TF1234567890"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, EncodeComplaintID(tt.rowID))
	}
}

func TestDecodeComplaintID(t *testing.T) {
	t.Run("prefixed code", func(t *testing.T) {
		id, err := DecodeComplaintID("TF00042")
		require.NoError(t, err)
		assert.Equal(t, uint(42), id)
	})

	t.Run("bare number", func(t *testing.T) {
		id, err := DecodeComplaintID("42")
		require.NoError(t, err)
		assert.Equal(t, uint(42), id)
	})

	t.Run("wide code", func(t *testing.T) {
		id, err := DecodeComplaintID("TF123456")
		require.NoError(t, err)
		assert.Equal(t, uint(123456), id)
	})

	for _, input := range []string{"TFxx", "TF", "", "tf00042", "TF-1", "-1", "+5", "TF 42", "12abc", "TFTF1", "99999999999999999999999"} {
		t.Run("rejects "+input, func(t *testing.T) {
			_, err := DecodeComplaintID(input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidComplaintID))
		})
	}
}

func TestComplaintIDRoundTrip(t *testing.T) {
	samples := []uint{0, 1, 9, 10, 42, 99999, 100000, 123456, 999999999}
	for n := uint(0); n < 1_000_000_000; n = n*7 + 13 {
		samples = append(samples, n)
	}

	for _, n := range samples {
		decoded, err := DecodeComplaintID(EncodeComplaintID(n))
		require.NoError(t, err)
		assert.Equal(t, n, decoded)
	}
}
