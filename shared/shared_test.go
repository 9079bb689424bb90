package shared_test

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"daawat/shared"
	cacheMocks "daawat/shared/cache/mocks"
)

func boolPtr(b bool) *bool {
	return &b
}

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{
			name:     "empty string returns nil",
			input:    "",
			expected: nil,
		},
		{
			name:     "valid true string",
			input:    "true",
			expected: boolPtr(true),
		},
		{
			name:     "valid false string",
			input:    "false",
			expected: boolPtr(false),
		},
		{
			name:     "valid 1 string",
			input:    "1",
			expected: boolPtr(true),
		},
		{
			name:     "invalid string returns nil",
			input:    "veg",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.ConvertStringToBool(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", *result)
				}

				return
			}

			if result == nil {
				t.Fatalf("expected %v, got nil", *tt.expected)
			}

			if *result != *tt.expected {
				t.Errorf("expected %v, got %v", *tt.expected, *result)
			}
		})
	}
}

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		parts    []string
		expected string
	}{
		{
			name:     "single part",
			parts:    []string{"menu:get_all"},
			expected: "menu:get_all",
		},
		{
			name:     "multiple parts",
			parts:    []string{"offer", "welcome_seen", "visitor-1"},
			expected: "offer:welcome_seen:visitor-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if key := shared.BuildCacheKey(tt.parts...); key != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, key)
			}
		})
	}
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockCache.EXPECT().
		Clear(gomock.Any(), "menu:*").
		Return(nil)

	shared.InvalidateCaches(context.Background(), mockCache, "menu:")

	// Clear failures must be swallowed, not propagated.
	mockCache.EXPECT().
		Clear(gomock.Any(), "menu:*").
		Return(errors.New("redis down"))

	shared.InvalidateCaches(context.Background(), mockCache, "menu:")
}
