package storeclient_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storekit-io/wcapi/pkg/store"
	"github.com/storekit-io/wcapi/pkg/storeclient"
)

func TestNormalizeEndpoint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		endpoint string
		expected string
	}{
		{
			name:     "bare host",
			endpoint: "shop.example.com",
			expected: "https://shop.example.com/wp-json/wc/v3",
		},
		{
			name:     "site url",
			endpoint: "https://shop.example.com",
			expected: "https://shop.example.com/wp-json/wc/v3",
		},
		{
			name:     "trailing slash",
			endpoint: "https://shop.example.com/",
			expected: "https://shop.example.com/wp-json/wc/v3",
		},
		{
			name:     "already an api root",
			endpoint: "https://shop.example.com/wp-json/wc/v3",
			expected: "https://shop.example.com/wp-json/wc/v3",
		},
		{
			name:     "http preserved",
			endpoint: "http://localhost:8080",
			expected: "http://localhost:8080/wp-json/wc/v3",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, storeclient.NormalizeEndpoint(testCase.endpoint))
		})
	}
}

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	t.Run("nil config", func(t *testing.T) {
		t.Parallel()

		_, err := storeclient.New(context.Background(), nil)

		assert.ErrorIs(t, err, store.ErrConfigRequired)
	})

	t.Run("missing endpoint", func(t *testing.T) {
		t.Parallel()

		_, err := storeclient.New(context.Background(), &store.Config{
			ConsumerKey:    "ck_test",
			ConsumerSecret: "cs_test",
		})

		assert.ErrorIs(t, err, store.ErrEndpointRequired)
	})

	t.Run("missing credentials", func(t *testing.T) {
		t.Parallel()

		_, err := storeclient.NewWithKeys(context.Background(), "https://shop.example.com", "ck_test", "")

		assert.ErrorIs(t, err, store.ErrCredentialsRequired)
	})
}

func TestNewFaking(t *testing.T) {
	t.Parallel()

	apiClient, err := storeclient.NewFaking(context.Background())
	require.NoError(t, err)

	products, err := apiClient.Products().List(context.Background(), nil)

	require.NoError(t, err)
	assert.NotEmpty(t, products.Items)
}
