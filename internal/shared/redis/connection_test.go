package redis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"starmap-server/internal/shared/config"
)

func TestOptions(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.RedisConfig
		wantAddr string
		wantDB   int
		wantErr  bool
	}{
		{name: "host and port", cfg: config.RedisConfig{Host: "cache", Port: "6380", DB: 2}, wantAddr: "cache:6380", wantDB: 2},
		{name: "url wins", cfg: config.RedisConfig{URL: "redis://:pw@saves:6379/3", Host: "ignored", Port: "1"}, wantAddr: "saves:6379", wantDB: 3},
		{name: "bad url", cfg: config.RedisConfig{URL: "http://nope"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := options(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantAddr, opts.Addr)
			assert.Equal(t, tt.wantDB, opts.DB)
		})
	}
}

func TestConnect_Disabled(t *testing.T) {
	client, err := Connect(context.Background(), config.RedisConfig{Enabled: false})
	require.NoError(t, err)
	assert.Nil(t, client)
	assert.NoError(t, client.Close())
}
