package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseClient(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Client
		wantErr  bool
	}{
		{name: "s4cmd", input: "s4cmd", expected: S4cmd},
		{name: "s5cmd", input: "s5cmd", expected: S5cmd},
		{name: "unknown", input: "s6cmd", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "case sensitive", input: "S5CMD", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := ParseClient(tt.input)
			if tt.wantErr {
				var unknownErr *UnknownClientError
				assert.ErrorAs(t, err, &unknownErr)
				assert.Equal(t, tt.input, unknownErr.Name)
				assert.Contains(t, err.Error(), tt.input)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, client)
			}
		})
	}
}

func TestDefaultClient(t *testing.T) {
	assert.Equal(t, S5cmd, DefaultClient)
	assert.Equal(t, "s5cmd", DefaultClient.Binary())
}

func TestTranslateTableDriven(t *testing.T) {
	tests := []struct {
		name     string
		cmd      Command
		client   Client
		expected []string
	}{
		{"ls without path s4cmd", List{}, S4cmd, []string{"s4cmd", "ls"}},
		{"ls without path s5cmd", List{}, S5cmd, []string{"s5cmd", "ls"}},
		{"ls with path s4cmd", List{Path: "s3://bucket/prefix"}, S4cmd, []string{"s4cmd", "ls", "s3://bucket/prefix"}},
		{"ls with path s5cmd", List{Path: "s3://bucket/prefix"}, S5cmd, []string{"s5cmd", "ls", "s3://bucket/prefix"}},
		{"put uses put verb on s4cmd", Put{Source: "a.txt", Target: "s3://bucket/a.txt"}, S4cmd, []string{"s4cmd", "put", "a.txt", "s3://bucket/a.txt"}},
		{"put uses cp verb on s5cmd", Put{Source: "a.txt", Target: "s3://bucket/a.txt"}, S5cmd, []string{"s5cmd", "cp", "a.txt", "s3://bucket/a.txt"}},
		{"put preserves source then target", Put{Source: "./file.txt", Target: "s3://b/k"}, S5cmd, []string{"s5cmd", "cp", "./file.txt", "s3://b/k"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Translate(tt.cmd, tt.client))
		})
	}
}

func TestAugment(t *testing.T) {
	tests := []struct {
		name     string
		argv     []string
		client   Client
		endpoint string
		region   string
		expected []string
	}{
		{
			name:     "no config leaves argv untouched",
			argv:     []string{"s4cmd", "ls"},
			client:   S4cmd,
			expected: []string{"s4cmd", "ls"},
		},
		{
			name:     "s4cmd endpoint and region appended",
			argv:     []string{"s4cmd", "put", "a", "b"},
			client:   S4cmd,
			endpoint: "https://minio.local:9000",
			region:   "eu-west-1",
			expected: []string{"s4cmd", "put", "a", "b", "--endpoint", "https://minio.local:9000", "--region", "eu-west-1"},
		},
		{
			name:     "s4cmd region not duplicated",
			argv:     []string{"s4cmd", "ls", "--region", "us-east-2"},
			client:   S4cmd,
			region:   "eu-west-1",
			expected: []string{"s4cmd", "ls", "--region", "us-east-2"},
		},
		{
			name:     "s5cmd endpoint precedes the subcommand",
			argv:     []string{"s5cmd", "cp", "a", "b"},
			client:   S5cmd,
			endpoint: "https://minio.local:9000",
			expected: []string{"s5cmd", "--endpoint-url", "https://minio.local:9000", "cp", "a", "b"},
		},
		{
			name:     "s5cmd ignores region",
			argv:     []string{"s5cmd", "ls"},
			client:   S5cmd,
			region:   "eu-west-1",
			expected: []string{"s5cmd", "ls"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Augment(tt.argv, tt.client, tt.endpoint, tt.region))
		})
	}
}
