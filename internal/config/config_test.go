package config

import (
	"testing"
)

func TestValidateAddr(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "host and port", input: "127.0.0.1:50051"},
		{name: "port only", input: ":50051"},
		{name: "hostname", input: "localhost:9090"},
		{name: "ipv6", input: "[::1]:50051"},
		{name: "with spaces", input: " 127.0.0.1:50051 "},
		{name: "empty string", input: "", wantErr: true},
		{name: "invalid format - no port", input: "127.0.0.1", wantErr: true},
		{name: "invalid format - named port", input: "127.0.0.1:grpc", wantErr: true},
		{name: "invalid format - port out of range", input: ":70000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAddr(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAddr() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "defaults", cfg: Default()},
		{name: "metrics disabled", cfg: Config{NodeID: "n1", ListenAddr: ":50051"}},
		{name: "empty node ID", cfg: Config{ListenAddr: ":50051"}, wantErr: true},
		{name: "bad listen", cfg: Config{NodeID: "n1", ListenAddr: "50051"}, wantErr: true},
		{name: "bad metrics", cfg: Config{NodeID: "n1", ListenAddr: ":50051", MetricsAddr: "x"}, wantErr: true},
		{name: "same addresses", cfg: Config{NodeID: "n1", ListenAddr: ":50051", MetricsAddr: ":50051"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
