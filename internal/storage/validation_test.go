package storage

import (
	"context"
	"errors"
	"testing"
)

func TestValidateContext(t *testing.T) {
	tests := []struct {
		ctx     context.Context
		name    string
		wantErr bool
	}{
		{
			name:    "valid context",
			ctx:     context.Background(),
			wantErr: false,
		},
		{
			name:    "nil context",
			ctx:     nil,
			wantErr: true,
		},
		{
			name: "canceled context still valid",
			ctx: func() context.Context {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx
			}(),
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateContext(tt.ctx)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateContext() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateString(t *testing.T) {
	tests := []struct {
		name      string
		str       string
		paramName string
		wantErr   bool
	}{
		{
			name:      "valid string",
			str:       "Food",
			paramName: "name",
			wantErr:   false,
		},
		{
			name:      "empty string",
			str:       "",
			paramName: "name",
			wantErr:   true,
		},
		{
			name:      "whitespace only",
			str:       " \t\n",
			paramName: "name",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateString(tt.str, tt.paramName)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateString() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrEmptyString) {
				t.Errorf("validateString() error = %v, want ErrEmptyString", err)
			}
		})
	}
}

func TestNewConnector(t *testing.T) {
	tests := []struct {
		wantErr error
		name    string
		path    string
	}{
		{name: "file path", path: "/tmp/tally.db"},
		{name: "empty path", path: "", wantErr: ErrEmptyString},
		{name: "in-memory", path: ":memory:", wantErr: ErrInvalidPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := newConnector(tt.path)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("newConnector() unexpected error = %v", err)
				}
				if c.dbPath != tt.path {
					t.Errorf("dbPath = %q, want %q", c.dbPath, tt.path)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("newConnector() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
