package cliparse

import "testing"

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
		check   func(t *testing.T, cfg Config)
	}{
		{
			name: "all flags",
			args: []string{"-p", "9000", "-d", "postgres://x", "-t", "postgres", "-cost", "4", "-seed"},
			check: func(t *testing.T, cfg Config) {
				if cfg.Port != 9000 || cfg.DatabaseURL != "postgres://x" ||
					cfg.DatabaseType != "postgres" || cfg.BcryptCost != 4 || !cfg.Seed {
					t.Errorf("unexpected config: %+v", cfg)
				}
			},
		},
		{
			name: "defaults",
			args: []string{"-d", "file:votes.db"},
			check: func(t *testing.T, cfg Config) {
				if cfg.Port != 3321 {
					t.Errorf("expected default port 3321, got %d", cfg.Port)
				}
				if cfg.DatabaseType != "sqlite" {
					t.Errorf("expected default type sqlite, got %s", cfg.DatabaseType)
				}
				if cfg.BcryptCost != 10 {
					t.Errorf("expected default cost 10, got %d", cfg.BcryptCost)
				}
				if cfg.Seed {
					t.Error("seed should default to false")
				}
			},
		},
		{
			name:    "missing database URL",
			args:    []string{"-p", "9000"},
			wantErr: true,
		},
		{
			name:    "bad database type",
			args:    []string{"-d", "x", "-t", "mysql"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseFlags(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFlags failed: %v", err)
			}
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}
