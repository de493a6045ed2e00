package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"imageStore": map[string]any{
			"bucketUrl": "mem://",
			"s3": map[string]any{
				"accessKey": "",
			},
		},
		"campground": map[string]any{
			"pageSize": 8,
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "IMAGESTORE_BUCKETURL", want: "imageStore.bucketUrl"},
		{envKey: "IMAGESTORE_S3_ACCESSKEY", want: "imageStore.s3.accessKey"},
		{envKey: "CAMPGROUND_PAGESIZE", want: "campground.pageSize"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsCampgroundSettings(t *testing.T) {
	cfg := &Config{Weather: &WeatherConfig{Enabled: true}}

	applyDefaults(cfg)

	if cfg.Campground.PageSize != 8 {
		t.Fatalf("PageSize = %d, want 8", cfg.Campground.PageSize)
	}
	if cfg.Campground.PlaceholderImageURL != "/images/temp.png" {
		t.Fatalf("PlaceholderImageURL = %q", cfg.Campground.PlaceholderImageURL)
	}
	if cfg.Campground.FanOutConcurrency <= 0 {
		t.Fatalf("FanOutConcurrency = %d, want positive", cfg.Campground.FanOutConcurrency)
	}
	if want := 27*time.Minute + 45*time.Second; cfg.Weather.CacheTTL != want {
		t.Fatalf("CacheTTL = %s, want %s", cfg.Weather.CacheTTL, want)
	}
	if cfg.HTTP.MaxRequestBodySize != "1MB" || cfg.HTTP.MaxUploadBodySize != "10MB" {
		t.Fatalf("body limits = %q/%q, want 1MB/10MB", cfg.HTTP.MaxRequestBodySize, cfg.HTTP.MaxUploadBodySize)
	}
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{Campground: &CampgroundConfig{PageSize: 20, PlaceholderImageURL: "/img/none.png"}}

	applyDefaults(cfg)

	if cfg.Campground.PageSize != 20 {
		t.Fatalf("PageSize = %d, want 20", cfg.Campground.PageSize)
	}
	if cfg.Campground.PlaceholderImageURL != "/img/none.png" {
		t.Fatalf("PlaceholderImageURL = %q", cfg.Campground.PlaceholderImageURL)
	}
	if cfg.Weather != nil {
		t.Fatal("Weather should stay nil when not configured")
	}
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	content := []byte("campground:\n  pageSize: 8\ngeocoder:\n  timeout: 5s\n")
	if err := os.WriteFile(filepath.Join(dir, "test.yaml"), content, 0o600); err != nil {
		t.Fatal(err)
	}

	t.Chdir(dir)
	t.Setenv("CAMPGROUND_PAGESIZE", "12")

	cfg, err := LoadWithEnv[Config]("test")
	if err != nil {
		t.Fatalf("LoadWithEnv returned error: %v", err)
	}
	if cfg.Campground.PageSize != 12 {
		t.Fatalf("PageSize = %d, want 12", cfg.Campground.PageSize)
	}
	if cfg.Geocoder.Timeout != 5*time.Second {
		t.Fatalf("Geocoder.Timeout = %s, want 5s", cfg.Geocoder.Timeout)
	}
}
