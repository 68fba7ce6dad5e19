package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEnvFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	body := "# comment\n" +
		"PLAIN_KEY=plain\n" +
		"export EXPORTED_KEY=exported\n" +
		"QUOTED_KEY=\"with spaces\"\n" +
		"SINGLE_KEY='single'\n" +
		"ALREADY_SET=from-file\n" +
		"not a pair\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	for _, key := range []string{"PLAIN_KEY", "EXPORTED_KEY", "QUOTED_KEY", "SINGLE_KEY"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	t.Setenv("ALREADY_SET", "from-env")

	loadEnvFiles(path, filepath.Join(dir, "missing.env"))

	want := map[string]string{
		"PLAIN_KEY":    "plain",
		"EXPORTED_KEY": "exported",
		"QUOTED_KEY":   "with spaces",
		"SINGLE_KEY":   "single",
		"ALREADY_SET":  "from-env",
	}
	for key, expect := range want {
		if got := os.Getenv(key); got != expect {
			t.Fatalf("%s = %q, want %q", key, got, expect)
		}
	}
}

func TestParseEnvLine(t *testing.T) {
	cases := []struct {
		in  string
		key string
		val string
		ok  bool
	}{
		{"KEY=value", "KEY", "value", true},
		{"export KEY=value", "KEY", "value", true},
		{`KEY="a=b"`, "KEY", "a=b", true},
		{"KEY=", "KEY", "", true},
		{"# comment", "", "", false},
		{"", "", "", false},
		{"no equals", "", "", false},
		{"=value", "", "", false},
	}
	for _, tc := range cases {
		key, val, ok := parseEnvLine(tc.in)
		if key != tc.key || val != tc.val || ok != tc.ok {
			t.Fatalf("parseEnvLine(%q) = %q, %q, %v", tc.in, key, val, ok)
		}
	}
}
