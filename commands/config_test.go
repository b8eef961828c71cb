package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func touch(t *testing.T, name string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte{}, 0660); err != nil {
		t.Fatalf("Unexpected error creating %s (%v)", name, err)
	}

	return path
}

func TestConfigValidate(t *testing.T) {
	conf := Config{
		Credentials:   touch(t, "credentials.json"),
		Template:      touch(t, "template.docx"),
		AssetsID:      "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms",
		DepartmentsID: "1mHbMDU9Sa3Uh3yDr9eyOYdGUOpXDSCbuRq9YxSq2ipE",
		Folder:        "0AIxmR1Yqz9DFUk9PVA",
		Upload:        true,
	}

	if err := conf.Validate(); err != nil {
		t.Fatalf("Unexpected error returned from Validate (%v)", err)
	}
}

func TestConfigValidateFailsBeforeAnyNetworkCall(t *testing.T) {
	conf := Config{
		Credentials:   filepath.Join(t.TempDir(), "missing.json"),
		Template:      filepath.Join(t.TempDir(), "missing.docx"),
		AssetsID:      "",
		DepartmentsID: "",
		Folder:        "",
		Upload:        true,
	}

	err := conf.Validate()
	if err == nil {
		t.Fatalf("Expected error return for invalid configuration, got %v", err)
	}

	// all problems are reported together
	v, ok := err.(*ConfigError)
	if !ok {
		t.Fatalf("Expected *ConfigError, got %T", err)
	}

	if len(v.Problems) != 5 {
		t.Errorf("Expected 5 problems, got %v (%v)", len(v.Problems), v.Problems)
	}

	if !strings.Contains(err.Error(), "credentials file not found") {
		t.Errorf("Expected credentials problem in error, got %v", err)
	}
}

func TestConfigValidateWithoutUpload(t *testing.T) {
	conf := Config{
		Credentials:   touch(t, "credentials.json"),
		Template:      touch(t, "template.docx"),
		AssetsID:      "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms",
		DepartmentsID: "1mHbMDU9Sa3Uh3yDr9eyOYdGUOpXDSCbuRq9YxSq2ipE",
		Folder:        "",
		Upload:        false,
	}

	if err := conf.Validate(); err != nil {
		t.Fatalf("Unexpected error returned from Validate (%v)", err)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"GOOGLE_CREDS_PATH", "ASSETS_SHEET_ID", "ASSETS_SHEET_NAME",
		"DEPARTMENTS_SHEET_ID", "DEPARTMENTS_SHEET_NAME", "SHARED_DRIVE_ID",
		"TEMPLATE_PATH", "OUTPUT_DIR",
	} {
		t.Setenv(key, "")
	}

	conf := LoadConfig("")

	if conf.Credentials != DEFAULT_CREDENTIALS {
		t.Errorf("Incorrect default credentials - expected:'%v', got:'%v'", DEFAULT_CREDENTIALS, conf.Credentials)
	}

	if conf.AssetsSheet != "list" {
		t.Errorf("Incorrect default assets sheet - expected:'list', got:'%v'", conf.AssetsSheet)
	}

	if conf.DepartmentsSheet != "Department" {
		t.Errorf("Incorrect default departments sheet - expected:'Department', got:'%v'", conf.DepartmentsSheet)
	}

	if !conf.Upload {
		t.Errorf("Expected upload to default to enabled")
	}
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("ASSETS_SHEET_ID", "assets-id")
	t.Setenv("DEPARTMENTS_SHEET_ID", "departments-id")
	t.Setenv("SHARED_DRIVE_ID", "folder-id")

	conf := LoadConfig("")

	if conf.AssetsID != "assets-id" || conf.DepartmentsID != "departments-id" || conf.Folder != "folder-id" {
		t.Errorf("Incorrect configuration from environment: %+v", conf)
	}
}
