package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func runCLI(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRunList(t *testing.T) {
	code, out, errOut := runCLI(t, "-version", "4.5", "-profile", "core", "-list")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	if !strings.HasPrefix(out, "GL 4.5 core (both): ") {
		t.Errorf("header = %q", strings.SplitN(out, "\n", 2)[0])
	}
	for _, want := range []string{"glDispatchCompute", "glCreateShader", "(GL 2.0)"} {
		if !strings.Contains(out, want) {
			t.Errorf("listing lacks %q", want)
		}
	}
	if strings.Contains(out, "glSpecializeShader") {
		t.Error("4.6 entry point listed for 4.5")
	}
}

func TestRunFlagsOverrideEnv(t *testing.T) {
	t.Setenv("GLBIND_VERSION", "4.6")
	t.Setenv("GLBIND_PROFILE", "core")

	code, out, errOut := runCLI(t, "-version", "3.3")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	if !strings.HasPrefix(out, "GL 3.3 core") {
		t.Errorf("header = %q", out)
	}
}

func TestRunInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no version", []string{"-profile", "core"}},
		{"bad version", []string{"-version", "5.0", "-profile", "core"}},
		{"compat", []string{"-version", "4.5", "-profile", "compat"}},
		{"bad surface", []string{"-version", "4.5", "-profile", "core", "-surface", "both,raw-only"}},
		{"unknown flag", []string{"-frobnicate"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("GLBIND_VERSION", "")
			t.Setenv("GLBIND_PROFILE", "")
			t.Setenv("GLBIND_SURFACE", "")
			code, _, errOut := runCLI(t, tt.args...)
			if code != 2 {
				t.Errorf("exit %d, want 2", code)
			}
			if errOut == "" {
				t.Error("no diagnostic on stderr")
			}
		})
	}
}

func TestRunProbeUnknownResolver(t *testing.T) {
	code, _, errOut := runCLI(t, "-version", "4.5", "-profile", "core", "-probe", "-resolver", "nope")
	if code != 1 {
		t.Errorf("exit %d, want 1", code)
	}
	if !strings.Contains(errOut, "nope") {
		t.Errorf("stderr = %q", errOut)
	}
}

func TestRunSchema(t *testing.T) {
	code, out, errOut := runCLI(t, "-schema")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	var schema struct {
		Properties map[string]json.RawMessage `json:"properties"`
		Required   []string                   `json:"required"`
	}
	if err := json.Unmarshal([]byte(out), &schema); err != nil {
		t.Fatalf("schema is not JSON: %v", err)
	}
	for _, p := range []string{"version", "profile", "surface"} {
		if _, ok := schema.Properties[p]; !ok {
			t.Errorf("schema lacks property %q", p)
		}
	}
	if len(schema.Required) != 2 {
		t.Errorf("required = %v, want version and profile", schema.Required)
	}
}
