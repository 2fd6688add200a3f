package executor

import (
	"errors"
	"strings"
	"testing"
)

func TestSystemExecutor_Execute(t *testing.T) {
	exec := NewSystemExecutor()

	t.Run("echo command", func(t *testing.T) {
		stdout, stderr, err := exec.Execute("echo", "hello")
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if string(stdout) != "hello\n" {
			t.Errorf("expected 'hello\\n' on stdout, got '%s'", string(stdout))
		}
		if len(stderr) != 0 {
			t.Errorf("expected empty stderr, got '%s'", string(stderr))
		}
	})

	t.Run("stderr is captured separately", func(t *testing.T) {
		stdout, stderr, err := exec.Execute("sh", "-c", "echo out; echo err >&2")
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if string(stdout) != "out\n" {
			t.Errorf("expected 'out\\n' on stdout, got '%s'", string(stdout))
		}
		if string(stderr) != "err\n" {
			t.Errorf("expected 'err\\n' on stderr, got '%s'", string(stderr))
		}
	})

	t.Run("non-zero exit still returns streams", func(t *testing.T) {
		_, stderr, err := exec.Execute("sh", "-c", "echo broken >&2; exit 3")
		if err == nil {
			t.Fatal("expected error for non-zero exit")
		}
		if !strings.Contains(string(stderr), "broken") {
			t.Errorf("expected stderr to contain 'broken', got '%s'", string(stderr))
		}
	})

	t.Run("nonexistent command", func(t *testing.T) {
		_, _, err := exec.Execute("nonexistent-command-xyz-12345")
		if err == nil {
			t.Error("expected error for nonexistent command")
		}
	})
}

func TestSystemExecutor_LookPath(t *testing.T) {
	exec := NewSystemExecutor()

	t.Run("find sh", func(t *testing.T) {
		path, err := exec.LookPath("sh")
		if err != nil {
			t.Fatalf("LookPath failed: %v", err)
		}
		if path == "" {
			t.Error("expected non-empty path")
		}
	})

	t.Run("nonexistent command", func(t *testing.T) {
		_, err := exec.LookPath("nonexistent-command-xyz-12345")
		if err == nil {
			t.Error("expected error for nonexistent command")
		}
	})
}

func TestMockExecutor_Execute(t *testing.T) {
	t.Run("default behavior", func(t *testing.T) {
		mock := &MockExecutor{}
		stdout, stderr, err := mock.Execute("test", "arg1", "arg2")
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if string(stdout) != "" || string(stderr) != "" {
			t.Errorf("expected empty streams, got '%s' / '%s'", stdout, stderr)
		}
		if len(mock.Calls) != 1 {
			t.Fatalf("expected 1 recorded call, got %d", len(mock.Calls))
		}
		if mock.Calls[0].Name != "test" {
			t.Errorf("expected call name 'test', got '%s'", mock.Calls[0].Name)
		}
		if len(mock.Calls[0].Args) != 2 || mock.Calls[0].Args[0] != "arg1" {
			t.Errorf("unexpected recorded args: %v", mock.Calls[0].Args)
		}
	})

	t.Run("custom function", func(t *testing.T) {
		wantErr := errors.New("boom")
		mock := &MockExecutor{
			ExecuteFunc: func(name string, args ...string) ([]byte, []byte, error) {
				return []byte("out"), []byte("err"), wantErr
			},
		}
		stdout, stderr, err := mock.Execute("certbot", "revoke")
		if !errors.Is(err, wantErr) {
			t.Errorf("expected wrapped error, got %v", err)
		}
		if string(stdout) != "out" || string(stderr) != "err" {
			t.Errorf("unexpected streams: '%s' / '%s'", stdout, stderr)
		}
	})
}

func TestMockExecutor_LookPath(t *testing.T) {
	t.Run("default behavior", func(t *testing.T) {
		mock := &MockExecutor{}
		path, err := mock.LookPath("certbot")
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if path != "/usr/bin/certbot" {
			t.Errorf("expected '/usr/bin/certbot', got '%s'", path)
		}
	})

	t.Run("custom function", func(t *testing.T) {
		mock := &MockExecutor{
			LookPathFunc: func(file string) (string, error) {
				return "", errors.New("not found")
			},
		}
		if _, err := mock.LookPath("certbot"); err == nil {
			t.Error("expected error from custom LookPath")
		}
	})
}
