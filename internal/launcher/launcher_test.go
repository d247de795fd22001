package launcher

import (
	"errors"
	"os/exec"
	"reflect"
	"testing"
)

func recordingLauncher(command string, startErr error) (*Launcher, *[]string) {
	var got []string
	l := New(command)
	l.start = func(cmd *exec.Cmd) error {
		got = cmd.Args
		return startErr
	}
	return l, &got
}

func TestOpen(t *testing.T) {
	tests := []struct {
		name     string
		command  string
		path     string
		expected []string
	}{
		{"xdg-open", "xdg-open", "/home/user/report.pdf", []string{"xdg-open", "/home/user/report.pdf"}},
		{"command with arguments", "gio open", "/tmp/a b.txt", []string{"gio", "open", "/tmp/a b.txt"}},
		{"extra whitespace", "  gio   open ", "/tmp/x", []string{"gio", "open", "/tmp/x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, got := recordingLauncher(tt.command, nil)
			if err := l.Open(tt.path); err != nil {
				t.Fatalf("Open() error = %v", err)
			}
			if !reflect.DeepEqual(*got, tt.expected) {
				t.Errorf("args = %v, want %v", *got, tt.expected)
			}
		})
	}
}

func TestOpen_DoesNotMutateCommand(t *testing.T) {
	l, _ := recordingLauncher("gio open", nil)

	_ = l.Open("/first")
	_ = l.Open("/second")

	if got := l.Command(); !reflect.DeepEqual(got, []string{"gio", "open"}) {
		t.Errorf("Command() = %v, want [gio open]", got)
	}
}

func TestOpen_EmptyPath(t *testing.T) {
	l, got := recordingLauncher("xdg-open", nil)

	err := l.Open("")
	if !errors.Is(err, ErrEmptyPath) {
		t.Errorf("Open(\"\") error = %v, want ErrEmptyPath", err)
	}
	if *got != nil {
		t.Error("nothing should be started for an empty path")
	}
}

func TestOpen_StartError(t *testing.T) {
	startErr := errors.New("boom")
	l, _ := recordingLauncher("xdg-open", startErr)

	err := l.Open("/tmp/x")
	if !errors.Is(err, startErr) {
		t.Errorf("Open() error = %v, want wrapped %v", err, startErr)
	}
}

func TestOpen_MissingExecutable(t *testing.T) {
	l := New("trackersearch-no-such-opener")

	if err := l.Open("/tmp/x"); err == nil {
		t.Error("Open() with a missing executable should fail")
	}
}

func TestDefaultCommand(t *testing.T) {
	tests := []struct {
		goos     string
		expected []string
	}{
		{"linux", []string{"xdg-open"}},
		{"freebsd", []string{"xdg-open"}},
		{"darwin", []string{"open"}},
		{"windows", []string{"cmd", "/c", "start", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			if got := DefaultCommand(tt.goos); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("DefaultCommand(%q) = %v, want %v", tt.goos, got, tt.expected)
			}
		})
	}
}

func TestRun(t *testing.T) {
	l, got := recordingLauncher("xdg-open", nil)

	if err := l.Run("tracker3 search --gui", "report", "2024"); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	expected := []string{"tracker3", "search", "--gui", "report", "2024"}
	if !reflect.DeepEqual(*got, expected) {
		t.Errorf("args = %v, want %v", *got, expected)
	}
}

func TestRun_EmptyCommand(t *testing.T) {
	l, got := recordingLauncher("xdg-open", nil)

	if err := l.Run("   ", "x"); !errors.Is(err, ErrEmptyCommand) {
		t.Errorf("Run() error = %v, want ErrEmptyCommand", err)
	}
	if *got != nil {
		t.Error("nothing should be started for an empty command")
	}
}
