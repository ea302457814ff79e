package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRun(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		args       []string
		wantCode   int
		wantOut    string
		wantErrSub string
	}{
		{
			name:     "ipc",
			args:     []string{"aeron:ipc?alias=x"},
			wantCode: 0,
			wantOut: "aeron:ipc?alias=x\n" +
				"  transport: ipc\n" +
				"  param: alias=x\n",
		},
		{
			name:     "udp",
			args:     []string{"aeron:udp?port=4567|endpoint=224.10.9.8:40456|ttl=16"},
			wantCode: 0,
			wantOut: "aeron:udp?endpoint=224.10.9.8:40456|ttl=16|port=4567\n" +
				"  transport: udp\n" +
				"  endpoint: 224.10.9.8:40456\n" +
				"  ttl: 16\n" +
				"  param: port=4567\n",
		},
		{
			name:     "udp resolve",
			args:     []string{"-r", "aeron:udp?endpoint=224.10.9.8:40456|interface=192.168.0.3/24|ttl=16"},
			wantCode: 0,
			wantOut: "aeron:udp?endpoint=224.10.9.8:40456|interface=192.168.0.3/24|ttl=16\n" +
				"  transport: udp\n" +
				"  endpoint: 224.10.9.8:40456\n" +
				"  interface: 192.168.0.3/24\n" +
				"  ttl: 16\n" +
				"  resolved endpoint: 224.10.9.8:40456 (ipv4, multicast)\n" +
				"  resolved interface: 192.168.0.3/24 (ipv4, prefix 192.168.0.0/24)\n" +
				"  resolved ttl: 16\n",
		},
		{
			name:     "udp resolve ipv6",
			args:     []string{"-r", "aeron:udp?control=[::1]:40457"},
			wantCode: 0,
			wantOut: "aeron:udp?control=[::1]:40457\n" +
				"  transport: udp\n" +
				"  control: [::1]:40457\n" +
				"  resolved control: [::1]:40457 (ipv6, unicast)\n",
		},
		{
			name:       "unknown transport",
			args:       []string{"aeron:tcp"},
			wantCode:   2,
			wantErrSub: "unknown transport",
		},
		{
			name:     "bad port",
			args:     []string{"-r", "aeron:udp?endpoint=224.10.9.8:99999"},
			wantCode: 2,
			wantOut: "aeron:udp?endpoint=224.10.9.8:99999\n" +
				"  transport: udp\n" +
				"  endpoint: 224.10.9.8:99999\n",
			wantErrSub: "endpoint: invalid port",
		},
		{
			name:     "bad ttl",
			args:     []string{"-r", "aeron:udp?ttl=256"},
			wantCode: 2,
			wantOut: "aeron:udp?ttl=256\n" +
				"  transport: udp\n" +
				"  ttl: 256\n",
			wantErrSub: "invalid ttl",
		},
		{
			name:     "no resolve keeps bad values",
			args:     []string{"aeron:udp?ttl=256"},
			wantCode: 0,
			wantOut: "aeron:udp?ttl=256\n" +
				"  transport: udp\n" +
				"  ttl: 256\n",
		},
		{
			name:       "no channels",
			args:       nil,
			wantCode:   2,
			wantErrSub: "no channel URIs given",
		},
		{
			name:     "bad flag",
			args:     []string{"-x"},
			wantCode: 2,
		},
		{
			name:       "missing config",
			args:       []string{"-c", filepath.Join(t.TempDir(), "missing.yaml"), "aeron:ipc"},
			wantCode:   1,
			wantErrSub: "open config file:",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			var stdout, stderr bytes.Buffer
			code := run(c.args, &stdout, &stderr)
			if code != c.wantCode {
				t.Errorf("run(%q) = %d, want %d\nstderr:\n%s", c.args, code, c.wantCode, stderr.String())
			}
			if diff := cmp.Diff(stdout.String(), c.wantOut); diff != "" {
				t.Errorf("run(%q) stdout diff (-got +want):\n%v", c.args, diff)
			}
			if !strings.Contains(stderr.String(), c.wantErrSub) {
				t.Errorf("run(%q) stderr = %q, want it to contain %q", c.args, stderr.String(), c.wantErrSub)
			}
		})
	}
}

func TestRun_ConfigChannels(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "aeronuri.yaml")
	cfg := "log:\n  format: json\nchannels:\n  - aeron:ipc\n"
	if err := os.WriteFile(path, []byte(cfg), 0o600); err != nil {
		t.Fatalf("os.WriteFile() error = %v, want nil", err)
	}

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-c", path, "aeron:udp?"}, &stdout, &stderr); code != 0 {
		t.Fatalf("run() = %d, want 0\nstderr:\n%s", code, stderr.String())
	}

	want := "aeron:ipc\n" +
		"  transport: ipc\n" +
		"aeron:udp?\n" +
		"  transport: udp\n"
	if diff := cmp.Diff(stdout.String(), want); diff != "" {
		t.Errorf("run() stdout diff (-got +want):\n%v", diff)
	}
}

func TestRun_Metrics(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	code := run([]string{"-m", "aeron:ipc"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run() = %d, want 0\nstderr:\n%s", code, stderr.String())
	}
	// Literal addresses never reach the host resolver, so nothing is recorded.
	if strings.Contains(stdout.String(), "aeron.resolve") {
		t.Errorf("run() stdout = %q, want no resolution metrics", stdout.String())
	}
}

func TestRun_Debug(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-d", "aeron:ipc?alias=x"}, &stdout, &stderr); code != 0 {
		t.Fatalf("run() = %d, want 0\nstderr:\n%s", code, stderr.String())
	}
	if !strings.Contains(stderr.String(), "channel parsed") {
		t.Errorf("run() stderr = %q, want debug record \"channel parsed\"", stderr.String())
	}
}
