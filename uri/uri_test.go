package uri_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/aeronuri/internal/errorutil"
	"github.com/ghettovoice/aeronuri/uri"
)

func TestParse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in      string
		want    uri.URI
		wantErr error
	}{
		{"aeron:ipc", &uri.IPC{}, nil},
		{"aeron:ipc?", &uri.IPC{}, nil},
		{"aeron:udp?", &uri.UDP{}, nil},
		{"aeron:udp?endpoint=224.10.9.8", &uri.UDP{Endpoint: "224.10.9.8"}, nil},
		{
			"aeron:udp?add|ress=224.10.9.8",
			&uri.UDP{Params: uri.Params{{Key: "add|ress", Value: "224.10.9.8"}}},
			nil,
		},
		{"aeron:udp?endpoint=224.1=0.9.8", &uri.UDP{Endpoint: "224.1=0.9.8"}, nil},
		{
			"aeron:udp?endpoint=224.10.9.8|port=4567|interface=192.168.0.3|ttl=16",
			&uri.UDP{
				Endpoint:  "224.10.9.8",
				Interface: "192.168.0.3",
				TTL:       "16",
				Params:    uri.Params{{Key: "port", Value: "4567"}},
			},
			nil,
		},
		{
			"aeron:udp?control=10.0.0.1:40456|endpoint=[::1%eth0]:40123|interface=[fe80::1]/64",
			&uri.UDP{Endpoint: "[::1%eth0]:40123", Interface: "[fe80::1]/64", Control: "10.0.0.1:40456"},
			nil,
		},
		{
			"aeron:ipc?term-length=64k|alias=a=b|alias=c",
			&uri.IPC{Params: uri.Params{
				{Key: "term-length", Value: "64k"},
				{Key: "alias", Value: "a=b"},
				{Key: "alias", Value: "c"},
			}},
			nil,
		},
		{"aeron:ipc?endpoint=224.10.9.8", &uri.IPC{Params: uri.Params{{Key: "endpoint", Value: "224.10.9.8"}}}, nil},
		{"aeron:udp?Endpoint=x", &uri.UDP{Params: uri.Params{{Key: "Endpoint", Value: "x"}}}, nil},
		{"aeron:udp?endpoint=a:1|endpoint=b:2", &uri.UDP{Endpoint: "b:2"}, nil},
		{"aeron:udp?ttl=1|", &uri.UDP{TTL: "1"}, nil},
		{"aeron:udp?endpoint=", &uri.UDP{}, nil},
		{"aeron:udp?=v", &uri.UDP{Params: uri.Params{{Key: "", Value: "v"}}}, nil},
		{"aeron:udp?a=1||b=2", &uri.UDP{Params: uri.Params{{Key: "a", Value: "1"}, {Key: "|b", Value: "2"}}}, nil},

		{"aaron", nil, uri.ErrInvalidScheme},
		{"aeron:", nil, uri.ErrInvalidScheme},
		{"aron:", nil, uri.ErrInvalidScheme},
		{":aeron", nil, uri.ErrInvalidScheme},
		{"", nil, uri.ErrInvalidScheme},
		{"AERON:ipc", nil, uri.ErrInvalidScheme},
		{"aeron:tcp", nil, uri.ErrUnknownTransport},
		{"aeron:sctp", nil, uri.ErrUnknownTransport},
		{"aeron:udp", nil, uri.ErrUnknownTransport},
		{"aeron:UDP?endpoint=1.2.3.4:5", nil, uri.ErrUnknownTransport},
		{"aeron:?endpoint=1.2.3.4:5", nil, uri.ErrUnknownTransport},
		{"aeron:udp:garbage", nil, uri.ErrUnknownTransport},
		{"aeron:udp?endpoint", nil, uri.ErrMalformedParam},
		{"aeron:udp?endpoint=1.2.3.4:5|ttl", nil, uri.ErrMalformedParam},
		{"aeron:ipc?|", nil, uri.ErrMalformedParam},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			t.Parallel()

			got, err := uri.Parse(c.in)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("uri.Parse(%q) error = %v, want %v\ndiff (-got +want):\n%v", c.in, err, c.wantErr, diff)
			}
			if c.want == nil {
				if got != nil {
					t.Errorf("uri.Parse(%q) = %#v, want nil", c.in, got)
				}
				return
			}
			if !got.Equal(c.want) {
				t.Errorf("uri.Parse(%q) = %+v, want %+v", c.in, got, c.want)
			}
			if got.Transport() != c.want.Transport() {
				t.Errorf("uri.Parse(%q).Transport() = %q, want %q", c.in, got.Transport(), c.want.Transport())
			}
		})
	}
}

func TestParse_Bytes(t *testing.T) {
	t.Parallel()

	got, err := uri.Parse([]byte("aeron:udp?endpoint=224.10.9.8:40456"))
	if err != nil {
		t.Fatalf("uri.Parse([]byte) error = %v, want nil", err)
	}
	if want := (&uri.UDP{Endpoint: "224.10.9.8:40456"}); !got.Equal(want) {
		t.Errorf("uri.Parse([]byte) = %v, want %v", got, want)
	}
}

func TestParse_GrammarErrors(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"aaron", "aeron:tcp", "aeron:udp?x"} {
		_, err := uri.Parse(in)
		if !errorutil.IsGrammarErr(err) {
			t.Errorf("errorutil.IsGrammarErr(uri.Parse(%q)) = false, want true (error = %v)", in, err)
		}
	}
}

func TestParse_NoParams(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want uri.Transport
	}{
		{"aeron:ipc", uri.TransportIPC},
		{"aeron:ipc?", uri.TransportIPC},
		{"aeron:udp?", uri.TransportUDP},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			t.Parallel()

			got, err := uri.Parse(c.in)
			if err != nil {
				t.Fatalf("uri.Parse(%q) error = %v, want nil", c.in, err)
			}
			if got.Transport() != c.want {
				t.Errorf("uri.Parse(%q).Transport() = %q, want %q", c.in, got.Transport(), c.want)
			}
			if n := uri.GetParams(got).Len(); n != 0 {
				t.Errorf("uri.GetParams(uri.Parse(%q)).Len() = %d, want 0", c.in, n)
			}
		})
	}
}

func TestParse_SingleParam(t *testing.T) {
	t.Parallel()

	cases := []struct {
		key, val string
	}{
		{"endpoint", "224.10.9.8:40456"},
		{"interface", "192.168.0.3/24"},
		{"control", "192.168.0.1:40457"},
		{"ttl", "8"},
		{"mtu", "1408"},
		{"add|ress", "224.10.9.8"},
		{"session-id", "a=b=c"},
	}

	for _, c := range cases {
		t.Run(c.key, func(t *testing.T) {
			t.Parallel()

			in := "aeron:udp?" + c.key + "=" + c.val
			u, err := uri.ParseUDP(in)
			if err != nil {
				t.Fatalf("uri.ParseUDP(%q) error = %v, want nil", in, err)
			}

			var found []string
			for _, v := range []struct{ key, val string }{
				{uri.ParamEndpoint, u.Endpoint},
				{uri.ParamInterface, u.Interface},
				{uri.ParamControl, u.Control},
				{uri.ParamTTL, u.TTL},
			} {
				if v.val != "" {
					found = append(found, v.key+"="+v.val)
				}
			}
			for k, v := range u.Params.All() {
				found = append(found, k+"="+v)
			}

			if diff := cmp.Diff(found, []string{c.key + "=" + c.val}); diff != "" {
				t.Errorf("uri.ParseUDP(%q) entries diff (-got +want):\n%v", in, diff)
			}
			if uri.IsWellKnownUDPParam(c.key) == u.Params.Has(c.key) {
				t.Errorf("uri.ParseUDP(%q): key %q routed to the wrong place", in, c.key)
			}
		})
	}
}

func TestParseIPC(t *testing.T) {
	t.Parallel()

	got, err := uri.ParseIPC("aeron:ipc?alias=x")
	if err != nil {
		t.Fatalf("uri.ParseIPC() error = %v, want nil", err)
	}
	if want := (&uri.IPC{Params: uri.Params{{Key: "alias", Value: "x"}}}); !got.Equal(want) {
		t.Errorf("uri.ParseIPC() = %v, want %v", got, want)
	}

	_, err = uri.ParseIPC("aeron:udp?endpoint=1.2.3.4:5")
	if diff := cmp.Diff(err, error(uri.ErrUnknownTransport), cmpopts.EquateErrors()); diff != "" {
		t.Errorf("uri.ParseIPC(udp) error = %v, want %v", err, uri.ErrUnknownTransport)
	}

	_, err = uri.ParseIPC("aeron:")
	if diff := cmp.Diff(err, error(uri.ErrInvalidScheme), cmpopts.EquateErrors()); diff != "" {
		t.Errorf("uri.ParseIPC(\"aeron:\") error = %v, want %v", err, uri.ErrInvalidScheme)
	}
}

func TestParseUDP(t *testing.T) {
	t.Parallel()

	_, err := uri.ParseUDP("aeron:ipc")
	if diff := cmp.Diff(err, error(uri.ErrUnknownTransport), cmpopts.EquateErrors()); diff != "" {
		t.Errorf("uri.ParseUDP(\"aeron:ipc\") error = %v, want %v", err, uri.ErrUnknownTransport)
	}

	_, err = uri.ParseUDP("aeron:udp?ttl")
	if diff := cmp.Diff(err, error(uri.ErrMalformedParam), cmpopts.EquateErrors()); diff != "" {
		t.Errorf("uri.ParseUDP(\"aeron:udp?ttl\") error = %v, want %v", err, uri.ErrMalformedParam)
	}
}

func TestGetParams(t *testing.T) {
	t.Parallel()

	if got := uri.GetParams(nil); got != nil {
		t.Errorf("uri.GetParams(nil) = %v, want nil", got)
	}

	ps := uri.Params{{Key: "a", Value: "1"}}
	for _, u := range []uri.URI{&uri.IPC{Params: ps}, &uri.UDP{Endpoint: "x:1", Params: ps}} {
		if got := uri.GetParams(u); !got.Equal(ps) {
			t.Errorf("uri.GetParams(%v) = %v, want %v", u, got, ps)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	cases := []string{
		"aeron:ipc",
		"aeron:ipc?",
		"aeron:ipc?term-length=64k|alias=a=b",
		"aeron:udp?",
		"aeron:udp?ttl=16|interface=192.168.0.3|port=4567|endpoint=224.10.9.8",
		"aeron:udp?add|ress=224.10.9.8|x=",
		"aeron:udp?endpoint=a:1|endpoint=b:2|control=[::1%eth0]:3|mtu=1408|mtu=8192",
		"aeron:udp?=|==|a=1|",
	}

	for _, in := range cases {
		t.Run(in, func(t *testing.T) {
			t.Parallel()

			u1, err := uri.Parse(in)
			if err != nil {
				t.Fatalf("uri.Parse(%q) error = %v, want nil", in, err)
			}
			if !u1.IsValid() {
				t.Fatalf("uri.Parse(%q).IsValid() = false, want true", in)
			}

			s1 := u1.String()
			u2, err := uri.Parse(s1)
			if err != nil {
				t.Fatalf("uri.Parse(%q) error = %v, want nil", s1, err)
			}
			if !u2.Equal(u1) {
				t.Errorf("uri.Parse(%q) = %+v, want %+v", s1, u2, u1)
			}
			if s2 := u2.String(); s2 != s1 {
				t.Errorf("u2.String() = %q, want %q", s2, s1)
			}
		})
	}
}
