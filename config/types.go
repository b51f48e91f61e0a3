package config

import (
	"encoding"
	"strconv"

	humanize "github.com/dustin/go-humanize"
)

// HostPort is the canonical form of a network bind address.
type HostPort struct {
	Host string
	Port int
}

func (hp HostPort) String() string {
	return hp.Host + ":" + strconv.Itoa(hp.Port)
}

// BytesSize implements reading and writing byte sizes in human form
// ("10MB", "1.5GiB"...).
type BytesSize uint64

var (
	_ encoding.TextMarshaler   = (*BytesSize)(nil)
	_ encoding.TextUnmarshaler = (*BytesSize)(nil)
)

// MarshalText makes BytesSize implement encoding.TextMarshaler.
func (sz BytesSize) MarshalText() ([]byte, error) {
	s := humanize.Bytes(uint64(sz))
	return []byte(s), nil
}

// UnmarshalText makes BytesSize implement encoding.TextUnmarshaler.
func (sz *BytesSize) UnmarshalText(text []byte) error {
	u, err := humanize.ParseBytes(string(text))
	if err == nil {
		*sz = BytesSize(u)
	}
	return err
}

func (sz BytesSize) String() string {
	return humanize.Bytes(uint64(sz))
}
