//go:build !linux

package web

import (
	"errors"
	"net"
)

func roundTrip(*net.TCPConn) (uint16, error) {
	return 0, errors.New("web: TCP_INFO is only available on linux")
}
