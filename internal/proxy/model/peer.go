package model

import (
	"net"
	"strconv"
	"time"
)

// PeerKind tells which collaborator a peer belongs to.
type PeerKind string

var (
	PeerElectrum PeerKind = "electrum"
	PeerP2P      PeerKind = "p2p"
)

// PeerDescriptor describes a live connection to a network peer.
type PeerDescriptor struct {
	Kind           PeerKind
	Hostname       string
	Port           int
	Subversion     string
	ConnectedAt    time.Time
	LastBlockIndex *int32
	Score          int
}

// NewElectrumPeer describes a connected Electrum server.
func NewElectrumPeer(hostname string, port int, serverVersion string, connectedAt time.Time, tipHeight *int32) PeerDescriptor {
	return PeerDescriptor{
		Kind:           PeerElectrum,
		Hostname:       hostname,
		Port:           port,
		Subversion:     serverVersion,
		ConnectedAt:    connectedAt,
		LastBlockIndex: tipHeight,
	}
}

// NewP2PPeer describes a connected bitcoin peer from its "host:port" address.
func NewP2PPeer(addr, userAgent string, connectedAt time.Time, lastBlock int32, score int) PeerDescriptor {
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		host = addr
	}
	port, _ := strconv.Atoi(portStr)
	return PeerDescriptor{
		Kind:           PeerP2P,
		Hostname:       host,
		Port:           port,
		Subversion:     userAgent,
		ConnectedAt:    connectedAt,
		LastBlockIndex: &lastBlock,
		Score:          score,
	}
}

// Addr joins hostname and port.
func (p PeerDescriptor) Addr() string {
	return net.JoinHostPort(p.Hostname, strconv.Itoa(p.Port))
}
