package models

// NetworkStatus is the reachability state owned by the network monitor.
type NetworkStatus string

const (
	NetworkDisconnected NetworkStatus = "disconnected"
	NetworkConnecting   NetworkStatus = "connecting"
	NetworkConnected    NetworkStatus = "connected"
	NetworkUnstable     NetworkStatus = "unstable"
)

// NetworkType is the link layer the host currently reports. Link type alone
// is an untrusted signal (captive portals, dead VPNs); only a successful
// reachability probe moves the status to connected.
type NetworkType string

const (
	NetworkTypeWifi     NetworkType = "wifi"
	NetworkTypeMobile   NetworkType = "mobile"
	NetworkTypeEthernet NetworkType = "ethernet"
	NetworkTypeNone     NetworkType = "none"
	NetworkTypeOther    NetworkType = "other"
)

// NetworkState is the monitor-owned connectivity snapshot read by the
// coordinator and the offline queue.
type NetworkState struct {
	Status NetworkStatus `json:"status"`
	Type   NetworkType   `json:"type"`
}

// Online reports whether network operations should be attempted.
func (s NetworkState) Online() bool {
	return s.Status == NetworkConnected
}
